// package formatter provides functions to export user records to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/userdb/internal/models"
)

// UsersToCSV converts users to CSV with columns: ID, Email, Name, CreatedAt
func UsersToCSV(users []*models.User) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Email", "Name", "CreatedAt"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, user := range users {
		record := []string{
			strconv.FormatInt(user.ID, 10),
			user.Email,
			user.Name,
			user.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// UsersToMarkdown converts users to a Markdown table
func UsersToMarkdown(users []*models.User) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Users\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(users)))
	buf.WriteString("| ID | Email | Name | Created |\n")
	buf.WriteString("| --- | --- | --- | --- |\n")

	for _, user := range users {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", user.ID, user.Email, user.Name, user.CreatedAt))
	}

	return buf.Bytes()
}

// UsersToText converts users to plain text format
func UsersToText(users []*models.User) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Users: %d\n\n", len(users)))
	for _, user := range users {
		buf.WriteString(fmt.Sprintf("#%d %s <%s> created %s\n", user.ID, user.Name, user.Email, user.CreatedAt))
	}

	return buf.Bytes()
}

// DeletionsToCSV converts audit log entries to CSV with columns: ID, UserID, Email, DeletedAt
func DeletionsToCSV(entries []*models.DeletionLogEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "UserID", "Email", "DeletedAt"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			strconv.FormatInt(entry.UserID, 10),
			entry.Email,
			entry.DeletedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
