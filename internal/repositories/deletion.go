package repositories

import (
	"fmt"

	"github.com/desertthunder/userdb/internal/models"
	"github.com/desertthunder/userdb/internal/shared"
)

// DeleteWithLog atomically removes a user and appends its [models.DeletionLogEntry].
//
// The transaction runs five steps in a fixed order: begin, fetch the user
// in-transaction, insert the audit row, delete the user row, commit. The
// fetch must come first because the audit row needs the live email, and the
// audit insert must precede the delete so a failed delete rolls the audit row
// back with it. The first failure triggers a single rollback-and-exit path.
//
// A (nil, nil) return means no user matched. A [shared.ErrCommit] failure
// leaves the row state ambiguous to the caller; the repository does not retry
// and surfaces it distinctly so callers can reconcile.
func (r *UserRepository) DeleteWithLog(id int64) (*models.Deletion, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTransaction, err)
	}

	user, err := fetchUser(tx, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if user == nil {
		tx.Rollback()
		return nil, nil
	}

	deletedAt := timestamp()
	_, err = tx.Exec(`INSERT INTO user_deletions_log (user_id, email, deleted_at) VALUES (?, ?, ?)`,
		user.ID, user.Email, deletedAt)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: insert deletion log for user %d: %v", shared.ErrWrite, id, err)
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: delete user %d: %v", shared.ErrWrite, id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: delete of user %d: %v", shared.ErrCommit, id, err)
	}

	r.logger.Info("user deleted", "id", user.ID, "email", user.Email)
	return &models.Deletion{Deleted: true, User: *user, DeletedAt: deletedAt}, nil
}

// Deletions returns all audit log entries ordered by ascending id.
func (r *UserRepository) Deletions() ([]*models.DeletionLogEntry, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	rows, err := db.Query(`SELECT id, user_id, email, deleted_at FROM user_deletions_log ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: select deletion log: %v", shared.ErrQuery, err)
	}
	defer rows.Close()

	entries := []*models.DeletionLogEntry{}
	for rows.Next() {
		var entry models.DeletionLogEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Email, &entry.DeletedAt); err != nil {
			return nil, fmt.Errorf("%w: scan deletion log entry: %v", shared.ErrQuery, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration: %v", shared.ErrQuery, err)
	}

	return entries, nil
}
