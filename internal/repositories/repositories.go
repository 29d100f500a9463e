package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/userdb/internal/models"
	"github.com/desertthunder/userdb/internal/shared"
	"github.com/mattn/go-sqlite3"
)

// UserRepository implements [models.UserStore] and [models.DeletionLog] over SQLite.
//
// It holds no connection of its own; each operation asks the factory for a
// fresh one and closes it unconditionally before returning.
type UserRepository struct {
	factory *shared.Factory
	logger  *log.Logger
}

var (
	_ models.UserStore   = (*UserRepository)(nil)
	_ models.DeletionLog = (*UserRepository)(nil)
)

// NewUserRepository creates a new [UserRepository] backed by the given connection factory.
func NewUserRepository(factory *shared.Factory, logger *log.Logger) *UserRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &UserRepository{factory: factory, logger: logger}
}

// querier is the subset of [sql.DB] and [sql.Tx] the row helpers need.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// fetchUser reads a single user by id. Absent rows return (nil, nil);
// store failures wrap [shared.ErrQuery].
func fetchUser(q querier, id int64) (*models.User, error) {
	var user models.User
	err := q.QueryRow(`SELECT id, email, name, created_at FROM users WHERE id = ?`, id).
		Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select user %d: %v", shared.ErrQuery, id, err)
	}
	return &user, nil
}

// isConstraint reports whether err is a SQLite constraint violation.
func isConstraint(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}

// timestamp returns the RFC3339 instant stored in created_at and deleted_at columns.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
