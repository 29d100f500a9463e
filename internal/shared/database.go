package shared

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// Factory opens SQLite connections bound to a fixed database path.
//
// Every call to [Factory.Open] returns an independent connection that the
// caller must release through [Factory.Close]. There is no pooling and no
// state shared between calls; the store's own locking is the only
// cross-connection coordination.
type Factory struct {
	path   string
	logger *log.Logger
}

// NewFactory creates a [Factory] for the database at path.
// The path can be ":memory:" for an in-memory database.
func NewFactory(path string, logger *log.Logger) *Factory {
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &Factory{path: path, logger: logger}
}

// Path returns the database location this factory is bound to.
func (f *Factory) Path() string {
	return f.path
}

// Open dials a new connection to the store and verifies it with a ping.
// Failure to reach or create the store wraps [ErrConnection].
func (f *Factory) Open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", f.path)
	if err != nil {
		f.logger.Error("failed to open database", "path", f.path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		f.logger.Error("failed to ping database", "path", f.path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	f.logger.Debug("database connection opened", "path", f.path)
	return db, nil
}

// Close releases a connection produced by [Factory.Open] and logs the outcome.
func (f *Factory) Close(db *sql.DB) {
	if err := db.Close(); err != nil {
		f.logger.Warn("failed to close database connection", "path", f.path, "error", err)
		return
	}
	f.logger.Debug("database connection closed", "path", f.path)
}
