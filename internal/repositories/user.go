package repositories

import (
	"fmt"

	"github.com/desertthunder/userdb/internal/models"
	"github.com/desertthunder/userdb/internal/shared"
)

// Create inserts a new user and returns the full record including the
// store-assigned id.
//
// Email uniqueness is enforced by the store; a violation wraps
// [shared.ErrConstraint] and nothing is written.
func (r *UserRepository) Create(email, name string) (*models.User, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	createdAt := timestamp()
	res, err := db.Exec(`INSERT INTO users (email, name, created_at) VALUES (?, ?, ?)`, email, name, createdAt)
	if err != nil {
		if isConstraint(err) {
			return nil, fmt.Errorf("%w: email %q already exists", shared.ErrConstraint, email)
		}
		return nil, fmt.Errorf("%w: insert user: %v", shared.ErrWrite, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: read new user id: %v", shared.ErrWrite, err)
	}

	r.logger.Debug("user created", "id", id, "email", email)
	return &models.User{ID: id, Email: email, Name: name, CreatedAt: createdAt}, nil
}

// List returns all users ordered by ascending id. An empty store yields an
// empty slice, never an error.
func (r *UserRepository) List() ([]*models.User, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	rows, err := db.Query(`SELECT id, email, name, created_at FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: select users: %v", shared.ErrQuery, err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan user: %v", shared.ErrQuery, err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration: %v", shared.ErrQuery, err)
	}

	return users, nil
}

// Get retrieves a user by id. A missing row is a normal (nil, nil) outcome.
func (r *UserRepository) Get(id int64) (*models.User, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	return fetchUser(db, id)
}

// Update overwrites email and name for the matching row. A write that affects
// zero rows returns (nil, nil); otherwise the row is re-read and returned,
// since the write itself does not yield the stored created_at.
func (r *UserRepository) Update(id int64, email, name string) (*models.User, error) {
	db, err := r.factory.Open()
	if err != nil {
		return nil, err
	}
	defer r.factory.Close(db)

	res, err := db.Exec(`UPDATE users SET email = ?, name = ? WHERE id = ?`, email, name, id)
	if err != nil {
		if isConstraint(err) {
			return nil, fmt.Errorf("%w: email %q already exists", shared.ErrConstraint, email)
		}
		return nil, fmt.Errorf("%w: update user %d: %v", shared.ErrWrite, id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: affected rows: %v", shared.ErrWrite, err)
	}
	if rows == 0 {
		return nil, nil
	}

	r.logger.Debug("user updated", "id", id, "email", email)
	return fetchUser(db, id)
}
