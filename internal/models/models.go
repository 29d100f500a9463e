package models

// User is a live account record.
//
// ID is assigned by the store on creation and never changes; CreatedAt is an
// RFC3339 string set once at creation. Email and Name are the only mutable
// fields, and no two live users share an Email.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// DeletionLogEntry records one committed user deletion.
//
// UserID and Email snapshot the user as it existed at deletion time; the
// parent row is gone once the deletion commits, so there is no live foreign
// key relationship.
type DeletionLogEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	DeletedAt string `json:"deleted_at"`
}

// Deletion is the result of a successful audited delete.
type Deletion struct {
	Deleted   bool   `json:"deleted"`
	User      User   `json:"user"`
	DeletedAt string `json:"deleted_at"`
}

// UserStore defines the record operations for [User] persistence.
//
// A (nil, nil) return from Get, Update or DeleteWithLog means "no matching
// record"; it is a normal outcome, never an error. All other failures are
// classified with the sentinel errors in the shared package.
type UserStore interface {
	Create(email, name string) (*User, error)           // Create inserts a new user and returns it with the store-assigned id
	List() ([]*User, error)                             // List returns all users ordered by ascending id
	Get(id int64) (*User, error)                        // Get returns the matching user, or (nil, nil) when absent
	Update(id int64, email, name string) (*User, error) // Update overwrites email and name, or returns (nil, nil) when absent
	DeleteWithLog(id int64) (*Deletion, error)          // DeleteWithLog atomically removes a user and appends its audit entry
}

// DeletionLog defines reads of the deletion audit log.
type DeletionLog interface {
	Deletions() ([]*DeletionLogEntry, error) // Deletions returns all audit entries ordered by ascending id
}
