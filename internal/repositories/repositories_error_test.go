package repositories

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/desertthunder/userdb/internal/shared"
)

func TestUserRepositoryErrors(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		t.Run("DuplicateEmail", func(t *testing.T) {
			repo := setupTestRepo(t)

			if _, err := repo.Create("test@example.com", "User One"); err != nil {
				t.Fatalf("failed to create first user: %v", err)
			}

			_, err := repo.Create("test@example.com", "User Two")
			if !errors.Is(err, shared.ErrConstraint) {
				t.Fatalf("expected ErrConstraint, got %v", err)
			}

			users, err := repo.List()
			if err != nil {
				t.Fatalf("failed to list users: %v", err)
			}
			if len(users) != 1 {
				t.Errorf("failed create should leave the store unchanged, got %d users", len(users))
			}
		})

		t.Run("StoreUnreachable", func(t *testing.T) {
			logger := shared.NewLogger(io.Discard)
			factory := shared.NewFactory(filepath.Join(t.TempDir(), "missing", "test.db"), logger)
			repo := NewUserRepository(factory, logger)

			_, err := repo.Create("test@example.com", "Test User")
			if !errors.Is(err, shared.ErrConnection) {
				t.Fatalf("expected ErrConnection, got %v", err)
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Absent", func(t *testing.T) {
			repo := setupTestRepo(t)

			user, err := repo.Get(42)
			if err != nil {
				t.Fatalf("absent user should not be an error: %v", err)
			}
			if user != nil {
				t.Errorf("expected absent, got %+v", user)
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("Absent", func(t *testing.T) {
			repo := setupTestRepo(t)

			user, err := repo.Update(42, "test@example.com", "Test User")
			if err != nil {
				t.Fatalf("absent user should not be an error: %v", err)
			}
			if user != nil {
				t.Errorf("expected absent, got %+v", user)
			}
		})

		t.Run("DuplicateEmail", func(t *testing.T) {
			repo := setupTestRepo(t)

			if _, err := repo.Create("first@example.com", "First"); err != nil {
				t.Fatalf("failed to create first user: %v", err)
			}
			second, err := repo.Create("second@example.com", "Second")
			if err != nil {
				t.Fatalf("failed to create second user: %v", err)
			}

			_, err = repo.Update(second.ID, "first@example.com", "Second")
			if !errors.Is(err, shared.ErrConstraint) {
				t.Fatalf("expected ErrConstraint, got %v", err)
			}
		})
	})

	t.Run("DeleteWithLog", func(t *testing.T) {
		t.Run("Absent", func(t *testing.T) {
			repo := setupTestRepo(t)

			deletion, err := repo.DeleteWithLog(42)
			if err != nil {
				t.Fatalf("absent user should not be an error: %v", err)
			}
			if deletion != nil {
				t.Errorf("expected absent, got %+v", deletion)
			}

			entries, err := repo.Deletions()
			if err != nil {
				t.Fatalf("failed to list deletion log: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("absent delete must not write audit entries, got %d", len(entries))
			}
		})

		// Forces the delete step to fail after the audit insert succeeded and
		// verifies the audit row does not survive the rollback.
		t.Run("RollbackOnDeleteFailure", func(t *testing.T) {
			factory := setupTestFactory(t)
			repo := NewUserRepository(factory, shared.NewLogger(io.Discard))

			user, err := repo.Create("test@example.com", "Test User")
			if err != nil {
				t.Fatalf("failed to create user: %v", err)
			}

			db, err := factory.Open()
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			_, err = db.Exec(`
				CREATE TRIGGER block_user_delete BEFORE DELETE ON users
				BEGIN
					SELECT RAISE(ABORT, 'delete blocked');
				END
			`)
			db.Close()
			if err != nil {
				t.Fatalf("failed to create blocking trigger: %v", err)
			}

			_, err = repo.DeleteWithLog(user.ID)
			if !errors.Is(err, shared.ErrWrite) {
				t.Fatalf("expected ErrWrite from blocked delete, got %v", err)
			}

			remaining, err := repo.Get(user.ID)
			if err != nil {
				t.Fatalf("failed to get user: %v", err)
			}
			if remaining == nil {
				t.Error("user should survive a failed delete")
			}

			entries, err := repo.Deletions()
			if err != nil {
				t.Fatalf("failed to list deletion log: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("audit entry must not survive a failed delete, got %d entries", len(entries))
			}
		})
	})
}
