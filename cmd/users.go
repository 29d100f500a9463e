package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/userdb/internal/formatter"
	"github.com/desertthunder/userdb/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersCreate inserts a new user and prints the stored record.
func (r *Runner) UsersCreate(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	user, err := repo.Create(cmd.String("email"), cmd.String("name"))
	if err != nil {
		if errors.Is(err, shared.ErrConstraint) {
			return fmt.Errorf("%w: email %q is already registered", shared.ErrInvalidArgument, cmd.String("email"))
		}
		return err
	}

	return r.writeJSON(user, cmd.Bool("pretty"))
}

// UsersList prints all users in the requested format.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	users, err := repo.List()
	if err != nil {
		return err
	}

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(users, cmd.Bool("pretty"))
	case "csv":
		out, err := formatter.UsersToCSV(users)
		if err != nil {
			return err
		}
		return r.writePlain("%s", out)
	case "markdown":
		return r.writePlain("%s", formatter.UsersToMarkdown(users))
	case "text":
		return r.writePlain("%s", formatter.UsersToText(users))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// UsersGet prints one user, or a not-found notice.
func (r *Runner) UsersGet(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	id := int64(cmd.Int("id"))
	user, err := repo.Get(id)
	if err != nil {
		return err
	}
	if user == nil {
		return r.writePlainln("user %d not found", id)
	}

	return r.writeJSON(user, cmd.Bool("pretty"))
}

// UsersUpdate overwrites a user's email and name and prints the result.
func (r *Runner) UsersUpdate(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	id := int64(cmd.Int("id"))
	user, err := repo.Update(id, cmd.String("email"), cmd.String("name"))
	if err != nil {
		if errors.Is(err, shared.ErrConstraint) {
			return fmt.Errorf("%w: email %q is already registered", shared.ErrInvalidArgument, cmd.String("email"))
		}
		return err
	}
	if user == nil {
		return r.writePlainln("user %d not found", id)
	}

	return r.writeJSON(user, cmd.Bool("pretty"))
}

// UsersDelete removes a user inside the audited transaction and prints the
// deletion snapshot.
func (r *Runner) UsersDelete(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	id := int64(cmd.Int("id"))
	deletion, err := repo.DeleteWithLog(id)
	if err != nil {
		return err
	}
	if deletion == nil {
		return r.writePlainln("user %d not found", id)
	}

	return r.writeJSON(deletion, cmd.Bool("pretty"))
}

// UsersExport writes all users to a file or stdout in the requested format.
func (r *Runner) UsersExport(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	users, err := repo.List()
	if err != nil {
		return err
	}

	var out []byte
	switch format := cmd.String("format"); format {
	case "csv":
		if out, err = formatter.UsersToCSV(users); err != nil {
			return err
		}
	case "markdown":
		out = formatter.UsersToMarkdown(users)
	case "text":
		out = formatter.UsersToText(users)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		return r.writePlain("%s", out)
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	r.logger.Info("users exported", "path", outputPath, "count", len(users))
	return nil
}

// UsersDeletions prints the deletion audit log.
func (r *Runner) UsersDeletions(ctx context.Context, cmd *cli.Command) error {
	repo := r.repository(r.loadConfig(cmd))

	entries, err := repo.Deletions()
	if err != nil {
		return err
	}

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(entries, cmd.Bool("pretty"))
	case "csv":
		out, err := formatter.DeletionsToCSV(entries)
		if err != nil {
			return err
		}
		return r.writePlain("%s", out)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}
