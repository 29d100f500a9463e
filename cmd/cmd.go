// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func idFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:     "id",
		Usage:    "User ID",
		Required: true,
	}
}

// setupCommand initializes the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.SetupDatabase,
	}
}

// usersCommand handles record operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "users",
		Aliases: []string{"u"},
		Usage:   "User record operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "email", Usage: "Email address, unique across live users", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.UsersCreate,
			},
			{
				Name:  "list",
				Usage: "List all users ordered by ID",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "format", Usage: "Output format: json, csv, markdown, text", Value: "json"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print JSON output"},
				},
				Action: r.UsersList,
			},
			{
				Name:  "get",
				Usage: "Fetch one user by ID",
				Flags: []cli.Flag{
					configFlag(),
					idFlag(),
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.UsersGet,
			},
			{
				Name:  "update",
				Usage: "Overwrite a user's email and name",
				Flags: []cli.Flag{
					configFlag(),
					idFlag(),
					&cli.StringFlag{Name: "email", Usage: "New email address", Required: true},
					&cli.StringFlag{Name: "name", Usage: "New display name", Required: true},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.UsersUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a user and write its audit log entry",
				Flags: []cli.Flag{
					configFlag(),
					idFlag(),
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.UsersDelete,
			},
			{
				Name:  "export",
				Usage: "Export all users to a file or stdout",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "format", Usage: "Export format: csv, markdown, text", Value: "csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path"},
				},
				Action: r.UsersExport,
			},
			{
				Name:  "deletions",
				Usage: "List the deletion audit log",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "format", Usage: "Output format: json, csv", Value: "json"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print JSON output"},
				},
				Action: r.UsersDeletions,
			},
		},
	}
}

// serveCommand starts the HTTP API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the user record API over HTTP",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and delete users interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
