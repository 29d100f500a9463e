package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/userdb/internal/shared"
	tu "github.com/desertthunder/userdb/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{Config: config, Logger: logger, Output: output})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			out := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: out, Logger: shared.NewLogger(io.Discard)})

			if err := runner.writeJSON(map[string]int{"a": 1}, false); err != nil {
				t.Fatalf("failed to write JSON: %v", err)
			}
			if out.String() != "{\"a\":1}\n" {
				t.Errorf("unexpected output: %q", out.String())
			}
		})

		t.Run("pretty", func(t *testing.T) {
			out := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: out, Logger: shared.NewLogger(io.Discard)})

			if err := runner.writeJSON(map[string]int{"a": 1}, true); err != nil {
				t.Fatalf("failed to write JSON: %v", err)
			}
			if !strings.Contains(out.String(), "\n  \"a\": 1\n") {
				t.Errorf("expected indented output, got %q", out.String())
			}
		})

		t.Run("write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}, Logger: shared.NewLogger(io.Discard)})

			if err := runner.writeJSON(map[string]int{"a": 1}, false); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})
}

// runCLI executes a full CLI invocation against the runner.
func runCLI(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "userdb", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"userdb"}, args...))
}

func TestCommands(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	dbPath := filepath.Join(tmpDir, "userdb.db")

	contents := fmt.Sprintf("[database]\npath = %q\n\n[server]\nhost = \"127.0.0.1\"\nport = 0\n", dbPath)
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: out})

	if err := runCLI(t, runner, "setup", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	tu.AssertFileExists(t, dbPath)

	t.Run("create and list", func(t *testing.T) {
		if err := runCLI(t, runner, "users", "create", "-c", configPath, "--email", "a@x.com", "--name", "A"); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		out.Reset()
		if err := runCLI(t, runner, "users", "list", "-c", configPath); err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if !strings.Contains(out.String(), "a@x.com") {
			t.Errorf("expected listed user, got %q", out.String())
		}
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		err := runCLI(t, runner, "users", "create", "-c", configPath, "--email", "a@x.com", "--name", "B")
		if err == nil {
			t.Fatal("expected error for duplicate email")
		}
	})

	t.Run("get", func(t *testing.T) {
		out.Reset()
		if err := runCLI(t, runner, "users", "get", "-c", configPath, "--id", "1"); err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !strings.Contains(out.String(), "\"id\":1") {
			t.Errorf("expected user record, got %q", out.String())
		}

		out.Reset()
		if err := runCLI(t, runner, "users", "get", "-c", configPath, "--id", "999"); err != nil {
			t.Fatalf("get of absent user should not error: %v", err)
		}
		if !strings.Contains(out.String(), "not found") {
			t.Errorf("expected not-found notice, got %q", out.String())
		}
	})

	t.Run("update", func(t *testing.T) {
		out.Reset()
		if err := runCLI(t, runner, "users", "update", "-c", configPath, "--id", "1", "--email", "a@x.com", "--name", "A2"); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if !strings.Contains(out.String(), "\"name\":\"A2\"") {
			t.Errorf("expected updated record, got %q", out.String())
		}

		out.Reset()
		if err := runCLI(t, runner, "users", "update", "-c", configPath, "--id", "999", "--email", "z@x.com", "--name", "Z"); err != nil {
			t.Fatalf("update of absent user should not error: %v", err)
		}
		if !strings.Contains(out.String(), "not found") {
			t.Errorf("expected not-found notice, got %q", out.String())
		}
	})

	t.Run("export", func(t *testing.T) {
		exportPath := filepath.Join(tmpDir, "users.csv")
		if err := runCLI(t, runner, "users", "export", "-c", configPath, "--format", "csv", "-o", exportPath); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		content := tu.MustReadFile(t, exportPath)
		if !strings.HasPrefix(content, "ID,Email,Name,CreatedAt") {
			t.Errorf("unexpected export header: %q", content)
		}
		if !strings.Contains(content, "a@x.com") {
			t.Errorf("expected exported user, got %q", content)
		}
	})

	t.Run("delete and deletions", func(t *testing.T) {
		out.Reset()
		if err := runCLI(t, runner, "users", "delete", "-c", configPath, "--id", "1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if !strings.Contains(out.String(), "\"deleted\":true") {
			t.Errorf("expected deletion result, got %q", out.String())
		}

		out.Reset()
		if err := runCLI(t, runner, "users", "deletions", "-c", configPath); err != nil {
			t.Fatalf("deletions failed: %v", err)
		}
		if !strings.Contains(out.String(), "a@x.com") {
			t.Errorf("expected audit entry, got %q", out.String())
		}

		out.Reset()
		if err := runCLI(t, runner, "users", "delete", "-c", configPath, "--id", "1"); err != nil {
			t.Fatalf("deleting an absent user should not error: %v", err)
		}
		if !strings.Contains(out.String(), "not found") {
			t.Errorf("expected not-found notice, got %q", out.String())
		}
	})
}
