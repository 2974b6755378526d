// Command migrate applies the schema migrations. Run it before starting
// cmd/api or cmd/worker.
package main

import (
	"log/slog"
	"os"

	"github.com/ghuser/todolists/migrations/todo"
	"github.com/ghuser/todolists/pkg/config"
	"github.com/ghuser/todolists/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, todo.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
