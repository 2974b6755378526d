package app

import (
	"github.com/ghuser/todolists/pkg/cache"
	"github.com/ghuser/todolists/pkg/database"
	"github.com/ghuser/todolists/pkg/events"
	"github.com/ghuser/todolists/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// It is built once in main and passed to every service's route registration;
// nothing in it is a package-level singleton.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "list deleted", "list_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus   // nil disables outbox publishing
	Redis    *cache.RedisClient // nil disables the list items cache

	// IndexListID is the list GET / redirects to.
	IndexListID int64
}
