package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database, cache.RedisClient, events.EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Database and EventBus are required for writes; Redis only backs the list
// items cache, so losing it degrades reads without failing the probe.
// A nil checker is reported as "disabled".
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

const (
	statusOK          = "ok"
	statusDegraded    = "degraded"
	statusUnavailable = "unavailable"

	depOK          = "ok"
	depUnreachable = "unreachable"
	depDisabled    = "disabled"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers. It answers 503 "unavailable" when a required dependency is
// down and 200 "degraded" when only the cache is.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   statusOK,
			Database: probe(ctx, checks.Database),
			Redis:    probe(ctx, checks.Redis),
			EventBus: probe(ctx, checks.EventBus),
		}

		status := http.StatusOK
		switch {
		case resp.Database == depUnreachable || resp.EventBus == depUnreachable:
			resp.Status = statusUnavailable
			status = http.StatusServiceUnavailable
		case resp.Redis == depUnreachable:
			resp.Status = statusDegraded
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return depDisabled
	}
	if err := c.Ping(ctx); err != nil {
		return depUnreachable
	}
	return depOK
}
