// Package subscribers holds the todo event handlers run by cmd/worker.
package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/todolists/pkg/app"
	"github.com/ghuser/todolists/pkg/cache"
	"github.com/ghuser/todolists/pkg/logger"
	todoevents "github.com/ghuser/todolists/services/todo/domain/events"
)

// ListCacheInvalidator drops the cached read model of one list.
// *cache.ListItemsCache satisfies it.
type ListCacheInvalidator interface {
	Invalidate(ctx context.Context, listID int64) error
}

// Handler is the signature EventBus.Subscribe expects.
type Handler func(context.Context, *message.Message) error

// errMalformed marks payloads that can never be processed.
var errMalformed = errors.New("malformed event payload")

// InvalidateListCache returns a handler that decodes the shared envelope of
// any todo event and invalidates the cached items of its list. It is safe to
// run more than once per message.
//
// Malformed payloads are logged and acked; retrying cannot fix them. Cache
// failures are returned so EventBus retries with backoff.
func InvalidateListCache(c ListCacheInvalidator, log logger.Logger) Handler {
	return func(ctx context.Context, msg *message.Message) error {
		env, err := decodeEnvelope(msg.Payload)
		if err != nil {
			log.ErrorContext(ctx, "dropping todo event", "message_uuid", msg.UUID, "error", err)
			return nil
		}

		if env.Version > todoevents.CurrentVersion {
			log.WarnContext(ctx, "todo event from a newer schema version",
				"event_id", env.EventID, "version", env.Version)
		}

		if err := c.Invalidate(ctx, env.ListID); err != nil {
			return fmt.Errorf("invalidate list %d: %w", env.ListID, err)
		}

		log.DebugContext(ctx, "list cache invalidated",
			"event_id", env.EventID, "list_id", env.ListID)
		return nil
	}
}

func decodeEnvelope(payload []byte) (todoevents.Envelope, error) {
	var env todoevents.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return env, fmt.Errorf("%w: %w", errMalformed, err)
	}
	if env.ListID <= 0 {
		return env, fmt.Errorf("%w: missing list_id", errMalformed)
	}
	return env, nil
}

// Register subscribes the cache invalidator to every todo topic and drains
// each subscription's error channel into the log. With caching disabled
// (a.Redis nil) nothing is subscribed.
func Register(ctx context.Context, a *app.Application) error {
	itemsCache := cache.NewListItemsCache(a.Redis)
	if itemsCache == nil {
		a.Logger.Warn("redis not configured, todo event subscribers not registered")
		return nil
	}

	handler := InvalidateListCache(itemsCache, a.Logger)
	for _, topic := range todoevents.Topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", todoevents.Topics)
	return nil
}
