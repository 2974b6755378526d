package postgres

import (
	"context"
	"database/sql"

	"github.com/ghuser/todolists/pkg/events"
	domainevents "github.com/ghuser/todolists/services/todo/domain/events"
)

// outbox publishes domain events inside the write transaction. A nil bus
// disables publishing.
type outbox struct {
	bus *events.EventBus
}

func (o outbox) publish(ctx context.Context, tx *sql.Tx, topic string, env domainevents.Envelope, payload any) error {
	if o.bus == nil {
		return nil
	}
	return o.bus.PublishTx(ctx, tx, topic, env.EventID.String(), env.Version, payload)
}
