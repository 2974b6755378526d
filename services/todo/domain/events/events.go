package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the todo repositories.
const (
	TopicListCreated           = "list.created"
	TopicListDeleted           = "list.deleted"
	TopicListCompleted         = "list.completed"
	TopicItemCreated           = "item.created"
	TopicItemCompletionChanged = "item.completion_changed"
	TopicItemDeleted           = "item.deleted"
)

// Topics lists every topic above, in publish order of a typical list lifecycle.
var Topics = []string{
	TopicListCreated,
	TopicItemCreated,
	TopicItemCompletionChanged,
	TopicListCompleted,
	TopicItemDeleted,
	TopicListDeleted,
}

// CurrentVersion is the schema version stamped on every event; increment on breaking changes.
const CurrentVersion = 1

// Envelope carries the fields every todo event shares. Consumers that only
// need to know which list changed can decode any payload into it.
type Envelope struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`
	ListID     int64     `json:"list_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEnvelope stamps a fresh event ID, the current version and the time.
func NewEnvelope(listID int64) Envelope {
	return Envelope{
		EventID:    uuid.New(),
		Version:    CurrentVersion,
		ListID:     listID,
		OccurredAt: time.Now().UTC(),
	}
}

// ListCreatedEvent is published after a new List is persisted.
type ListCreatedEvent struct {
	Envelope
	Name string `json:"name"`
}

// ListDeletedEvent is published after a List and its Items are deleted.
type ListDeletedEvent struct {
	Envelope
	ItemCount int64 `json:"item_count"`
}

// ListCompletedEvent is published after every Item of a List is marked completed.
type ListCompletedEvent struct {
	Envelope
	ItemCount int64 `json:"item_count"`
}

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	Envelope
	ItemID      int64  `json:"item_id"`
	Description string `json:"description"`
}

// ItemCompletionChangedEvent is published after an Item's completed flag is set.
type ItemCompletionChangedEvent struct {
	Envelope
	ItemID    int64 `json:"item_id"`
	Completed bool  `json:"completed"`
}

// ItemDeletedEvent is published after an Item is deleted. Deleting an ID that
// does not exist publishes nothing.
type ItemDeletedEvent struct {
	Envelope
	ItemID int64 `json:"item_id"`
}
