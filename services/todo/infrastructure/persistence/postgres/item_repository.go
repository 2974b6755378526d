package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/todolists/pkg/database"
	"github.com/ghuser/todolists/pkg/events"
	tododomain "github.com/ghuser/todolists/services/todo/domain"
	domainevents "github.com/ghuser/todolists/services/todo/domain/events"
	"github.com/ghuser/todolists/services/todo/domain/models"
	"github.com/ghuser/todolists/services/todo/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db     *database.Database
	outbox outbox
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. A nil bus disables event publishing.
func NewItemRepository(d *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: d, outbox: outbox{bus: bus}}
}

// Create persists a new Item and publishes ItemCreatedEvent within the same transaction.
// Returns ErrInvalidItem when ListID does not reference an existing list.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).InsertTodo(ctx, db.InsertTodoParams{
			Description: item.Description.String(),
			ListID:      item.ListID,
		})
		if err != nil {
			switch pgErrorCode(err) {
			case pgForeignKeyViolation:
				return fmt.Errorf("%w: list %d does not exist", tododomain.ErrInvalidItem, item.ListID)
			case pgCheckViolation:
				return fmt.Errorf("%w: %w", tododomain.ErrInvalidItem, err)
			}
			return fmt.Errorf("insert item: %w", err)
		}
		item.ID = row.ID
		item.Completed = row.Completed

		evt := domainevents.ItemCreatedEvent{
			Envelope:    domainevents.NewEnvelope(item.ListID),
			ItemID:      item.ID,
			Description: item.Description.String(),
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicItemCreated, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish item created: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetTodo(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tododomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// FindByListID returns the Items of a list ordered by ID.
func (r *ItemRepository) FindByListID(ctx context.Context, listID int64) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListTodosByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return rowsToItems(rows), nil
}

// SetCompleted updates an Item's completed flag and publishes ItemCompletionChangedEvent.
func (r *ItemRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).SetTodoCompleted(ctx, db.SetTodoCompletedParams{
			ID:        id,
			Completed: completed,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return tododomain.ErrItemNotFound
			}
			return fmt.Errorf("update item: %w", err)
		}
		item = rowToItem(row)

		evt := domainevents.ItemCompletionChangedEvent{
			Envelope:  domainevents.NewEnvelope(item.ListID),
			ItemID:    item.ID,
			Completed: item.Completed,
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicItemCompletionChanged, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish item completion changed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an Item by ID and returns it. A missing ID is not an error:
// nothing is published and the returned item is nil.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).DeleteTodo(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("delete item: %w", err)
		}
		item = rowToItem(row)

		evt := domainevents.ItemDeletedEvent{
			Envelope: domainevents.NewEnvelope(item.ListID),
			ItemID:   item.ID,
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicItemDeleted, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish item deleted: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// rowToItem maps a db.Todo to a domain models.Item.
func rowToItem(row db.Todo) *models.Item {
	return &models.Item{
		ID:          row.ID,
		ListID:      row.ListID,
		Description: models.ItemDescription(row.Description),
		Completed:   row.Completed,
	}
}

func rowsToItems(rows []db.Todo) []*models.Item {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items
}
