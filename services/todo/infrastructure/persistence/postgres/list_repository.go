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

// ListRepository implements repositories.ListRepository against PostgreSQL.
type ListRepository struct {
	db     *database.Database
	outbox outbox
}

// NewListRepository returns a ListRepository backed by the given connection pool
// and event bus. A nil bus disables event publishing.
func NewListRepository(d *database.Database, bus *events.EventBus) *ListRepository {
	return &ListRepository{db: d, outbox: outbox{bus: bus}}
}

// Create persists a new List and publishes ListCreatedEvent within the same transaction.
func (r *ListRepository) Create(ctx context.Context, list *models.List) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).InsertList(ctx, list.Name.String())
		if err != nil {
			if pgErrorCode(err) == pgCheckViolation {
				return fmt.Errorf("%w: %w", tododomain.ErrInvalidList, err)
			}
			return fmt.Errorf("insert list: %w", err)
		}
		list.ID = row.ID

		evt := domainevents.ListCreatedEvent{
			Envelope: domainevents.NewEnvelope(list.ID),
			Name:     list.Name.String(),
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicListCreated, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish list created: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a List by ID. Returns ErrListNotFound if not found.
func (r *ListRepository) GetByID(ctx context.Context, id int64) (*models.List, error) {
	row, err := db.New(r.db.DB()).GetList(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tododomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query list: %w", err)
	}
	return rowToList(row), nil
}

// FindAll returns every List ordered by ID.
func (r *ListRepository) FindAll(ctx context.Context) ([]*models.List, error) {
	rows, err := db.New(r.db.DB()).ListLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	return rowsToLists(rows), nil
}

// GetView reads all lists, the active list and its ordered items from one
// snapshot.
func (r *ListRepository) GetView(ctx context.Context, id int64) (*models.ListView, error) {
	var view *models.ListView
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		active, err := q.GetList(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return tododomain.ErrListNotFound
			}
			return fmt.Errorf("query list: %w", err)
		}

		lists, err := q.ListLists(ctx)
		if err != nil {
			return fmt.Errorf("query lists: %w", err)
		}

		todos, err := q.ListTodosByListID(ctx, id)
		if err != nil {
			return fmt.Errorf("query items: %w", err)
		}

		view = &models.ListView{
			Lists:  rowsToLists(lists),
			Active: rowToList(active),
			Items:  rowsToItems(todos),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes a List and all of its Items atomically and publishes
// ListDeletedEvent. The list row is locked first so no item can be inserted
// into it while the delete is in flight.
func (r *ListRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var removed int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		if _, err := q.GetListForUpdate(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return tododomain.ErrListNotFound
			}
			return fmt.Errorf("lock list: %w", err)
		}

		n, err := q.DeleteTodosByListID(ctx, id)
		if err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if _, err := q.DeleteList(ctx, id); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		removed = n

		evt := domainevents.ListDeletedEvent{
			Envelope:  domainevents.NewEnvelope(id),
			ItemCount: n,
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicListDeleted, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish list deleted: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// CompleteAll marks every Item of the List completed and publishes ListCompletedEvent.
func (r *ListRepository) CompleteAll(ctx context.Context, id int64) (int64, error) {
	var updated int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		if _, err := q.GetListForUpdate(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return tododomain.ErrListNotFound
			}
			return fmt.Errorf("lock list: %w", err)
		}

		n, err := q.CompleteTodosByListID(ctx, id)
		if err != nil {
			return fmt.Errorf("complete items: %w", err)
		}
		updated = n

		evt := domainevents.ListCompletedEvent{
			Envelope:  domainevents.NewEnvelope(id),
			ItemCount: n,
		}
		if err := r.outbox.publish(ctx, tx, domainevents.TopicListCompleted, evt.Envelope, evt); err != nil {
			return fmt.Errorf("publish list completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func rowToList(row db.Todolist) *models.List {
	return &models.List{
		ID:   row.ID,
		Name: models.ListName(row.Name),
	}
}

func rowsToLists(rows []db.Todolist) []*models.List {
	lists := make([]*models.List, len(rows))
	for i, row := range rows {
		lists[i] = rowToList(row)
	}
	return lists
}
