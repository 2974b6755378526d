package repositories

import (
	"context"

	"github.com/ghuser/todolists/services/todo/domain/models"
)

// ListRepository is the persistence interface for the List aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every mutating method runs in its own transaction.
type ListRepository interface {
	// Create inserts list and sets its generated ID.
	Create(ctx context.Context, list *models.List) error
	GetByID(ctx context.Context, id int64) (*models.List, error)

	// FindAll returns every list ordered by ascending ID.
	FindAll(ctx context.Context) ([]*models.List, error)

	// GetView reads all lists, the list with the given ID and its items in
	// one transaction. Returns ErrListNotFound if the list does not exist.
	GetView(ctx context.Context, id int64) (*models.ListView, error)

	// Delete removes the list and every item it owns as one atomic unit and
	// returns the number of items removed. Returns ErrListNotFound if absent.
	Delete(ctx context.Context, id int64) (int64, error)

	// CompleteAll marks every item of the list completed and returns how many
	// items the list holds. Returns ErrListNotFound if absent.
	CompleteAll(ctx context.Context, id int64) (int64, error)
}
