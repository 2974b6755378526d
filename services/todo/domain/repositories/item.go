package repositories

import (
	"context"

	"github.com/ghuser/todolists/services/todo/domain/models"
)

// ItemRepository is the persistence interface for Items.
type ItemRepository interface {
	// Create inserts item and sets its generated ID. Returns ErrInvalidItem
	// if item.ListID does not reference an existing list.
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// FindByListID returns the items of a list ordered by ascending ID.
	FindByListID(ctx context.Context, listID int64) ([]*models.Item, error)

	// SetCompleted updates the completion flag and returns the updated item.
	// Returns ErrItemNotFound if no item has that ID.
	SetCompleted(ctx context.Context, id int64, completed bool) (*models.Item, error)

	// Delete removes the item and returns it. Deleting an ID that does not
	// exist is not an error; the returned item is nil in that case.
	Delete(ctx context.Context, id int64) (*models.Item, error)
}
