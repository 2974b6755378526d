package services

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ghuser/todolists/pkg/cache"
	"github.com/ghuser/todolists/pkg/logger"
	tododomain "github.com/ghuser/todolists/services/todo/domain"
	"github.com/ghuser/todolists/services/todo/domain/models"
	"github.com/ghuser/todolists/services/todo/domain/repositories"
	domainsvcs "github.com/ghuser/todolists/services/todo/domain/services"
)

// ItemService orchestrates creation, completion, deletion and retrieval of Items.
// Reads of a list's items are served from Redis when cached.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   *cache.ListItemsCache
	log     logger.Logger
	metrics *instruments
}

// Create validates and persists an Item in listID. The repository publishes
// ItemCreatedEvent and reports an unknown list as ErrInvalidItem.
func (s *ItemService) Create(ctx context.Context, listID int64, description string) (*models.Item, error) {
	desc, err := models.NewItemDescription(description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidItem, err)
	}

	item := models.NewItem(listID, desc)
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidItem, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	add(ctx, s.metrics.itemsCreated, 1)
	invalidate(ctx, s.cache, s.log, item.ListID)
	return item, nil
}

// GetByID returns a single Item. Returns ErrItemNotFound if absent.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// SetCompleted updates one Item's completed flag.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) SetCompleted(ctx context.Context, id int64, completed bool) (*models.Item, error) {
	item, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		return nil, fmt.Errorf("set item completed: %w", err)
	}
	add(ctx, s.metrics.itemsCompleted, 1, attribute.Bool("completed", completed))
	invalidate(ctx, s.cache, s.log, item.ListID)
	return item, nil
}

// Delete removes an Item. Deleting an ID that does not exist succeeds.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if item == nil {
		s.log.DebugContext(ctx, "delete of missing item ignored", "item_id", id)
		return nil
	}
	add(ctx, s.metrics.itemsDeleted, 1)
	invalidate(ctx, s.cache, s.log, item.ListID)
	return nil
}

// ListByList returns the Items of listID in ascending ID order using a
// read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), query the store.
//  3. Warm the cache with the store result.
func (s *ItemService) ListByList(ctx context.Context, listID int64) ([]*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listID)
		if err == nil {
			return fromCache(listID, cached), nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "cache read failed, falling back to store", "list_id", listID, "error", err)
		}
	}

	items, err := s.repo.FindByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listID, toCache(items)); err != nil {
			s.log.WarnContext(ctx, "cache warm failed", "list_id", listID, "error", err)
		}
	}
	return items, nil
}

func toCache(items []*models.Item) []cache.CachedItem {
	out := make([]cache.CachedItem, len(items))
	for i, it := range items {
		out[i] = cache.CachedItem{
			ID:          it.ID,
			Description: it.Description.String(),
			Completed:   it.Completed,
		}
	}
	return out
}

func fromCache(listID int64, cached []cache.CachedItem) []*models.Item {
	out := make([]*models.Item, len(cached))
	for i, c := range cached {
		out[i] = &models.Item{
			ID:          c.ID,
			ListID:      listID,
			Description: models.ItemDescription(c.Description),
			Completed:   c.Completed,
		}
	}
	return out
}
