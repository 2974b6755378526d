package services

import (
	"context"
	"fmt"

	"github.com/ghuser/todolists/pkg/cache"
	"github.com/ghuser/todolists/pkg/logger"
	tododomain "github.com/ghuser/todolists/services/todo/domain"
	"github.com/ghuser/todolists/services/todo/domain/models"
	"github.com/ghuser/todolists/services/todo/domain/repositories"
	domainsvcs "github.com/ghuser/todolists/services/todo/domain/services"
)

// ListService orchestrates creation, completion and deletion of Lists.
// Event publishing is handled by the repository layer (outbox pattern).
type ListService struct {
	repo    repositories.ListRepository
	cache   *cache.ListItemsCache
	log     logger.Logger
	metrics *instruments
}

// Create validates and persists a List. The repository publishes ListCreatedEvent.
func (s *ListService) Create(ctx context.Context, name string) (*models.List, error) {
	listName, err := models.NewListName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidList, err)
	}

	list := models.NewList(listName)
	if err := domainsvcs.ValidateListForCreation(list); err != nil {
		return nil, fmt.Errorf("%w: %w", tododomain.ErrInvalidList, err)
	}

	if err := s.repo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("save list: %w", err)
	}
	add(ctx, s.metrics.listsCreated, 1)
	return list, nil
}

// Get returns a single List. Returns ErrListNotFound if absent.
func (s *ListService) Get(ctx context.Context, id int64) (*models.List, error) {
	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return list, nil
}

// GetAll returns every List ordered by ID.
func (s *ListService) GetAll(ctx context.Context) ([]*models.List, error) {
	lists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// View returns the list page read model for id.
// Returns ErrListNotFound if the list does not exist.
func (s *ListService) View(ctx context.Context, id int64) (*models.ListView, error) {
	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get list view: %w", err)
	}
	return view, nil
}

// Delete removes a List together with all of its Items.
// Returns ErrListNotFound if no matching list exists.
func (s *ListService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	add(ctx, s.metrics.listsDeleted, 1)
	add(ctx, s.metrics.itemsDeleted, n)
	invalidate(ctx, s.cache, s.log, id)
	return nil
}

// CompleteAll marks every Item of the List completed.
// Returns ErrListNotFound if no matching list exists.
func (s *ListService) CompleteAll(ctx context.Context, id int64) error {
	n, err := s.repo.CompleteAll(ctx, id)
	if err != nil {
		return fmt.Errorf("complete list: %w", err)
	}
	add(ctx, s.metrics.listsCompleted, 1)
	s.log.DebugContext(ctx, "list completed", "list_id", id, "item_count", n)
	invalidate(ctx, s.cache, s.log, id)
	return nil
}

// invalidate drops the cached items of listID after a committed write.
// Cache failures are logged, never returned: the store is the source of truth
// and the worker invalidates again when it sees the event.
func invalidate(ctx context.Context, c *cache.ListItemsCache, log logger.Logger, listID int64) {
	if c == nil {
		return
	}
	if err := c.Invalidate(context.WithoutCancel(ctx), listID); err != nil {
		log.WarnContext(ctx, "cache invalidation failed", "list_id", listID, "error", err)
	}
}
