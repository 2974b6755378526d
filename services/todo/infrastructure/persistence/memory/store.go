// Package memory is an in-process implementation of the todo repositories.
// It keeps the same contracts as the PostgreSQL implementation (ordering,
// idempotent item delete, atomic cascade) and backs the service and handler
// tests.
package memory

import (
	"context"
	"sort"
	"sync"

	tododomain "github.com/ghuser/todolists/services/todo/domain"
	"github.com/ghuser/todolists/services/todo/domain/models"
	"github.com/ghuser/todolists/services/todo/domain/repositories"
)

// Store holds lists and items behind a single mutex, so every operation is
// atomic with respect to the others.
type Store struct {
	mu       sync.Mutex
	lists    map[int64]models.List
	items    map[int64]models.Item
	nextList int64
	nextItem int64
	failNext error
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		lists: make(map[int64]models.List),
		items: make(map[int64]models.Item),
	}
}

// Lists returns the ListRepository view of the store.
func (s *Store) Lists() repositories.ListRepository { return (*listRepo)(s) }

// Items returns the ItemRepository view of the store.
func (s *Store) Items() repositories.ItemRepository { return (*itemRepo)(s) }

// FailNext makes the next repository call return err without touching
// state, simulating a store failure.
func (s *Store) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

// takeFailure must be called with mu held.
func (s *Store) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

// itemsOf must be called with mu held.
func (s *Store) itemsOf(listID int64) []*models.Item {
	var out []*models.Item
	for _, it := range s.items {
		if it.ListID == listID {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// allLists must be called with mu held.
func (s *Store) allLists() []*models.List {
	out := make([]*models.List, 0, len(s.lists))
	for _, l := range s.lists {
		l := l
		out = append(out, &l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type listRepo Store

func (r *listRepo) Create(_ context.Context, list *models.List) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.nextList++
	list.ID = s.nextList
	s.lists[list.ID] = *list
	return nil
}

func (r *listRepo) GetByID(_ context.Context, id int64) (*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	l, ok := s.lists[id]
	if !ok {
		return nil, tododomain.ErrListNotFound
	}
	return &l, nil
}

func (r *listRepo) FindAll(_ context.Context) ([]*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return s.allLists(), nil
}

func (r *listRepo) GetView(_ context.Context, id int64) (*models.ListView, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	l, ok := s.lists[id]
	if !ok {
		return nil, tododomain.ErrListNotFound
	}
	return &models.ListView{Lists: s.allLists(), Active: &l, Items: s.itemsOf(id)}, nil
}

func (r *listRepo) Delete(_ context.Context, id int64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return 0, err
	}
	if _, ok := s.lists[id]; !ok {
		return 0, tododomain.ErrListNotFound
	}
	var n int64
	for itemID, it := range s.items {
		if it.ListID == id {
			delete(s.items, itemID)
			n++
		}
	}
	delete(s.lists, id)
	return n, nil
}

func (r *listRepo) CompleteAll(_ context.Context, id int64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return 0, err
	}
	if _, ok := s.lists[id]; !ok {
		return 0, tododomain.ErrListNotFound
	}
	var n int64
	for itemID, it := range s.items {
		if it.ListID == id {
			it.Completed = true
			s.items[itemID] = it
			n++
		}
	}
	return n, nil
}

type itemRepo Store

func (r *itemRepo) Create(_ context.Context, item *models.Item) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.lists[item.ListID]; !ok {
		return tododomain.ErrInvalidItem
	}
	s.nextItem++
	item.ID = s.nextItem
	item.Completed = false
	s.items[item.ID] = *item
	return nil
}

func (r *itemRepo) GetByID(_ context.Context, id int64) (*models.Item, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, tododomain.ErrItemNotFound
	}
	return &it, nil
}

func (r *itemRepo) FindByListID(_ context.Context, listID int64) ([]*models.Item, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return s.itemsOf(listID), nil
}

func (r *itemRepo) SetCompleted(_ context.Context, id int64, completed bool) (*models.Item, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, tododomain.ErrItemNotFound
	}
	it.Completed = completed
	s.items[id] = it
	return &it, nil
}

func (r *itemRepo) Delete(_ context.Context, id int64) (*models.Item, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	delete(s.items, id)
	return &it, nil
}
