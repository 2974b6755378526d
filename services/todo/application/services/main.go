package services

import (
	"github.com/ghuser/todolists/pkg/app"
	"github.com/ghuser/todolists/pkg/cache"
	"github.com/ghuser/todolists/pkg/logger"
	"github.com/ghuser/todolists/services/todo/domain/repositories"
	"github.com/ghuser/todolists/services/todo/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Lists *ListService
	Items *ItemService
}

// New wires all todo application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return NewWithRepositories(
		postgres.NewListRepository(a.Db, a.EventBus),
		postgres.NewItemRepository(a.Db, a.EventBus),
		cache.NewListItemsCache(a.Redis),
		a.Logger,
	)
}

// NewWithRepositories wires the services over arbitrary repository
// implementations. itemsCache may be nil.
func NewWithRepositories(
	lists repositories.ListRepository,
	items repositories.ItemRepository,
	itemsCache *cache.ListItemsCache,
	log logger.Logger,
) *Services {
	m := newInstruments()
	return &Services{
		Lists: &ListService{repo: lists, cache: itemsCache, log: log, metrics: m},
		Items: &ItemService{repo: items, cache: itemsCache, log: log, metrics: m},
	}
}
