package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/todolists/pkg/app"
	"github.com/ghuser/todolists/services/todo/application/handlers"
	appsvcs "github.com/ghuser/todolists/services/todo/application/services"
)

// TodoRoutes registers list and item endpoints on the provided chi router.
func TodoRoutes(r chi.Router, a *app.Application) {
	Register(r, appsvcs.New(a), a)
}

// Register mounts the todo endpoints over already wired services.
func Register(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	log := a.Logger
	r.Group(func(r chi.Router) {
		r.Get("/", handlers.NewGetIndexHandler(a.IndexListID).Execute)

		r.Route("/todos", func(r chi.Router) {
			r.Post("/create", handlers.NewPostItemHandler(svcs, log).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs, log).Execute)
			r.Post("/{id}/set-completed", handlers.NewPostItemCompletedHandler(svcs, log).Execute)
			r.Post("/{id}/set-complete", handlers.NewPostItemCompleteHandler(svcs, log).Execute)
			r.Delete("/{id}/delete", handlers.NewDeleteItemHandler(svcs, log).Execute)
		})

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", handlers.NewGetListsHandler(svcs, log).Execute)
			r.Post("/create", handlers.NewPostListHandler(svcs, log).Execute)
			r.Get("/{id}", handlers.NewGetListHandler(svcs, log).Execute)
			r.Get("/{id}/todos", handlers.NewGetListItemsHandler(svcs, log).Execute)
			r.Delete("/{id}/delete", handlers.NewDeleteListHandler(svcs, log).Execute)
			r.Post("/{id}/set-completed", handlers.NewPostListCompletedHandler(svcs, log).Execute)
		})
	})
}
