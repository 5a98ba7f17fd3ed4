package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/relatecrm/backend/api/handler"
)

type Handlers struct {
	Entity   *apiHandler.EntityHandler
	Export   *apiHandler.ExportHandler
	FileTree *apiHandler.FileTreeHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Fixed surfaces; static segments win over the generic entity routes.
	r.GET("/api/v1/state", handlers.Entity.State)
	r.GET("/api/v1/filetree", handlers.FileTree.Get)
	r.PUT("/api/v1/filetree", handlers.FileTree.Put)

	// Generic entity CRUD; the entity segment is resolved by the store
	// (case-insensitive, alias-aware).
	r.GET("/api/v1/{entity}", handlers.Entity.List)
	r.POST("/api/v1/{entity}", handlers.Entity.Create)
	r.GET("/api/v1/{entity}/export", handlers.Export.Entity)
	r.GET("/api/v1/{entity}/{id}", handlers.Entity.Get)
	r.PUT("/api/v1/{entity}/{id}", handlers.Entity.Update)
	r.PATCH("/api/v1/{entity}/{id}", handlers.Entity.Update)
	r.DELETE("/api/v1/{entity}/{id}", handlers.Entity.Delete)
	r.GET("/api/v1/{entity}/{id}/history", handlers.Entity.History)

	return r
}
