package main

import (
	"go.uber.org/zap"

	"github.com/catalogd/catalogd/internal/config"
	"github.com/catalogd/catalogd/internal/handler"
	"github.com/catalogd/catalogd/internal/pkg/database"
	pgrepo "github.com/catalogd/catalogd/internal/repository/postgres"
	"github.com/catalogd/catalogd/internal/service"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Database dialer; connections are opened per request
	Postgres *database.Postgres

	// Repositories
	ItemRepo *pgrepo.ItemRepository

	// Services
	ItemService *service.ItemService

	// Handlers
	Handlers *Handlers
}

// Handlers holds all handler instances
type Handlers struct {
	Health *handler.HealthHandler
	Items  *handler.ItemsHandler
}

// initDependencies initializes all dependencies. No connection is made
// here: the store is dialed per request, so a dead database delays nothing
// at startup and surfaces through the health endpoint instead.
func initDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Postgres = database.NewPostgres(cfg.Database)
	deps.ItemRepo = pgrepo.NewItemRepository(deps.Postgres)
	deps.ItemService = service.NewItemService(deps.ItemRepo)

	deps.Handlers = &Handlers{
		Health: handler.NewHealthHandler(deps.Postgres, logger),
		Items:  handler.NewItemsHandler(deps.ItemService, logger),
	}

	return deps
}
