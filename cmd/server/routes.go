package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	h := deps.Handlers

	app.Get("/health", h.Health.Health)

	// Prometheus exposition; the adaptor preserves the content type the
	// scraper expects.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/items", h.Items.ListItems)
	app.Post("/items", h.Items.CreateItem)
	app.Get("/items/:id", h.Items.GetItem)
	app.Put("/items/:id", h.Items.UpdateItem)
	app.Delete("/items/:id", h.Items.DeleteItem)
}
