package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the greeting and diagnostics routes.
type HealthHandler struct {
	storeConfigured bool
}

// NewHealthHandler creates a new HealthHandler. storeConfigured reflects
// whether a document store handle was wired at startup.
func NewHealthHandler(storeConfigured bool) *HealthHandler {
	return &HealthHandler{
		storeConfigured: storeConfigured,
	}
}

// RegisterRoutes registers the greeting and health routes with the Fiber app.
func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleRoot)
	app.Get("/api/hello", h.HandleHello)
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the catalog backend!"})
}

func (h *HealthHandler) HandleHello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
}

// HandleHealth reports process health and whether the store is configured.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	database := "not configured"
	if h.storeConfigured {
		database = "connected"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": database,
	})
}
