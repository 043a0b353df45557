package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/web/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.HomeHandler.Health)
}
