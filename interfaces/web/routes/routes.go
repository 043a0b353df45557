package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/domain/services"
	"taskboard/interfaces/web/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, store *session.Store, users services.UserService) {
	SetupHealthRoutes(app, h)

	app.Get("/", h.HomeHandler.Home)

	SetupUserRoutes(app, h, store)
	SetupTaskRoutes(app, h, store, users)

	// Anything unrouted goes through the shared error presenter.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
