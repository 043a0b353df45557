package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/domain/services"
	"taskboard/interfaces/web/handlers"
	"taskboard/interfaces/web/middleware"
)

// HTML forms only speak GET/POST, so mutations are POSTs on their own
// paths rather than PUT/DELETE.
func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, store *session.Store, users services.UserService) {
	tasks := app.Group("/tasks", middleware.RequireLogin(store, users))
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/create/", h.TaskHandler.CreateTask)
	tasks.Post("/:id/update/", h.TaskHandler.UpdateTask)
	tasks.Post("/:id/delete/", h.TaskHandler.DeleteTask)
}
