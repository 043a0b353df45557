package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/interfaces/web/handlers"
	"taskboard/interfaces/web/middleware"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers, store *session.Store) {
	users := app.Group("/users")

	users.Get("/register/", h.AuthHandler.RegisterPage)
	users.Post("/register/", h.AuthHandler.Register)

	users.Get("/login/", middleware.RedirectIfAuthenticated(store), h.AuthHandler.LoginPage)
	users.Post("/login/", middleware.RedirectIfAuthenticated(store), h.AuthHandler.Login)

	// Logout accepts GET for plain links and POST for forms.
	users.Get("/logout/", h.AuthHandler.Logout)
	users.Post("/logout/", h.AuthHandler.Logout)
}
