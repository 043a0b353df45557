package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/interfaces/web/middleware"
)

type HomeHandler struct {
	store *session.Store
}

func NewHomeHandler(store *session.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	_, loggedIn := middleware.SessionUserID(h.store, c)
	return c.Render("home", fiber.Map{
		"LoggedIn": loggedIn,
	}, "layouts/main")
}

func (h *HomeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
