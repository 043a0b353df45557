package handlers

import (
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/domain/services"
)

// Services bundles everything the handlers need.
type Services struct {
	UserService  services.UserService
	TaskService  services.TaskService
	SessionStore *session.Store
}

type Handlers struct {
	TaskHandler *TaskHandler
	AuthHandler *AuthHandler
	HomeHandler *HomeHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		TaskHandler: NewTaskHandler(s.TaskService),
		AuthHandler: NewAuthHandler(s.UserService, s.SessionStore),
		HomeHandler: NewHomeHandler(s.SessionStore),
	}
}
