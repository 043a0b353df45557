package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	// ListTasks returns the user's tasks in the default ordering,
	// optionally filtered by completion state.
	ListTasks(ctx context.Context, userID uuid.UUID, completed *bool) ([]*models.Task, error)
	CreateTask(ctx context.Context, userID uuid.UUID, form *dto.TaskForm) (*models.Task, error)
	// UpdateTask applies the whole form to the owner-scoped task.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, form *dto.TaskForm) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
