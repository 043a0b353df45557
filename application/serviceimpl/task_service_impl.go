package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, completed *bool) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID, completed)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, form *dto.TaskForm) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.ParsedDueDate(),
		Completed:   form.Completed,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, form *dto.TaskForm) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUser(ctx, taskID, userID)
	if err != nil {
		// A task owned by someone else looks exactly like a missing one.
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID, "user_id", userID)
		return nil, apperrors.ErrNotFound
	}

	task.Title = form.Title
	task.Description = form.Description
	task.DueDate = form.ParsedDueDate()
	task.Completed = form.Completed
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	rows, err := s.taskRepo.DeleteByIDAndUser(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}
	if rows == 0 {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID, "user_id", userID)
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
