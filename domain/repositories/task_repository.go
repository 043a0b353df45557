package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// TaskRepository scopes every single-row operation by both task id and
// owner id so a foreign task is indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	// ListByUser returns the user's tasks in the default ordering
	// (completed asc, due date asc with nulls last, created at asc).
	// completed filters the list when non-nil.
	ListByUser(ctx context.Context, userID uuid.UUID, completed *bool) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// DeleteByIDAndUser reports how many rows were removed so the caller
	// can map zero to a not-found result.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
