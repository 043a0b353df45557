package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// TaskForm is bound from both regular form posts and AJAX requests.
// Field names follow the form field names so validation errors can be
// keyed the way the client expects.
type TaskForm struct {
	Title       string `form:"title" json:"title" validate:"required,max=200"`
	Description string `form:"description" json:"description"`
	DueDate     string `form:"due_date" json:"due_date" validate:"omitempty,datetime=2006-01-02,nopastdate"`
	Completed   bool   `form:"completed" json:"completed"`
}

// Normalize trims surrounding whitespace so a blank title fails required.
func (f *TaskForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DueDate = strings.TrimSpace(f.DueDate)
}

// ParsedDueDate returns the due date as a date value, or nil when absent.
// Call only after validation has accepted the format.
func (f *TaskForm) ParsedDueDate() *time.Time {
	if f.DueDate == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", f.DueDate)
	if err != nil {
		return nil
	}
	return &d
}

// TaskPayload is the data-mode representation of a task.
type TaskPayload struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"due_date"`
	Completed   bool      `json:"completed"`
}

func TaskToPayload(task *models.Task) *TaskPayload {
	payload := &TaskPayload{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format("2006-01-02")
		payload.DueDate = &due
	}
	return payload
}
