package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// fakeTaskRepo keeps tasks in memory and reproduces the repository's
// default ordering: completed asc, due date asc with nulls last,
// creation time asc.
type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByIDAndUser(_ context.Context, id, userID uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, errors.New("record not found")
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID uuid.UUID, completed *bool) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if completed != nil && task.Completed != *completed {
			continue
		}
		copied := *task
		out = append(out, &copied)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return errors.New("record not found")
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

func datePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func seedTask(repo *fakeTaskRepo, userID uuid.UUID, title string, completed bool, due *time.Time, createdAt time.Time) *models.Task {
	task := &models.Task{
		ID:        uuid.New(),
		Title:     title,
		Completed: completed,
		DueDate:   due,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	repo.tasks[task.ID] = task
	return task
}

func TestListTasksOrdering(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	now := time.Now()
	yesterday := datePtr(now.AddDate(0, 0, -1))
	today := datePtr(now)
	tomorrow := datePtr(now.AddDate(0, 0, 1))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedTask(repo, userID, "first", false, tomorrow, base)
	seedTask(repo, userID, "second", true, yesterday, base.Add(time.Minute))
	seedTask(repo, userID, "third", false, today, base.Add(2*time.Minute))
	seedTask(repo, userID, "fourth", true, tomorrow, base.Add(3*time.Minute))
	seedTask(repo, userID, "fifth", false, tomorrow, base.Add(4*time.Minute))

	tasks, err := svc.ListTasks(context.Background(), userID, nil)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	want := []string{"third", "first", "fifth", "second", "fourth"}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestListTasksNilDueDateSortsLast(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedTask(repo, userID, "no due date", false, nil, base)
	seedTask(repo, userID, "dated", false, datePtr(time.Now().AddDate(0, 1, 0)), base.Add(time.Minute))

	tasks, err := svc.ListTasks(context.Background(), userID, nil)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	if tasks[0].Title != "dated" || tasks[1].Title != "no due date" {
		t.Errorf("got order [%q, %q], want dated first", tasks[0].Title, tasks[1].Title)
	}
}

func TestListTasksCompletedFilter(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedTask(repo, userID, "open", false, nil, base)
	seedTask(repo, userID, "done", true, nil, base.Add(time.Minute))

	completed := true
	tasks, err := svc.ListTasks(context.Background(), userID, &completed)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "done" {
		t.Fatalf("completed filter returned %v", tasks)
	}

	completed = false
	tasks, err = svc.ListTasks(context.Background(), userID, &completed)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "open" {
		t.Fatalf("incomplete filter returned %v", tasks)
	}
}

func TestListTasksOnlyOwn(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	alice := uuid.New()
	bob := uuid.New()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedTask(repo, alice, "alice task", false, nil, base)
	seedTask(repo, bob, "bob task", false, nil, base)

	tasks, err := svc.ListTasks(context.Background(), alice, nil)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "alice task" {
		t.Fatalf("expected only alice's task, got %v", tasks)
	}
}

func TestCreateTask(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	due := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	form := &dto.TaskForm{Title: "Buy milk", Description: "2 liters", DueDate: due}

	task, err := svc.CreateTask(context.Background(), userID, form)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.UserID != userID {
		t.Errorf("UserID = %v, want %v", task.UserID, userID)
	}
	if task.Completed {
		t.Error("new task must start incomplete")
	}
	if task.DueDate == nil || task.DueDate.Format("2006-01-02") != due {
		t.Errorf("DueDate = %v, want %s", task.DueDate, due)
	}
	if _, ok := repo.tasks[task.ID]; !ok {
		t.Error("task not persisted")
	}
}

func TestUpdateTaskForeignOwnerIsNotFound(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	owner := uuid.New()
	intruder := uuid.New()

	task := seedTask(repo, owner, "private", false, nil, time.Now())

	_, err := svc.UpdateTask(context.Background(), intruder, task.ID, &dto.TaskForm{Title: "hijacked"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if repo.tasks[task.ID].Title != "private" {
		t.Error("task was modified by a non-owner")
	}
}

func TestUpdateTask(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	task := seedTask(repo, userID, "old title", false, nil, time.Now())

	form := &dto.TaskForm{Title: "new title", Completed: true}
	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, form)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Title != "new title" || !updated.Completed {
		t.Errorf("got %+v, want title and completed updated", updated)
	}
	if repo.tasks[task.ID].Title != "new title" {
		t.Error("update not persisted")
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	owner := uuid.New()
	intruder := uuid.New()

	task := seedTask(repo, owner, "doomed", false, nil, time.Now())

	if err := svc.DeleteTask(context.Background(), intruder, task.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("foreign delete err = %v, want ErrNotFound", err)
	}
	if _, ok := repo.tasks[task.ID]; !ok {
		t.Fatal("task deleted by a non-owner")
	}

	if err := svc.DeleteTask(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, ok := repo.tasks[task.ID]; ok {
		t.Error("task still present after delete")
	}

	if err := svc.DeleteTask(context.Background(), owner, task.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("repeat delete err = %v, want ErrNotFound", err)
	}
}
