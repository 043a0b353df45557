package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"taskboard/application/serviceimpl"
	"taskboard/domain/models"
	"taskboard/interfaces/web/handlers"
	"taskboard/interfaces/web/middleware"
	"taskboard/interfaces/web/routes"
	"taskboard/interfaces/web/views"
)

type memTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) GetByIDAndUser(_ context.Context, id, userID uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, errors.New("record not found")
	}
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID uuid.UUID, completed *bool) ([]*models.Task, error) {
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
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return errors.New("record not found")
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type testEnv struct {
	app      *fiber.App
	taskRepo *memTaskRepo
	userRepo *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	taskRepo := &memTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
	userRepo := &memUserRepo{users: make(map[uuid.UUID]*models.User)}

	userService := serviceimpl.NewUserService(userRepo)
	taskService := serviceimpl.NewTaskService(taskRepo)

	store := session.New()

	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ErrorHandler: middleware.ErrorHandler(),
		// The in-memory fakes retain strings past the request; without
		// Immutable they alias fasthttp's reused buffers and get
		// overwritten by the next request in multi-user tests.
		Immutable: true,
	})

	h := handlers.NewHandlers(&handlers.Services{
		UserService:  userService,
		TaskService:  taskService,
		SessionStore: store,
	})
	routes.SetupRoutes(app, h, store, userService)

	return &testEnv{app: app, taskRepo: taskRepo, userRepo: userRepo}
}

// signUp registers an account through the real endpoint and returns the
// session cookie it sets.
func (e *testEnv) signUp(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	form := url.Values{
		"name":             {"Test User"},
		"email":            {email},
		"password":         {password},
		"password_confirm": {password},
	}

	resp := e.do(t, formRequest(http.MethodPost, "/users/register/", form, nil))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register returned %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("register did not set a session cookie")
	return nil
}

func (e *testEnv) seedTask(userID uuid.UUID, title string, completed bool) *models.Task {
	task := &models.Task{
		ID:        uuid.New(),
		Title:     title,
		Completed: completed,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	e.taskRepo.tasks[task.ID] = task
	return task
}

func (e *testEnv) userIDByEmail(t *testing.T, email string) uuid.UUID {
	t.Helper()
	user, err := e.userRepo.GetByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("no user for %s", email)
	}
	return user.ID
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func formRequest(method, path string, form url.Values, cookie *http.Cookie) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func asAJAX(req *http.Request) *http.Request {
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(body)
}
