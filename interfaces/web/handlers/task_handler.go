package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/interfaces/web/middleware"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

const taskListPath = "/tasks/"

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks renders the task list, optionally filtered by the completed
// query parameter. AJAX requests get the bare list fragment so the
// client can swap it in place.
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.ErrInternalServerError
	}

	tasks, err := h.taskService.ListTasks(ctx, user.ID, parseCompletedFilter(c.Query("completed")))
	if err != nil {
		return err
	}

	data := listPageData(user, tasks, &dto.TaskForm{}, nil)
	if utils.IsAJAX(c) {
		return c.Render("tasks/_task_list_items", data)
	}
	return c.Render("tasks/task_list", data, "layouts/main")
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.ErrInternalServerError
	}

	var form dto.TaskForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed task form", "error", err)
		return h.createFailure(c, user, &form, map[string]string{"__all__": "Invalid form data."})
	}
	form.Normalize()

	if err := utils.ValidateStruct(&form); err != nil {
		return h.createFailure(c, user, &form, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &form)
	if err != nil {
		return err
	}

	if utils.IsAJAX(c) {
		return utils.TaskSuccessResponse(c, fiber.StatusCreated, dto.TaskToPayload(task))
	}
	return c.Redirect(taskListPath, fiber.StatusFound)
}

// createFailure reports field errors: JSON for AJAX, otherwise the list
// page is re-rendered with the submitted form and its errors embedded.
func (h *TaskHandler) createFailure(c *fiber.Ctx, user *models.User, form *dto.TaskForm, errs map[string]string) error {
	if utils.IsAJAX(c) {
		return utils.FormErrorResponse(c, errs)
	}

	tasks, err := h.taskService.ListTasks(c.UserContext(), user.ID, nil)
	if err != nil {
		return err
	}
	return c.Render("tasks/task_list", listPageData(user, tasks, form, errs), "layouts/main")
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.ErrInternalServerError
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	var form dto.TaskForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed task form", "error", err)
		return h.updateFailure(c, map[string]string{"__all__": "Invalid form data."})
	}
	form.Normalize()

	if err := utils.ValidateStruct(&form); err != nil {
		return h.updateFailure(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &form)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	if utils.IsAJAX(c) {
		return utils.TaskSuccessResponse(c, fiber.StatusOK, dto.TaskToPayload(task))
	}
	return c.Redirect(taskListPath, fiber.StatusFound)
}

func (h *TaskHandler) updateFailure(c *fiber.Ctx, errs map[string]string) error {
	if utils.IsAJAX(c) {
		return utils.FormErrorResponse(c, errs)
	}
	return c.Redirect(taskListPath, fiber.StatusFound)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.ErrInternalServerError
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	err = h.taskService.DeleteTask(ctx, user.ID, taskID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	if utils.IsAJAX(c) {
		return utils.DeletedResponse(c)
	}
	return c.Redirect(taskListPath, fiber.StatusFound)
}

// parseCompletedFilter accepts only the literal strings "true" and
// "false"; anything else means no filter.
func parseCompletedFilter(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func listPageData(user *models.User, tasks []*models.Task, form *dto.TaskForm, errs map[string]string) fiber.Map {
	return fiber.Map{
		"User":   user,
		"Tasks":  tasks,
		"Form":   form,
		"Errors": errs,
	}
}
