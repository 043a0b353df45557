package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/interfaces/web/middleware"
	"taskboard/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	store       *session.Store
}

func NewAuthHandler(userService services.UserService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		store:       store,
	}
}

func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("users/register", fiber.Map{
		"Form":   &dto.RegisterForm{},
		"Errors": nil,
	}, "layouts/main")
}

// Register creates the account and logs the new user straight in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	form.Normalize()

	if err := utils.ValidateStruct(&form); err != nil {
		return h.registerFailure(c, &form, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(ctx, &form)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			return h.registerFailure(c, &form, ve.Fields)
		}
		return err
	}

	if err := middleware.EstablishSession(h.store, c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) registerFailure(c *fiber.Ctx, form *dto.RegisterForm, errs map[string]string) error {
	// Never echo passwords back into the form.
	form.Password = ""
	form.PasswordConfirm = ""
	return c.Render("users/register", fiber.Map{
		"Form":   form,
		"Errors": errs,
	}, "layouts/main")
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("users/login", fiber.Map{
		"Form":          &dto.LoginForm{},
		"Errors":        nil,
		"NonFieldError": "",
	}, "layouts/main")
}

// Login verifies credentials without revealing which of the two fields
// was wrong; only an inactive account gets a distinct message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	form.Normalize()

	if err := utils.ValidateStruct(&form); err != nil {
		return h.loginFailure(c, &form, utils.GetValidationErrors(err), "")
	}

	user, err := h.userService.VerifyCredentials(ctx, form.Email, form.Password)
	if err != nil {
		if ae, ok := apperrors.AsAuthError(err); ok {
			return h.loginFailure(c, &form, nil, ae.Message)
		}
		return err
	}

	if err := middleware.EstablishSession(h.store, c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) loginFailure(c *fiber.Ctx, form *dto.LoginForm, errs map[string]string, nonFieldError string) error {
	form.Password = ""
	return c.Render("users/login", fiber.Map{
		"Form":          form,
		"Errors":        errs,
		"NonFieldError": nonFieldError,
	}, "layouts/main")
}

// Logout clears the session whether or not one existed.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.ClearSession(h.store, c); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}
