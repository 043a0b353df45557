package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

const (
	sessionUserKey = "user_id"
	loginPath      = "/users/login/"
)

// RequireLogin resolves the session user and stores it in locals.
// Anonymous requests are redirected to the login page rather than
// answered with a 401, for browsers and AJAX clients alike.
func RequireLogin(store *session.Store, users services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}

		idStr, _ := sess.Get(sessionUserKey).(string)
		if idStr == "" {
			return c.Redirect(loginPath, fiber.StatusFound)
		}

		userID, err := uuid.Parse(idStr)
		if err != nil {
			return c.Redirect(loginPath, fiber.StatusFound)
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			// Stale session pointing at a removed account.
			logger.WarnContext(c.UserContext(), "Session user no longer exists", "user_id", idStr)
			_ = sess.Destroy()
			return c.Redirect(loginPath, fiber.StatusFound)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RedirectIfAuthenticated sends logged-in users home instead of showing
// the login form again.
func RedirectIfAuthenticated(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		if idStr, _ := sess.Get(sessionUserKey).(string); idStr != "" {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by RequireLogin.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

// EstablishSession rotates the session id and binds it to the user.
func EstablishSession(store *session.Store, c *fiber.Ctx, userID uuid.UUID) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID.String())
	return sess.Save()
}

// ClearSession drops the session whether or not one existed.
func ClearSession(store *session.Store, c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// SessionUserID reports the logged-in user id without loading the user.
func SessionUserID(store *session.Store, c *fiber.Ctx) (string, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return "", false
	}
	idStr, _ := sess.Get(sessionUserKey).(string)
	return idStr, idStr != ""
}
