package utils

import (
	"github.com/gofiber/fiber/v2"
)

// IsAJAX reports whether the request asked for the data-mode response.
// The header is a convention, not a security measure.
func IsAJAX(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "XMLHttpRequest"
}

// ========== Data-mode responses ==========

func TaskSuccessResponse(c *fiber.Ctx, status int, task any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

func DeletedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func FormErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  errs,
	})
}

func ErrorJSONResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
