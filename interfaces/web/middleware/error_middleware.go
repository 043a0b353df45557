package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// ErrorHandler is the single exit point for unhandled errors. It picks
// the JSON or HTML presentation from the AJAX marker and never exposes
// the underlying error to the client.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			code = fiber.StatusInternalServerError
			logger.ErrorContext(c.UserContext(), "Unhandled error",
				"error", err,
				"method", c.Method(),
				"path", c.Path(),
			)
		}

		var pageMessage string
		switch code {
		case fiber.StatusNotFound:
			pageMessage = "Page Not Found."
		case fiber.StatusInternalServerError:
			pageMessage = "Internal Server Error."
		default:
			pageMessage = http.StatusText(code) + "."
		}

		if utils.IsAJAX(c) {
			return utils.ErrorJSONResponse(c, code, http.StatusText(code))
		}

		renderErr := c.Status(code).Render("error", fiber.Map{
			"StatusCode": code,
			"Message":    pageMessage,
		}, "layouts/main")
		if renderErr != nil {
			return c.Status(code).SendString(pageMessage)
		}
		return nil
	}
}
