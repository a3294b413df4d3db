package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// ErrorHandler writes plain text error responses. Anything that is not a
// *fiber.Error becomes a generic 500; the detail goes to the log only.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Redirect error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			logger.Error("redirect error",
				"request_id", requestid.FromContext(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
}
