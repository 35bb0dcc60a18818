package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error is the one error shape route handlers return. The central fiber
// ErrorHandler renders it; anything else becomes a generic 500.
type Error struct {
	Status  int
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: msg}
}

// Forbidden carries the required-vs-actual role detail the API contract
// promises on 403 responses.
func Forbidden(msg string, details map[string]interface{}) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: msg, Details: details}
}

func NotFound(msg string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: msg}
}

func Internal(cause error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: "Internal Server Error", cause: cause}
}

// Handler maps errors to JSON responses. Internal failures are logged
// with their cause but callers only ever see a generic message.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var e *Error
		if errors.As(err, &e) {
			if e.Status >= fiber.StatusInternalServerError {
				log.Error("request failed",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
				return c.Status(e.Status).JSON(fiber.Map{"error": "Internal Server Error"})
			}
			body := fiber.Map{"error": e.Message}
			for k, v := range e.Details {
				body[k] = v
			}
			return c.Status(e.Status).JSON(body)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
