package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smart-kitchen-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts service errors into the response
// envelope. Classified errors keep their message; anything else is
// masked as an internal error.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := apperror.HTTPStatus(err)
		message := err.Error()
		if status == fiber.StatusInternalServerError {
			message = "internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}
