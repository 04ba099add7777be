package serverutils

import (
	"errors"
	"fmt"

	"notecraft-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusCoder is implemented by errors that know their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), err.Error()
	}
	return fiber.StatusInternalServerError, err.Error()
}

// ErrorHandlerMiddleware turns every returned error, and every panic, into
// the failure envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "Recovered from panic", map[string]interface{}{
					"path":  ctx.Path(),
					"panic": fmt.Sprint(r),
				})
				err = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
			}
		}()

		if nextErr := ctx.Next(); nextErr != nil {
			code, message := statusFor(nextErr)
			if code >= fiber.StatusInternalServerError {
				log.Error("HTTP", "Request failed", map[string]interface{}{
					"method": ctx.Method(),
					"path":   ctx.Path(),
					"error":  nextErr.Error(),
				})
			}
			return ctx.Status(code).JSON(ErrorResponse(code, message))
		}
		return nil
	}
}
