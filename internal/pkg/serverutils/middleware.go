package serverutils

import (
	"errors"
	"time"

	"exam-variation-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const moduleHTTP = "http"

// NewErrorHandler renders unhandled errors as ErrorBody. Internal error
// messages are only exposed when debug is set.
func NewErrorHandler(log logger.ILogger, debug bool) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else if debug {
			message = err.Error()
		}

		if code >= fiber.StatusInternalServerError {
			log.Error(moduleHTTP, "request failed", map[string]interface{}{
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"request_id": ctx.Locals("requestid"),
				"error":      err,
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}

// RequestLogger logs one line per request after the handler chain has run.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		log.Info(moduleHTTP, "request", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": ctx.Locals("requestid"),
		})
		return err
	}
}
