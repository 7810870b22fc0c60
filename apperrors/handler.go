package apperrors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandlerConfig configures the error handler
type HandlerConfig struct {
	// Logger for error logging
	Logger *log.Logger

	// OnError is called for each error (useful for metrics/monitoring)
	OnError func(c *fiber.Ctx, err *AppError)
}

// DefaultHandlerConfig returns sensible defaults
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		Logger:  log.Default(),
		OnError: nil,
	}
}

// Handler creates a Fiber error handler. Every handler-level failure ends up
// here and is converted to the flat {"error": message} JSON body clients
// expect, with the status code carried by the AppError.
func Handler(config HandlerConfig) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := FromError(err)

		if config.Logger != nil {
			logError(config.Logger, c, appErr)
		}

		if config.OnError != nil {
			config.OnError(c, appErr)
		}

		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}
}

// logError logs the error with request context
func logError(logger *log.Logger, c *fiber.Ctx, err *AppError) {
	// Expected client errors stay at warning level
	if err.StatusCode < 500 {
		logger.Printf("[WARN] %s %s | %s | Status: %d | User: %v",
			c.Method(), c.Path(), err.Error(), err.StatusCode, c.Locals("user_id"))
		return
	}

	logger.Printf("[ERROR] %s %s | %s | Status: %d | IP: %s | User: %v",
		c.Method(), c.Path(), err.Error(), err.StatusCode, c.IP(), c.Locals("user_id"))

	if err.Internal != nil {
		logger.Printf("[ERROR] Internal error: %+v", err.Internal)
	}
}
