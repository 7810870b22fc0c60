// Package identity implements the request pipeline guarding the todo
// routes: identity header check, id allow-list validation, then per-user
// store provisioning. Each step can short-circuit with a terminal response.
package identity

import (
	"github.com/gofiber/fiber/v2"

	"todoapi/apperrors"
	"todoapi/pkg/logger"
	"todoapi/store"
	"todoapi/utils"
)

func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		userID := c.Get(cfg.Header)
		if userID == "" {
			return apperrors.NewUnauthorized("User ID is required")
		}

		// The id names a database file; reject anything outside the
		// allow-list before it reaches the registry.
		if err := utils.ValidateUserID(userID); err != nil {
			return err
		}

		ts, err := cfg.Registry.OpenOrCreate(userID)
		if err != nil {
			return apperrors.NewStorageInitError(err)
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsStore, ts)

		err = c.Next()

		if cerr := ts.Close(); cerr != nil {
			logger.WithFields(map[string]any{
				"user_id": userID,
				"error":   cerr.Error(),
			}).Warn("Failed to close per-user todo store")
		}

		return err
	}
}

// StoreFromCtx returns the request-scoped todo store placed in Locals by the
// middleware, or nil when the middleware did not run.
func StoreFromCtx(c *fiber.Ctx) *store.TodoStore {
	ts, _ := c.Locals(LocalsStore).(*store.TodoStore)
	return ts
}

// UserIDFromCtx returns the validated user id for the current request.
func UserIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}
