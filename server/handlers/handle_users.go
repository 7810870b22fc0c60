package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"todoapi/apperrors"
	"todoapi/pkg/logger"
	"todoapi/pkg/metrics"
	"todoapi/store"
)

func HandleUserRegister(users *store.UsersStore, timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var req RequestUserRegister
		if err := ctx.BodyParser(&req); err != nil {
			return apperrors.NewBadRequest("Invalid request body")
		}

		if req.Username == "" || req.Password == "" || req.Name == "" {
			return apperrors.NewValidationError("username, password and name are required")
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Passwords are stored verbatim; the login contract compares them
		// byte-for-byte.
		userID, err := users.Register(dbCtx, req.Username, req.Password, req.Name)
		if err != nil {
			// Duplicate usernames surface here as a unique constraint
			// violation; the driver message is part of the response.
			return apperrors.NewValidationError(err.Error()).WithInternal(err)
		}

		metrics.RegistrationsTotal.Inc()
		logger.WithFields(map[string]any{
			"username": req.Username,
			"user_id":  userID,
		}).Info("User registered")

		return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User Registered Successfully",
		})
	}
}

func HandleUserLogin(users *store.UsersStore, timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var req RequestUserLogin
		if err := ctx.BodyParser(&req); err != nil {
			return apperrors.NewBadRequest("Invalid request body")
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		user, err := users.GetByUsername(dbCtx, req.Username)
		if err != nil {
			logger.WithFields(map[string]any{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Database error fetching user")
			return apperrors.NewBadRequest(err.Error()).WithInternal(err)
		}

		// Unknown username and wrong password produce the same response so
		// the caller cannot probe which one failed.
		if user == nil || user.Password != req.Password {
			metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
			return apperrors.NewInvalidCredentials()
		}

		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

		return ctx.JSON(ResponseUserLogin{
			UserID: user.ID,
			Name:   user.Name,
		})
	}
}
