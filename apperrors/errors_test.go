package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCodes(t *testing.T) {
	assert.Equal(t, fiber.StatusUnauthorized, NewUnauthorized("User ID is required").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, NewInvalidCredentials().StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, NewValidationError("bad").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, NewTodoNotFound().StatusCode)
	assert.Equal(t, fiber.StatusInternalServerError, NewStorageInitError(errors.New("boom")).StatusCode)
	assert.Equal(t, fiber.StatusTooManyRequests, NewRateLimitError().StatusCode)
}

func TestInvalidCredentialsMessage(t *testing.T) {
	// Unknown username and wrong password must produce the same message
	assert.Equal(t, "Invalid Credentials", NewInvalidCredentials().Message)
}

func TestStorageInitErrorEmbedsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageInitError(cause)
	assert.Equal(t, "Error initializing user database: disk full", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	appErr := NewValidationError("nope")
	assert.Same(t, appErr, FromError(appErr))
	assert.Same(t, appErr, FromError(fmt.Errorf("wrapped: %w", appErr)))

	converted := FromError(errors.New("plain failure"))
	assert.Equal(t, ErrCodeInternal, converted.Code)
	assert.Equal(t, fiber.StatusInternalServerError, converted.StatusCode)

	assert.Nil(t, FromError(nil))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := NewDatabaseError("get todo", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "root", err.Message)
}
