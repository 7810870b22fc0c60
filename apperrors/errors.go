package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode represents application-specific error codes
type ErrorCode string

const (
	// Authentication & Identity
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidCreds ErrorCode = "INVALID_CREDENTIALS"

	// Validation
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// Storage
	ErrCodeStorageInit   ErrorCode = "STORAGE_INIT_FAILED"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"

	// Rate Limiting
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"

	// Internal Errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Internal   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// WithInternal wraps an internal error
func (e *AppError) WithInternal(err error) *AppError {
	e.Internal = err
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Pre-defined error constructors for common cases

func NewUnauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return New(ErrCodeUnauthorized, message, fiber.StatusUnauthorized)
}

// NewInvalidCredentials deliberately covers both unknown-username and
// wrong-password so the response never leaks which one failed.
func NewInvalidCredentials() *AppError {
	return New(ErrCodeInvalidCreds, "Invalid Credentials", fiber.StatusBadRequest)
}

func NewValidationError(message string) *AppError {
	return New(ErrCodeValidationFailed, message, fiber.StatusBadRequest)
}

func NewBadRequest(message string) *AppError {
	if message == "" {
		message = "Bad request"
	}
	return New(ErrCodeInvalidInput, message, fiber.StatusBadRequest)
}

func NewTodoNotFound() *AppError {
	return New(ErrCodeNotFound, "Todo not found", fiber.StatusNotFound)
}

// NewStorageInitError reports a failure to open or provision a per-user
// store. Fatal to the request, never to the process.
func NewStorageInitError(err error) *AppError {
	return New(ErrCodeStorageInit,
		fmt.Sprintf("Error initializing user database: %v", err),
		fiber.StatusInternalServerError).
		WithInternal(err)
}

// NewDatabaseError surfaces the underlying driver message, matching the
// API contract for handler-level storage failures.
func NewDatabaseError(operation string, err error) *AppError {
	return New(ErrCodeDatabaseError, err.Error(), fiber.StatusInternalServerError).
		WithInternal(fmt.Errorf("%s: %w", operation, err))
}

func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An internal error occurred"
	}
	return New(ErrCodeInternal, message, fiber.StatusInternalServerError)
}

func NewRateLimitError() *AppError {
	return New(ErrCodeRateLimited, "Too many requests. Please try again later.", fiber.StatusTooManyRequests)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// FromError converts a standard error to AppError if possible
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Convert known library errors
	if errors.Is(err, fiber.ErrUnauthorized) {
		return NewUnauthorized("")
	}
	if errors.Is(err, fiber.ErrNotFound) {
		return New(ErrCodeNotFound, "Resource not found", fiber.StatusNotFound)
	}
	if errors.Is(err, fiber.ErrBadRequest) {
		return NewValidationError("Invalid request")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return New(ErrCodeInternal, fiberErr.Message, fiberErr.Code).WithInternal(err)
	}

	// Default to internal error
	return NewInternalError("").WithInternal(err)
}
