package utils

import (
	"regexp"

	"todoapi/apperrors"
)

var (
	userIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateUserID checks a caller-supplied user identifier before it is ever
// used to derive a storage location. The allow-list keeps path separators
// and other metacharacters out of database file names.
func ValidateUserID(userID string) *apperrors.AppError {
	if userID == "" {
		return apperrors.NewValidationError("User ID cannot be empty")
	}

	if len(userID) > 64 {
		return apperrors.NewValidationError("User ID cannot exceed 64 characters")
	}

	if !userIDRegex.MatchString(userID) {
		return apperrors.NewValidationError("User ID can only contain letters, numbers, underscores, and hyphens")
	}

	return nil
}
