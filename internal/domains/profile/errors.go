package profile

import "portfolio-backend/internal/shared/apperror"

var (
	ErrNotFound = apperror.NotFound("PROFILE_NOT_FOUND", "Profile not found")

	// ErrAlreadyExists enforces the singleton invariant at the store
	// boundary: a second insert is rejected, not silently ignored.
	ErrAlreadyExists = apperror.Conflict("PROFILE_ALREADY_EXISTS", "A profile already exists")
)

// ErrValidation names every missing required field at once.
func ErrValidation(fields ...string) error {
	return apperror.Validation("PROFILE_VALIDATION", "Missing required profile fields", fields...)
}
