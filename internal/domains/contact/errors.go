package contact

import "portfolio-backend/internal/shared/apperror"

var ErrNotFound = apperror.NotFound("MESSAGE_NOT_FOUND", "Message not found")

func ErrValidation(fields ...string) error {
	return apperror.Validation("MESSAGE_VALIDATION", "Missing required fields", fields...)
}
