package experience

import "portfolio-backend/internal/shared/apperror"

var ErrNotFound = apperror.NotFound("EXPERIENCE_NOT_FOUND", "Experience not found")

func ErrValidation(fields ...string) error {
	return apperror.Validation("EXPERIENCE_VALIDATION", "Invalid experience fields", fields...)
}
