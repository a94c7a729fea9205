package education

import "portfolio-backend/internal/shared/apperror"

var ErrNotFound = apperror.NotFound("EDUCATION_NOT_FOUND", "Education entry not found")

func ErrValidation(fields ...string) error {
	return apperror.Validation("EDUCATION_VALIDATION", "Invalid education fields", fields...)
}
