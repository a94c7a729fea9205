package skill

import "portfolio-backend/internal/shared/apperror"

var ErrNotFound = apperror.NotFound("SKILL_NOT_FOUND", "Skill not found")

func ErrValidation(fields ...string) error {
	return apperror.Validation("SKILL_VALIDATION", "Invalid skill fields", fields...)
}
