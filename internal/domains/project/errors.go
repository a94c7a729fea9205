package project

import "portfolio-backend/internal/shared/apperror"

var (
	ErrNotFound  = apperror.NotFound("PROJECT_NOT_FOUND", "Project not found")
	ErrSlugTaken = apperror.Conflict("PROJECT_SLUG_TAKEN", "A project with this title already exists")
)

func ErrValidation(fields ...string) error {
	return apperror.Validation("PROJECT_VALIDATION", "Invalid project fields", fields...)
}
