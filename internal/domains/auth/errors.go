package auth

import "portfolio-backend/internal/shared/apperror"

var ErrInvalidCredentials = apperror.Unauthorized("INVALID_CREDENTIALS", "Invalid email or password")
