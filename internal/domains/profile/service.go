package profile

import (
	"context"

	"github.com/google/uuid"
)

// Service is the profile business logic contract.
type Service interface {
	// GetProfile returns the active profile, cache-backed.
	GetProfile(ctx context.Context) (*Response, error)
	CreateProfile(ctx context.Context, req *UpsertRequest) (*Response, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpsertRequest) (*Response, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}
