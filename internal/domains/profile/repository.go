package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the profile store contract.
type Repository interface {
	// GetActive returns the first profile by creation order, or nil when
	// none exists.
	GetActive(ctx context.Context) (*Profile, error)
	// Create inserts the profile. Fails with ErrAlreadyExists when a row
	// is already present; the check-and-insert is atomic.
	Create(ctx context.Context, p *Profile) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, p *Profile) (*Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
