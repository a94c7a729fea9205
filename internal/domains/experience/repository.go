package experience

import (
	"context"

	"github.com/google/uuid"
)

// Order modes for listing.
const (
	OrderNewestFirst  = "newest_first"
	OrderCurrentFirst = "current_first"
)

type Repository interface {
	// List returns experiences in the requested order mode; unknown
	// modes fall back to newest first.
	List(ctx context.Context, order string) ([]*Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	Create(ctx context.Context, e *Experience) (*Experience, error)
	Update(ctx context.Context, id uuid.UUID, e *Experience) (*Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
