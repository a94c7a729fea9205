package education

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns all entries ordered by sort_order ASC then end_date
	// DESC, ongoing entries first among equal sort orders.
	List(ctx context.Context) ([]*Education, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Education, error)
	Create(ctx context.Context, e *Education) (*Education, error)
	Update(ctx context.Context, id uuid.UUID, e *Education) (*Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
