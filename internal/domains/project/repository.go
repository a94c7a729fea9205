package project

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns projects matching the filter, featured first then
	// newest first.
	List(ctx context.Context, f Filter) ([]*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, p *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
