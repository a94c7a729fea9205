package skill

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns skills matching the filter, ordered category ASC then
	// proficiency DESC.
	List(ctx context.Context, f Filter) ([]*Skill, error)
	// GetByID returns ErrNotFound on a miss.
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Create(ctx context.Context, s *Skill) (*Skill, error)
	Update(ctx context.Context, id uuid.UUID, s *Skill) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
