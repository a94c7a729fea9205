package skill

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// ListSkills returns the filtered flat list, cache-backed.
	ListSkills(ctx context.Context, f Filter) ([]*Response, error)
	CreateSkill(ctx context.Context, req *UpsertRequest) (*Response, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, req *UpsertRequest) (*Response, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}
