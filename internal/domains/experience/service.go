package experience

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListExperiences(ctx context.Context, order string) ([]*Response, error)
	CreateExperience(ctx context.Context, req *UpsertRequest) (*Response, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, req *UpsertRequest) (*Response, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}
