package education

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListEducation(ctx context.Context) ([]*Response, error)
	CreateEducation(ctx context.Context, req *UpsertRequest) (*Response, error)
	UpdateEducation(ctx context.Context, id uuid.UUID, req *UpsertRequest) (*Response, error)
	DeleteEducation(ctx context.Context, id uuid.UUID) error
}
