package project

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListProjects(ctx context.Context, f Filter) ([]*Response, error)
	GetProject(ctx context.Context, id uuid.UUID) (*Response, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Response, error)
	CreateProject(ctx context.Context, req *UpsertRequest) (*Response, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *UpsertRequest) (*Response, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
