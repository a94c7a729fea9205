package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

type projectService struct {
	repo     project.Repository
	cache    cache.Cache
	media    storage.MediaResolver
	cacheTTL time.Duration
}

func NewProjectService(repo project.Repository, c cache.Cache, media storage.MediaResolver, ttl time.Duration) project.Service {
	return &projectService{repo: repo, cache: c, media: media, cacheTTL: ttl}
}

func cacheKeyFor(f project.Filter) string {
	featured := "any"
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	return fmt.Sprintf("portfolio:projects:%s:%s:%s", f.Category, f.Status, featured)
}

func (s *projectService) ListProjects(ctx context.Context, f project.Filter) ([]*project.Response, error) {
	key := cacheKeyFor(f)

	if s.cache != nil {
		var cached []*project.Response
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		} else if err != nil {
			logger.Warn("project cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	projects, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*project.Response, len(projects))
	for i, p := range projects {
		responses[i] = project.ToResponse(p, s.media)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, responses, s.cacheTTL); err != nil {
			logger.Warn("project cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return responses, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*project.Response, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, project.ErrNotFound
	}
	return project.ToResponse(p, s.media), nil
}

func (s *projectService) GetProjectBySlug(ctx context.Context, slug string) (*project.Response, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, project.ErrNotFound
	}
	return project.ToResponse(p, s.media), nil
}

func (s *projectService) CreateProject(ctx context.Context, req *project.UpsertRequest) (*project.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, project.ErrValidation(apperror.FieldsOf(err)...)
	}

	m := req.ToModel()
	m.Slug = utils.GenerateSlug(m.Title)

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	return project.ToResponse(created, s.media), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, req *project.UpsertRequest) (*project.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, project.ErrValidation(apperror.FieldsOf(err)...)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, project.ErrNotFound
	}

	// The slug is fixed at creation; retitling must not break
	// published URLs.
	m := req.ToModel()
	m.Slug = existing.Slug

	updated, err := s.repo.Update(ctx, id, m)
	if err != nil {
		return nil, err
	}
	return project.ToResponse(updated, s.media), nil
}

func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
