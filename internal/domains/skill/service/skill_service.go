package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

type skillService struct {
	repo     skill.Repository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewSkillService(repo skill.Repository, c cache.Cache, ttl time.Duration) skill.Service {
	return &skillService{repo: repo, cache: c, cacheTTL: ttl}
}

// cacheKeyFor builds a key from the request identity so each filter
// combination caches independently.
func cacheKeyFor(f skill.Filter) string {
	featured := "any"
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	return fmt.Sprintf("portfolio:skills:%s:%s", f.Category, featured)
}

func (s *skillService) ListSkills(ctx context.Context, f skill.Filter) ([]*skill.Response, error) {
	key := cacheKeyFor(f)

	if s.cache != nil {
		var cached []*skill.Response
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		} else if err != nil {
			logger.Warn("skill cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	skills, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*skill.Response, len(skills))
	for i, sk := range skills {
		responses[i] = skill.ToResponse(sk)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, responses, s.cacheTTL); err != nil {
			logger.Warn("skill cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return responses, nil
}

func (s *skillService) CreateSkill(ctx context.Context, req *skill.UpsertRequest) (*skill.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, skill.ErrValidation(apperror.FieldsOf(err)...)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}
	return skill.ToResponse(created), nil
}

func (s *skillService) UpdateSkill(ctx context.Context, id uuid.UUID, req *skill.UpsertRequest) (*skill.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, skill.ErrValidation(apperror.FieldsOf(err)...)
	}

	updated, err := s.repo.Update(ctx, id, req.ToModel())
	if err != nil {
		return nil, err
	}
	return skill.ToResponse(updated), nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
