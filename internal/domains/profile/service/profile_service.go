package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const cacheKey = "portfolio:profile"

type profileService struct {
	repo     profile.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	media    storage.MediaResolver
}

func NewProfileService(repo profile.Repository, c cache.Cache, ttl time.Duration, media storage.MediaResolver) profile.Service {
	return &profileService{
		repo:     repo,
		cache:    c,
		cacheTTL: ttl,
		media:    media,
	}
}

// GetProfile returns the active profile, read-through cached. A stale
// entry after an admin edit is acceptable until the window expires.
func (s *profileService) GetProfile(ctx context.Context) (*profile.Response, error) {
	if s.cache != nil {
		var cached profile.Response
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		} else if err != nil {
			logger.Warn("profile cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	p, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, profile.ErrNotFound
	}

	resp := profile.ToResponse(p, s.media)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			logger.Warn("profile cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, nil
}

func (s *profileService) CreateProfile(ctx context.Context, req *profile.UpsertRequest) (*profile.Response, error) {
	p, err := validated(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return profile.ToResponse(created, s.media), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *profile.UpsertRequest) (*profile.Response, error) {
	p, err := validated(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	return profile.ToResponse(updated, s.media), nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validated(req *profile.UpsertRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, profile.ErrValidation(apperror.FieldsOf(err)...)
	}
	return req.ToModel(), nil
}
