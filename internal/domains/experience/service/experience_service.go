package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/shared/apperror"
)

type experienceService struct {
	repo experience.Repository
	now  func() time.Time
}

func NewExperienceService(repo experience.Repository) experience.Service {
	return &experienceService{repo: repo, now: time.Now}
}

func (s *experienceService) ListExperiences(ctx context.Context, order string) ([]*experience.Response, error) {
	experiences, err := s.repo.List(ctx, order)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]*experience.Response, len(experiences))
	for i, e := range experiences {
		responses[i] = experience.ToResponse(e, now)
	}
	return responses, nil
}

func (s *experienceService) CreateExperience(ctx context.Context, req *experience.UpsertRequest) (*experience.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, experience.ErrValidation(apperror.FieldsOf(err)...)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}
	return experience.ToResponse(created, s.now()), nil
}

func (s *experienceService) UpdateExperience(ctx context.Context, id uuid.UUID, req *experience.UpsertRequest) (*experience.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, experience.ErrValidation(apperror.FieldsOf(err)...)
	}

	updated, err := s.repo.Update(ctx, id, req.ToModel())
	if err != nil {
		return nil, err
	}
	return experience.ToResponse(updated, s.now()), nil
}

func (s *experienceService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
