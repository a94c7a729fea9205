package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/education"
	"portfolio-backend/internal/shared/apperror"
)

type educationService struct {
	repo education.Repository
}

func NewEducationService(repo education.Repository) education.Service {
	return &educationService{repo: repo}
}

func (s *educationService) ListEducation(ctx context.Context) ([]*education.Response, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*education.Response, len(entries))
	for i, e := range entries {
		responses[i] = education.ToResponse(e)
	}
	return responses, nil
}

func (s *educationService) CreateEducation(ctx context.Context, req *education.UpsertRequest) (*education.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, education.ErrValidation(apperror.FieldsOf(err)...)
	}

	created, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}
	return education.ToResponse(created), nil
}

func (s *educationService) UpdateEducation(ctx context.Context, id uuid.UUID, req *education.UpsertRequest) (*education.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, education.ErrValidation(apperror.FieldsOf(err)...)
	}

	updated, err := s.repo.Update(ctx, id, req.ToModel())
	if err != nil {
		return nil, err
	}
	return education.ToResponse(updated), nil
}

func (s *educationService) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
