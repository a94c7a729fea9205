package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/logger"
)

type contactService struct {
	repo     contact.Repository
	notifier queue.Notifier
}

func NewContactService(repo contact.Repository, notifier queue.Notifier) contact.Service {
	return &contactService{repo: repo, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, req *contact.SubmitRequest) (*contact.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, contact.ErrValidation(apperror.FieldsOf(err)...)
	}

	m := req.ToModel()
	m.IPAddress = middleware.ClientIPFromContext(ctx)

	stored, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	// The message is committed; notification failure must not surface
	// to the sender.
	if s.notifier != nil {
		payload := shared.ContactNotifyPayload{
			MessageID: stored.ID.String(),
			Name:      stored.Name,
			Email:     stored.Email,
			Subject:   stored.Subject,
			Message:   stored.Message,
		}
		if err := s.notifier.NotifyContactMessage(ctx, payload); err != nil {
			logger.Error("failed to enqueue contact notification", err)
		}
	}

	return &contact.SubmitResponse{ID: stored.ID, CreatedAt: stored.CreatedAt}, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]*contact.Response, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*contact.Response, len(messages))
	for i, m := range messages {
		responses[i] = contact.ToResponse(m)
	}
	return responses, nil
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Response, error) {
	m, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	return contact.ToResponse(m), nil
}

func (s *contactService) MarkReplied(ctx context.Context, id uuid.UUID) (*contact.Response, error) {
	m, err := s.repo.MarkReplied(ctx, id)
	if err != nil {
		return nil, err
	}
	return contact.ToResponse(m), nil
}

func (s *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
