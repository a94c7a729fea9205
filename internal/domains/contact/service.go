package contact

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Submit validates and stores an incoming message. Notification
	// delivery is best effort and never fails the submission.
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error)
	ListMessages(ctx context.Context) ([]*Response, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Response, error)
	MarkReplied(ctx context.Context, id uuid.UUID) (*Response, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
