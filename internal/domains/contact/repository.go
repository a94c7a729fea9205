package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists contact messages. Stored messages are immutable
// apart from their read and replied flags.
type Repository interface {
	Create(ctx context.Context, m *Message) (*Message, error)
	List(ctx context.Context) ([]*Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Message, error)
	MarkReplied(ctx context.Context, id uuid.UUID) (*Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}
