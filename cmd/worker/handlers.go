package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

type handlers struct {
	messages contact.Repository
	mailer   email.Service
}

func newHandlers(messages contact.Repository, mailer email.Service) *handlers {
	return &handlers{messages: messages, mailer: mailer}
}

// HandleContactNotify emails the portfolio owner about a newly stored
// contact message. Asynq retries on error.
func (h *handlers) HandleContactNotify(ctx context.Context, t *asynq.Task) error {
	var payload shared.ContactNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal contact notify payload: %w", asynq.SkipRetry)
	}

	err := h.mailer.SendContactNotification(ctx, email.ContactNotificationData{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	logger.Info("contact notification sent", map[string]interface{}{
		"message_id": payload.MessageID,
	})
	return nil
}

// HandleUnreadDigest sends the daily summary of unread messages.
// Nothing unread means nothing sent.
func (h *handlers) HandleUnreadDigest(ctx context.Context, t *asynq.Task) error {
	count, err := h.messages.CountUnread(ctx)
	if err != nil {
		return fmt.Errorf("count unread messages: %w", err)
	}
	if count == 0 {
		return nil
	}

	err = h.mailer.SendUnreadDigest(ctx, email.UnreadDigestData{UnreadCount: count})
	if err != nil {
		return fmt.Errorf("send unread digest: %w", err)
	}

	logger.Info("unread digest sent", map[string]interface{}{"unread": count})
	return nil
}
