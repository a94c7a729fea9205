package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/shared"
)

// Notifier is what the contact intake workflow sees: a best-effort,
// bounded-time way to announce a new message. Failures are the caller's
// business to swallow.
type Notifier interface {
	NotifyContactMessage(ctx context.Context, payload shared.ContactNotifyPayload) error
}

// Client enqueues notification tasks onto Redis for the worker process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

var _ Notifier = (*Client)(nil)

// NotifyContactMessage enqueues a contact:notify task. The enqueue itself
// is bounded so a slow Redis cannot stall the request path.
func (c *Client) NotifyContactMessage(ctx context.Context, payload shared.ContactNotifyPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact notify payload: %w", err)
	}

	enqueueCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	task := asynq.NewTask(shared.TypeContactNotify, data)
	_, err = c.client.EnqueueContext(enqueueCtx, task,
		asynq.Queue(shared.QueueNotifications),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue contact notify: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
