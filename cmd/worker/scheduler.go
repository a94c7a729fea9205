package main

import (
	"github.com/hibiken/asynq"

	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

// newScheduler registers the periodic tasks. Currently a single daily
// unread-messages digest at 08:00 UTC.
func newScheduler(redisOpt asynq.RedisClientOpt) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(redisOpt, nil)

	_, err := scheduler.Register(
		"0 8 * * *",
		asynq.NewTask(shared.TypeUnreadDigest, nil),
		asynq.Queue(shared.QueueNotifications),
	)
	if err != nil {
		logger.Error("failed to register unread digest schedule", err)
	}

	return scheduler
}
