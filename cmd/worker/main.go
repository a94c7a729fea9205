package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"portfolio-backend/internal/config"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Connect(ctx); err != nil {
		cancel()
		logger.Error("failed to connect to database", err)
		os.Exit(1)
	}
	cancel()
	defer db.Close()

	messages := contactRepo.NewPostgresRepository(db.Pool)
	mailer := email.NewSMTPService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From, cfg.Email.To)
	handlers := newHandlers(messages, mailer)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			shared.QueueNotifications: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeContactNotify, handlers.HandleContactNotify)
	mux.HandleFunc(shared.TypeUnreadDigest, handlers.HandleUnreadDigest)

	scheduler := newScheduler(redisOpt)

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", err)
		}
	}()

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("worker server failed", err)
			os.Exit(1)
		}
	}()

	logger.Info("worker started", map[string]interface{}{
		"queue": shared.QueueNotifications,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker", nil)
	scheduler.Shutdown()
	srv.Shutdown()
}
