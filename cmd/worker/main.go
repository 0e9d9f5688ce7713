package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/slklaos/backoffice/internal/queue/tasks"
	"github.com/slklaos/backoffice/internal/repository"
	"github.com/slklaos/backoffice/pkg/config"
	"github.com/slklaos/backoffice/pkg/database"
	"github.com/slklaos/backoffice/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	quoteRepo := repository.NewQuoteRepository(db)
	contactRepo := repository.NewContactRepository(db)
	sender := tasks.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom)
	handler := tasks.NewEmailTaskHandler(sender, quoteRepo, contactRepo)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		},
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQuoteEmail, handler.HandleQuoteEmail)
	mux.HandleFunc(tasks.TypeContactEmail, handler.HandleContactEmail)

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.L().Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.L().Error("worker stopped with error", zap.Error(err))
	}

	// Let in-flight deliveries finish.
	srv.Shutdown()
}
