package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/slklaos/backoffice/internal/api"
	"github.com/slklaos/backoffice/internal/api/handlers"
	"github.com/slklaos/backoffice/internal/repository"
	"github.com/slklaos/backoffice/internal/services"
	"github.com/slklaos/backoffice/internal/storage"
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

	log.Info("starting back-office API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("database connected")

	store, err := storage.New(cfg.StorageDir, cfg.StorageBaseURL)
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer asynqClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	jobRepo := repository.NewJobRepository(db)
	contactRepo := repository.NewContactRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Services
	jwtSecret := []byte(cfg.JWTSecret)
	authSvc := services.NewAuthService(userRepo, jwtSecret)
	projectSvc := services.NewProjectService(projectRepo, store)
	quoteSvc := services.NewQuoteService(quoteRepo, asynqClient, cfg.SalesEmail)
	jobSvc := services.NewJobService(jobRepo)
	userSvc := services.NewUserService(userRepo)
	contactSvc := services.NewContactService(contactRepo, asynqClient, cfg.SalesEmail)
	postSvc := services.NewPostService(postRepo)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:      jwtSecret,
		StorageDir:      cfg.StorageDir,
		AuthHandler:     handlers.NewAuthHandler(authSvc),
		ContentHandler:  handlers.NewContentHandler(projectSvc, jobSvc, postSvc, cfg.ProjectsPageSize, cfg.SiteURL),
		ProjectsHandler: handlers.NewProjectsHandler(projectSvc, cfg.ProjectsPageSize),
		QuotesHandler:   handlers.NewQuotesHandler(quoteSvc, cfg.QuotesPageSize),
		JobsHandler:     handlers.NewJobsHandler(jobSvc),
		UsersHandler:    handlers.NewUsersHandler(userSvc),
		ContactsHandler: handlers.NewContactsHandler(contactSvc),
		PostsHandler:    handlers.NewPostsHandler(postSvc),
		UploadsHandler:  handlers.NewUploadsHandler(store),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
