package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minisocial/internal/config"
	"minisocial/internal/database"
	"minisocial/internal/docstore"
	"minisocial/internal/handler"
	"minisocial/internal/middleware"
	"minisocial/internal/objstore"
	"minisocial/internal/repository"
	"minisocial/internal/router"
	"minisocial/internal/security"
	"minisocial/internal/service"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	slog.Info("connecting to MongoDB")
	docs, err := docstore.New(context.Background(), cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	objs, err := objstore.New(context.Background(), cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		db.Close()
		_ = docs.Close(context.Background())
		return nil, fmt.Errorf("failed to configure object store: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	postRepo := repository.NewPostRepository(docs.Collection("posts"))
	commentRepo := repository.NewCommentRepository(docs.Collection("comments"))

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens, err := security.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTExpiry)
	if err != nil {
		db.Close()
		_ = docs.Close(context.Background())
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	authService, err := service.NewAuthService(userRepo, hasher, tokens)
	if err != nil {
		db.Close()
		_ = docs.Close(context.Background())
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	postService := service.NewPostService(postRepo, commentRepo)
	mediaService := service.NewMediaService(objs.PresignClient(), cfg.S3Bucket)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Post:   handler.NewPostHandler(postService),
		Media:  handler.NewMediaHandler(mediaService),
		Health: handler.NewHealthHandler(db, docs, objs),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			func() { db.Close() },
			func() { _ = docs.Close(context.Background()) },
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
