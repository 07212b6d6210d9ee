package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nexcraft-service/internal/config"
	"nexcraft-service/internal/db"
	authHandler "nexcraft-service/internal/handlers/auth"
	contactHandler "nexcraft-service/internal/handlers/contact"
	contentHandler "nexcraft-service/internal/handlers/content"
	statusHandler "nexcraft-service/internal/handlers/status"
	wsHandler "nexcraft-service/internal/handlers/ws"
	"nexcraft-service/internal/middleware"
	"nexcraft-service/internal/pkg/password"
	"nexcraft-service/internal/pkg/token"
	"nexcraft-service/internal/repository/postgres"
	authService "nexcraft-service/internal/service/auth"
	contentService "nexcraft-service/internal/service/content"
	submissionService "nexcraft-service/internal/service/submission"
	"nexcraft-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	cleanup []func()
}

func NewServer() *Server {
	return &Server{cfg: config.Load(), engine: gin.New()}
}

// Start wires storage, services, handlers and routes, then serves HTTP
// until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger
	s.cleanup = append(s.cleanup, func() { _ = logger.Sync() })

	if s.cfg.SecretKey == "change-me-in-production" {
		logger.Warn("SECRET_KEY not set, using insecure default")
	}

	// ----- PostgreSQL -----
	if err := postgres.Migrate(s.cfg.MigrationsURL, s.cfg.DatabaseURL); err != nil {
		return err
	}

	pool, err := postgres.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.cleanup = append(s.cleanup, pool.Close)
	logger.Info("connected to postgres")

	// ----- Redis (optional content cache) -----
	var cache *redis.Client
	if s.cfg.RedisAddr != "" {
		cache, err = db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return err
		}
		s.cleanup = append(s.cleanup, func() { _ = cache.Close() })
		logger.Info("connected to redis")
	}

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)

	// ----- WebSocket hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	tokens := token.NewService(s.cfg.SecretKey)
	hasher := password.NewHasher(s.cfg.BcryptCost)

	authSvc := authService.NewService(adminRepo, tokens, hasher, logger)
	contentSvc := contentService.NewService(contentRepo, cache, logger)
	submissionSvc := submissionService.NewService(contactRepo, statusRepo, hub, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:    authHandler.NewAuthHandler(authSvc, logger),
		ContactHandler: contactHandler.NewContactHandler(submissionSvc, logger),
		StatusHandler:  statusHandler.NewStatusHandler(submissionSvc, logger),
		ContentHandler: contentHandler.NewContentHandler(contentSvc, logger),
		WSHandler:      wsHandler.NewWSHandler(hub, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authSvc),
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSOrigins),
	)

	SetupRouter(s.engine, handlers)

	// ----- Serve -----
	s.http = &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener and releases connections.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	return err
}
