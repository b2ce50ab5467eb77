package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubhub/internal/cache"
	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/handler"
	"clubhub/internal/jobs"
	"clubhub/internal/notification"
	"clubhub/internal/observability"
	"clubhub/internal/queue"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
	"clubhub/internal/storage"
	"clubhub/internal/validator"
	"clubhub/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           ClubHub API
// @version         1.0
// @description     A multi-tenant club and school management REST API built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@clubhub.example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	logger.Info("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Metrics
	metrics := observability.NewMetrics()

	// Tracing (no-op unless OTEL_ENABLED)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracerProvider, err := observability.InitTracing(ctx, observability.OTelConfig{
		Enabled:        cfg.OTelEnabled,
		Endpoint:       cfg.OTelEndpoint,
		ServiceName:    "clubhub",
		ServiceVersion: "1.0",
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize tracing")
	}

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logger)
	defer mongoDB.Close()

	// Redis cache
	redisCache := cache.NewRedis(cfg.RedisURI, logger)
	defer redisCache.Close()

	// S3 storage for content attachments
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, logger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	orgRepo := repository.NewOrganizationRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	invitationRepo := repository.NewInvitationRepository(mongoDB.Database)
	contentRepo := repository.NewContentRepository(mongoDB.Database)
	classRepo := repository.NewClassRepository(mongoDB.Database)

	// Role resolution
	directory := repository.NewDirectory(membershipRepo, orgRepo)
	resolver := rbac.NewResolver(directory, logger, metrics, cfg.RoleCacheSize, cfg.RoleCacheTTL)
	classDirectory := repository.NewClassDirectory(classRepo)
	classResolver := rbac.NewClassResolver(classDirectory, logger, metrics)

	// Notification queue and processor
	notificationQueue := queue.NewMemoryQueue(100)
	mailer := notification.NewMockMailer()
	notificationProcessor := queue.NewProcessor(notificationQueue, mailer, logger, metrics, 2)

	// Refresh token store
	tokenStore := cache.NewRefreshTokenStore(redisCache)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  auth.NewRefreshTokenGenerator(),
		AccessTokenTTL:  cfg.AccessTokenExpiry,
		RefreshTokenTTL: cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	orgService := service.NewOrganizationService(orgRepo, membershipRepo, invitationRepo, contentRepo, classRepo, redisCache, resolver)
	membershipService := service.NewMembershipService(membershipRepo, resolver)
	invitationService := service.NewInvitationService(invitationRepo, membershipRepo, orgRepo, userRepo, notificationQueue, logger)
	contentService := service.NewContentService(contentRepo, s3Client)
	classService := service.NewClassService(classRepo, membershipRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	invitationHandler := handler.NewInvitationHandler(invitationService, userService)
	contentHandler := handler.NewContentHandler(contentService)
	classHandler := handler.NewClassHandler(classService)
	permissionsHandler := handler.NewPermissionsHandler(resolver)

	// Expired invitation sweeper
	sweeper := jobs.NewInvitationSweeper(invitationRepo, logger, "0 3 * * *")
	if err := sweeper.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start invitation sweeper")
	}

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		OrgHandler:         orgHandler,
		MembershipHandler:  membershipHandler,
		InvitationHandler:  invitationHandler,
		ContentHandler:     contentHandler,
		ClassHandler:       classHandler,
		PermissionsHandler: permissionsHandler,
		JWTManager:         jwtManager,
		Resolver:           resolver,
		ClassResolver:      classResolver,
		Metrics:            metrics,
	})

	// Start notification processor
	notificationProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP server shutdown error")
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop background workers (waits for in-flight jobs)
	logger.Info("Stopping notification processor...")
	notificationProcessor.Stop()
	sweeper.Stop()

	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Tracer provider shutdown error")
		}
	}

	logger.Info("Server shutdown complete")
}
