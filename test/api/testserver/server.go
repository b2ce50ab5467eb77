//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"io"
	"time"

	"clubhub/internal/cache"
	"clubhub/internal/handler"
	"clubhub/internal/notification"
	"clubhub/internal/observability"
	"clubhub/internal/queue"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
	"clubhub/internal/storage"
	"clubhub/pkg/auth"
	"clubhub/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestRoleCacheTTL keeps cached role resolutions short so tests that
	// change roles mid-flow observe the change quickly.
	TestRoleCacheTTL = 100 * time.Millisecond
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo       repository.UserRepository
	OrgRepo        repository.OrganizationRepository
	MembershipRepo repository.MembershipRepository
	InvitationRepo repository.InvitationRepository
	ContentRepo    repository.ContentRepository
	ClassRepo      repository.ClassRepository

	// Services (for direct service access in tests)
	AuthService       service.AuthServicer
	UserService       service.UserServicer
	OrgService        service.OrganizationServicer
	MembershipService service.MembershipServicer
	InvitationService service.InvitationServicer
	ContentService    service.ContentServicer
	ClassService      service.ClassServicer

	// Auth and authorization
	JWTManager    *auth.JWTManager
	Resolver      *rbac.Resolver
	ClassResolver *rbac.ClassResolver

	// Notification pipeline
	NotificationQueue     *queue.MemoryQueue
	NotificationProcessor *queue.Processor
	Mailer                *notification.MockMailer

	logger  *logrus.Logger
	metrics *observability.Metrics
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	metrics := observability.NewMetrics()

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (uses real Redis)
	redisCache := cache.NewRedisFromClient(redisContainer.Client, logger)

	// Storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
		logger,
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	orgRepo := repository.NewOrganizationRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	invitationRepo := repository.NewInvitationRepository(mongoDB.Database)
	contentRepo := repository.NewContentRepository(mongoDB.Database)
	classRepo := repository.NewClassRepository(mongoDB.Database)

	// Role resolution
	directory := repository.NewDirectory(membershipRepo, orgRepo)
	resolver := rbac.NewResolver(directory, logger, metrics, 256, TestRoleCacheTTL)
	classDirectory := repository.NewClassDirectory(classRepo)
	classResolver := rbac.NewClassResolver(classDirectory, logger, metrics)

	// Notification pipeline; instant delivery keeps tests fast
	notificationQueue := queue.NewMemoryQueue(100)
	mailer := notification.NewMockMailer()
	mailer.SimulatedDelay = 0
	notificationProcessor := queue.NewProcessor(notificationQueue, mailer, logger, metrics, 2)

	// Refresh token store
	tokenStore := cache.NewRefreshTokenStore(redisCache)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:        userRepo,
		TokenStore:      tokenStore,
		JWTManager:      jwtManager,
		TokenGenerator:  auth.NewRefreshTokenGenerator(),
		AccessTokenTTL:  TestAccessTokenExpiry,
		RefreshTokenTTL: TestRefreshTokenExpiry,
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

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		OrgRepo:               orgRepo,
		MembershipRepo:        membershipRepo,
		InvitationRepo:        invitationRepo,
		ContentRepo:           contentRepo,
		ClassRepo:             classRepo,
		AuthService:           authService,
		UserService:           userService,
		OrgService:            orgService,
		MembershipService:     membershipService,
		InvitationService:     invitationService,
		ContentService:        contentService,
		ClassService:          classService,
		JWTManager:            jwtManager,
		Resolver:              resolver,
		ClassResolver:         classResolver,
		NotificationQueue:     notificationQueue,
		NotificationProcessor: notificationProcessor,
		Mailer:                mailer,
		logger:                logger,
		metrics:               metrics,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartNotificationProcessor starts the notification workers.
func (ts *TestServer) StartNotificationProcessor(ctx context.Context) {
	ts.NotificationProcessor.Start(ctx)
}

// StopNotificationProcessor stops the workers and resets the queue so
// subsequent tests start from an empty pipeline.
func (ts *TestServer) StopNotificationProcessor() {
	ts.NotificationProcessor.Stop()
	ts.NotificationQueue.Reset()
	ts.NotificationProcessor = queue.NewProcessor(ts.NotificationQueue, ts.Mailer, ts.logger, ts.metrics, 2)
}
