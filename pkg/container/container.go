package container

import (
	"context"
	"fmt"
	"log"

	"gogarvis-backend/internal/config"
	infraCache "gogarvis-backend/internal/infrastructure/cache"
	"gogarvis-backend/internal/infrastructure/database"
	"gogarvis-backend/internal/infrastructure/identity"
	"gogarvis-backend/internal/infrastructure/llm"
	"gogarvis-backend/internal/infrastructure/queue"
	"gogarvis-backend/internal/infrastructure/storage"
	"gogarvis-backend/internal/shared/authority"
	"gogarvis-backend/pkg/cache"
	"gogarvis-backend/pkg/logger"

	"gogarvis-backend/internal/domains/audit"
	auditHandler "gogarvis-backend/internal/domains/audit/handler"
	auditRepo "gogarvis-backend/internal/domains/audit/repository"
	"gogarvis-backend/internal/domains/chat"
	chatHandler "gogarvis-backend/internal/domains/chat/handler"
	chatRepo "gogarvis-backend/internal/domains/chat/repository"
	chatService "gogarvis-backend/internal/domains/chat/service"
	"gogarvis-backend/internal/domains/content"
	contentHandler "gogarvis-backend/internal/domains/content/handler"
	contentRepo "gogarvis-backend/internal/domains/content/repository"
	contentService "gogarvis-backend/internal/domains/content/service"
	"gogarvis-backend/internal/domains/user"
	userHandler "gogarvis-backend/internal/domains/user/handler"
	userRepo "gogarvis-backend/internal/domains/user/repository"
	userService "gogarvis-backend/internal/domains/user/service"
	"gogarvis-backend/internal/domains/version"
	versionHandler "gogarvis-backend/internal/domains/version/handler"
	versionRepo "gogarvis-backend/internal/domains/version/repository"
)

// ========================================
// CONTAINER
// ========================================

// Container là root của dependency graph. Mọi component là singleton,
// build một lần lúc startup theo thứ tự: config -> infrastructure ->
// repositories -> services -> handlers.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Storage  storage.ObjectStorage
	Tasks    *queue.Client
	Identity identity.Provider
	LLM      llm.Client

	// Repositories
	UserRepo     user.Repository
	Sessions     user.SessionStore
	AuditRepo    audit.Repository
	VersionRepo  version.Repository
	ContentStore content.Store
	ChatHistory  chat.HistoryRepository
	ChatFiles    chat.FileRepository
	ChatContexts chat.ContextStore

	// Domain policy
	Authority authority.Checker
	Guard     *content.Guard

	// Services
	UserService    user.Service
	ContentService content.Service
	ChatService    chat.Service

	// Handlers
	UserHandler    *userHandler.Handler
	ContentHandler *contentHandler.Handler
	VersionHandler *versionHandler.Handler
	AuditHandler   *auditHandler.Handler
	ChatHandler    *chatHandler.Handler
}

// NewContainer build toàn bộ graph. Fail-fast: thiếu DB hay Redis là
// app không lên.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")
	c := &Container{}

	// ========================================
	// STEP 1: CONFIG + LOGGER
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	c.DB = db
	log.Println("✅ PostgreSQL connected")

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	log.Println("✅ Redis connected")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO ready")

	c.Tasks = queue.NewClient(cfg.Redis)
	c.Identity = identity.NewHTTPProvider(cfg.Auth.ProviderURL)
	c.LLM = llm.NewClient(cfg.LLM)

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.Sessions = userRepo.NewRedisSessionStore(c.Cache, cfg.Auth.SessionTTL)
	c.AuditRepo = auditRepo.NewPostgresRepository(db.Pool)
	c.VersionRepo = versionRepo.NewPostgresRepository(db.Pool)
	c.ContentStore = contentRepo.NewPostgresStore(db.Pool)
	c.ChatHistory = chatRepo.NewPostgresHistory(db.Pool)
	c.ChatFiles = chatRepo.NewPostgresFiles(db.Pool)
	c.ChatContexts = chatRepo.NewRedisContextStore(c.Cache, cfg.LLM.SessionTTL)

	// ========================================
	// STEP 4: DOMAIN POLICY + SERVICES
	// ========================================
	c.Authority = authority.NewChecker(cfg.Auth.SovereignEmail)
	c.Guard = content.NewGuard(c.Authority)

	c.UserService = userService.NewUserService(c.Identity, c.UserRepo, c.Sessions, c.AuditRepo, cfg.Auth.SessionTTL)
	c.ContentService = contentService.NewContentService(c.ContentStore, c.VersionRepo, c.AuditRepo, c.Guard, c.UserRepo)
	c.ChatService = chatService.NewChatService(c.ChatHistory, c.ChatFiles, c.ChatContexts, c.LLM, c.Storage, c.Tasks, cfg.Upload)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	cookieMaxAge := int(cfg.Auth.SessionTTL.Seconds())
	secureCookies := cfg.App.Environment == "production"

	c.UserHandler = userHandler.NewHandler(c.UserService, cookieMaxAge, secureCookies)
	c.ContentHandler = contentHandler.NewHandler(c.ContentService)
	c.VersionHandler = versionHandler.NewHandler(c.VersionRepo, c.ContentService)
	c.AuditHandler = auditHandler.NewHandler(c.AuditRepo)
	c.ChatHandler = chatHandler.NewHandler(c.ChatService)

	log.Println("🎉 DI Container ready")
	return c, nil
}

// Cleanup đóng mọi external connections. Gọi lúc shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if c.Tasks != nil {
		if err := c.Tasks.Close(); err != nil {
			log.Printf("⚠️  Failed to close task client: %v", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Cleanup complete")
}
