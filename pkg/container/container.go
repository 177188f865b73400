// Package container builds and owns the application dependency graph.
// Initialization order matters: config, infrastructure, repositories,
// services, handlers.
package container

import (
	"context"
	"fmt"

	"library-api/internal/config"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
	commentHandler "library-api/internal/domains/comment/handler"
	commentRepo "library-api/internal/domains/comment/repository"
	commentService "library-api/internal/domains/comment/service"
	"library-api/internal/domains/errorlog"
	errorlogRepo "library-api/internal/domains/errorlog/repository"
	userHandler "library-api/internal/domains/user/handler"
	userRepo "library-api/internal/domains/user/repository"
	userService "library-api/internal/domains/user/service"
	infraCache "library-api/internal/infrastructure/cache"
	"library-api/internal/infrastructure/database"
	"library-api/internal/infrastructure/storage"
	"library-api/pkg/cache"
	"library-api/pkg/jwt"
	"library-api/pkg/logger"
)

// Container holds every long-lived component of the application.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Archive    storage.Archive
	ErrorLog   errorlog.Recorder

	AuthorRepo  authorRepo.Repository
	BookRepo    bookRepo.Repository
	CommentRepo commentRepo.Repository
	UserRepo    userRepo.Repository

	AuthorService           authorService.Service
	AuthorCollectionService authorService.CollectionService
	BookService             bookService.Service
	CommentService          commentService.Service
	UserService             userService.Service

	AuthorHandler           *authorHandler.Handler
	AuthorCollectionHandler *authorHandler.CollectionHandler
	BookHandler             *bookHandler.Handler
	CommentHandler          *commentHandler.Handler
	UserHandler             *userHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisCache

	archive, err := storage.NewMinIOArchive(cfg.MinIO)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect minio: %w", err)
	}
	c.Archive = archive

	c.JWTManager = jwt.NewManager(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiry())
	c.ErrorLog = errorlogRepo.NewPostgresRecorder(db.Pool)

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)

	photos := storage.NewPhotoProcessor()
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Archive, photos)
	c.AuthorCollectionService = authorService.NewCollectionService(c.AuthorRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	commentSource := commentService.NewBookCommentSource(c.CommentRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, commentSource, c.Cache)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.BookRepo, c.UserService, c.Cache)

	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.AuthorCollectionHandler = authorHandler.NewCollectionHandler(c.AuthorCollectionService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.CommentHandler = commentHandler.NewHandler(c.CommentService)
	c.UserHandler = userHandler.NewHandler(c.UserService)

	return c, nil
}

// HealthCheck pings the backing stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if err := c.Cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Cleanup releases connections. Safe to call once on shutdown.
func (c *Container) Cleanup() {
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close redis", map[string]interface{}{"error": err.Error()})
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
