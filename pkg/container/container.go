package container

import (
	"context"
	"fmt"
	"log"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"library-backend/internal/config"
	"library-backend/internal/graph"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/jwt"

	"library-backend/internal/domains/author"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/user"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container holds all application dependencies.
// It is the root of the dependency graph; everything below is a
// singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.MongoDB
	JWTManager *jwt.Manager

	// Repositories (data access)
	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	// Services (business logic)
	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	// GraphQL (API surface)
	Resolver *graph.Resolver
	Schema   *graphql.Schema
}

// NewContainer builds the whole dependency graph in order:
// config → store → repositories → services → resolver/schema.
// A failure at any step aborts startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// 2. Entity store
	log.Println("🗄️  Connecting to MongoDB...")
	db := database.NewMongoDB(&database.DBConfig{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: uint64(cfg.Mongo.MaxPoolSize),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	c.DB = db
	log.Println("✅ MongoDB connected, indexes ensured")

	// 3. Token service
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// 4. Repositories
	c.AuthorRepo = authorRepo.NewMongoRepository(db.Database)
	c.BookRepo = bookRepo.NewMongoRepository(db.Database)
	c.UserRepo = userRepo.NewMongoRepository(db.Database)

	// 5. Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, cfg.Auth.SharedPassword)

	// 6. GraphQL schema
	c.Resolver = graph.NewResolver(c.BookService, c.AuthorService, c.UserService)
	c.Schema = graph.NewSchema(c.Resolver)
	log.Println("✅ GraphQL schema parsed")

	return c, nil
}

// Cleanup releases held resources; called on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.DB.Close(ctx); err != nil {
			log.Printf("⚠️  MongoDB disconnect failed: %v", err)
		}
	}
}
