package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"tastehub-backend/internal/config"
	infraCache "tastehub-backend/internal/infrastructure/cache"
	"tastehub-backend/internal/infrastructure/database"
	"tastehub-backend/pkg/cache"
	"tastehub-backend/pkg/jwt"

	commentHandler "tastehub-backend/internal/domains/comment/handler"
	commentRepo "tastehub-backend/internal/domains/comment/repository"
	commentService "tastehub-backend/internal/domains/comment/service"
	moderationHandler "tastehub-backend/internal/domains/moderation/handler"
	moderationService "tastehub-backend/internal/domains/moderation/service"
	restaurantHandler "tastehub-backend/internal/domains/restaurant/handler"
	restaurantRepo "tastehub-backend/internal/domains/restaurant/repository"
	restaurantService "tastehub-backend/internal/domains/restaurant/service"
	reviewHandler "tastehub-backend/internal/domains/review/handler"
	reviewRepo "tastehub-backend/internal/domains/review/repository"
	reviewService "tastehub-backend/internal/domains/review/service"
	voteHandler "tastehub-backend/internal/domains/vote/handler"
	voteRepo "tastehub-backend/internal/domains/vote/repository"
	voteService "tastehub-backend/internal/domains/vote/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every application dependency. It is the root of
// the dependency graph; all fields are singletons.
type Container struct {
	// Infrastructure, shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	ReviewRepo     reviewRepo.ReviewRepository
	CommentRepo    commentRepo.CommentRepository
	VoteRepo       voteRepo.VoteRepository
	RestaurantRepo restaurantRepo.RestaurantRepository

	// Services
	ReviewService     reviewService.ServiceInterface
	CommentService    commentService.ServiceInterface
	VoteService       voteService.ServiceInterface
	ModerationService moderationService.ServiceInterface
	RestaurantService restaurantService.ServiceInterface

	// Handlers
	ReviewHandler     *reviewHandler.ReviewHandler
	CommentHandler    *commentHandler.CommentHandler
	VoteHandler       *voteHandler.VoteHandler
	ModerationHandler *moderationHandler.ModerationHandler
	RestaurantHandler *restaurantHandler.RestaurantHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization
// order matters: config, infrastructure, repositories, services,
// handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical; reads fall through to Postgres
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.VoteRepo = voteRepo.NewPostgresVoteRepository(pool)
	c.RestaurantRepo = restaurantRepo.NewPostgresRestaurantRepository(pool)
}

func (c *Container) initServices() {
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.CommentRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ReviewRepo)
	c.VoteService = voteService.NewVoteService(c.VoteRepo, c.ReviewRepo)
	c.ModerationService = moderationService.NewModerationService(c.ReviewRepo, c.CommentRepo)
	c.RestaurantService = restaurantService.NewRestaurantService(c.RestaurantRepo, c.ReviewRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.VoteHandler = voteHandler.NewVoteHandler(c.VoteService)
	c.ModerationHandler = moderationHandler.NewModerationHandler(c.ModerationService)
	c.RestaurantHandler = restaurantHandler.NewRestaurantHandler(c.RestaurantService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources. Call it during
// graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
