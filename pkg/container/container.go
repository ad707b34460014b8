package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"yatube-backend/internal/config"
	infraCache "yatube-backend/internal/infrastructure/cache"
	"yatube-backend/internal/infrastructure/database"
	"yatube-backend/pkg/cache"
	"yatube-backend/pkg/jwt"

	followHandler "yatube-backend/internal/domains/follow/handler"
	followRepo "yatube-backend/internal/domains/follow/repository"
	followService "yatube-backend/internal/domains/follow/service"
	groupHandler "yatube-backend/internal/domains/group/handler"
	groupRepo "yatube-backend/internal/domains/group/repository"
	groupService "yatube-backend/internal/domains/group/service"
	postHandler "yatube-backend/internal/domains/post/handler"
	postRepo "yatube-backend/internal/domains/post/repository"
	postService "yatube-backend/internal/domains/post/service"
	userHandler "yatube-backend/internal/domains/user/handler"
	userRepo "yatube-backend/internal/domains/user/repository"
	userService "yatube-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is
// a singleton living for the whole process.
type Container struct {
	// Infrastructure, shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories (data access)
	UserRepo   userRepo.UserRepository
	GroupRepo  groupRepo.GroupRepository
	PostRepo   postRepo.PostRepository
	FollowRepo followRepo.FollowRepository

	// Services (business logic)
	UserService   userService.ServiceInterface
	GroupService  groupService.ServiceInterface
	PostService   postService.ServiceInterface
	FollowService followService.ServiceInterface

	// HTTP handlers
	UserHandler   *userHandler.UserHandler
	GroupHandler  *groupHandler.GroupHandler
	PostHandler   *postHandler.PostHandler
	FollowHandler *followHandler.FollowHandler
}

// NewContainer builds the whole dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
// Getting the order wrong panics on a nil dependency, so don't.
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

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is not critical, every cached path falls
			// back to the database
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.GroupRepo = groupRepo.NewPostgresGroupRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.FollowRepo = followRepo.NewPostgresFollowRepository(pool)
}

func (c *Container) initServices() {
	// Cross-domain lookups go through small resolver adapters so the
	// domains stay decoupled at the package level.
	usernames := userService.NewUsernameResolver(c.UserRepo)
	slugs := groupService.NewSlugResolver(c.GroupRepo)

	c.FollowService = followService.NewFollowService(c.FollowRepo, usernames, c.Cache)
	c.GroupService = groupService.NewGroupService(c.GroupRepo, c.Cache)
	c.PostService = postService.NewPostService(c.PostRepo, slugs, usernames, c.FollowService)

	// The user profile page aggregates follow counts and post counts
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.FollowService,
		c.PostService,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.Config.Feed.PageSize)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases infrastructure resources; called during graceful
// shutdown.
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
