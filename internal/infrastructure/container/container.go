package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/config"
	"github.com/gdugdh24/matchmaker-backend/internal/delivery/http"
	"github.com/gdugdh24/matchmaker-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matchmaker-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/matchmaker-backend/internal/infrastructure/database"
	"github.com/gdugdh24/matchmaker-backend/internal/infrastructure/ratelimit"
	"github.com/gdugdh24/matchmaker-backend/internal/infrastructure/server"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/gdugdh24/matchmaker-backend/internal/repository/memory"
	"github.com/gdugdh24/matchmaker-backend/internal/repository/mongodb"
	"github.com/gdugdh24/matchmaker-backend/internal/repository/postgres"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/auth"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/feed"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/match"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/message"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/profile"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sqlx.DB
	Mongo  *mongo.Client
	Redis  *redis.Client
	Server *server.Server
}

type stores struct {
	users    repository.UserRepository
	messages repository.MessageRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Log:    log,
	}

	// Initialize store
	st, err := c.openStore()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	// Initialize Redis
	var loginLimiter middleware.Limiter
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		loginLimiter = ratelimit.NewRedisLimiter(
			redisClient,
			"ratelimit:auth:",
			cfg.RateLimit.LoginLimit,
			cfg.RateLimit.LoginWindow,
		)
	} else {
		log.Info("redis not configured, auth rate limiting disabled")
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		st.users,
		cfg.JWT.Secret,
		cfg.JWT.TokenTTL(),
		cfg.Auth.BcryptCost,
	)
	profileUseCase := profile.NewProfileUseCase(st.users)
	feedUseCase := feed.NewFeedUseCase(st.users)
	matchUseCase := match.NewMatchUseCase(st.users)
	messageUseCase := message.NewMessageUseCase(st.messages)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, log)
	userHandler := handler.NewUserHandler(profileUseCase, feedUseCase, log)
	matchHandler := handler.NewMatchHandler(matchUseCase, log)
	messageHandler := handler.NewMessageHandler(messageUseCase, log)
	healthHandler := handler.NewHealthHandler(st.users, cfg.Store.Driver, log)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		matchHandler,
		messageHandler,
		healthHandler,
		loginLimiter,
		cfg.Store.Timeout,
		log,
	)

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, &cfg.CORS, router.Setup(), log)

	return c, nil
}

// openStore connects the configured backend and prepares its schema
func (c *Container) openStore() (*stores, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch c.Config.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(&c.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return &stores{
			users:    postgres.NewUserRepository(db),
			messages: postgres.NewMessageRepository(db),
		}, nil

	case config.StoreDriverMongo:
		client, db, err := database.NewMongoClient(&c.Config.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
		}
		c.Mongo = client
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return nil, err
		}
		return &stores{
			users:    mongodb.NewUserRepository(db),
			messages: mongodb.NewMessageRepository(db),
		}, nil

	case config.StoreDriverMemory:
		c.Log.Warn("using in-memory store, data is lost on restart")
		return &stores{
			users:    memory.NewUserRepository(),
			messages: memory.NewMessageRepository(),
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Error("error closing redis", zap.Error(err))
		}
	}

	// Close MongoDB
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect mongodb: %w", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
