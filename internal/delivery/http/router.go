package http

import (
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matchmaker-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	matchHandler   *handler.MatchHandler
	messageHandler *handler.MessageHandler
	healthHandler  *handler.HealthHandler
	loginLimiter   middleware.Limiter
	storeTimeout   time.Duration
	log            *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	healthHandler *handler.HealthHandler,
	loginLimiter middleware.Limiter,
	storeTimeout time.Duration,
	log *zap.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		matchHandler:   matchHandler,
		messageHandler: messageHandler,
		healthHandler:  healthHandler,
		loginLimiter:   loginLimiter,
		storeTimeout:   storeTimeout,
		log:            log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(r.log))

	router.GET("/", r.healthHandler.Root)

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Health)
	router.HEAD("/health", r.healthHandler.Health)

	api := router.Group("")
	api.Use(middleware.StoreTimeout(r.storeTimeout))
	{
		// Auth routes, throttled per client when a limiter is configured
		auth := api.Group("")
		if r.loginLimiter != nil {
			auth.Use(middleware.RateLimit(r.loginLimiter, r.log))
		}
		{
			auth.POST("/signup", r.authHandler.Signup)
			auth.POST("/login", r.authHandler.Login)
		}

		// User routes
		api.GET("/user", r.userHandler.GetUser)
		api.PUT("/user", r.userHandler.UpdateUser)
		api.GET("/users", r.userHandler.GetUsers)
		api.GET("/gendered-users", r.userHandler.GetGenderedUsers)

		// Match routes
		api.PUT("/addmatch", r.matchHandler.AddMatch)
		api.GET("/matches", r.matchHandler.GetMatches)

		// Message routes
		api.GET("/messages", r.messageHandler.GetMessages)
		api.POST("/message", r.messageHandler.PostMessage)
	}

	return router
}
