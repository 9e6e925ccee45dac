package handler

import (
	"net/http"

	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	userRepo repository.UserRepository
	driver   string
	log      *zap.Logger
}

func NewHealthHandler(userRepo repository.UserRepository, driver string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		userRepo: userRepo,
		driver:   driver,
		log:      log,
	}
}

// Health reports whether the store answers a ping
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.userRepo.Ping(c.Request.Context()); err != nil {
		h.log.Warn("health check failed", zap.String("store", h.driver), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"store":  h.driver,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  h.driver,
	})
}

// Root answers the bare greeting clients use as a liveness probe
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, "Hello to my app")
}
