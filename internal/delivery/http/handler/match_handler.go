package handler

import (
	"net/http"

	"github.com/gdugdh24/matchmaker-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
	log          *zap.Logger
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, log *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		log:          log,
	}
}

// AddMatch handles PUT /addmatch
// @Summary Record a match
// @Description Append a one-sided match record to the user's matches
// @Tags matches
// @Accept json
// @Produce json
// @Param request body match.AddMatchRequest true "Match"
// @Success 200 {object} domain.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /addmatch [put]
func (h *MatchHandler) AddMatch(c *gin.Context) {
	var req match.AddMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.matchUseCase.AddMatch(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "failed to add match")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatches handles GET /matches
// @Summary Get mutual matches
// @Description List the users that matched with userId and that userId matched with
// @Tags matches
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	users, err := h.matchUseCase.ResolveMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "failed to resolve matches")
		return
	}

	c.JSON(http.StatusOK, users)
}
