package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gdugdh24/matchmaker-backend/internal/usecase/feed"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	profileUseCase *profile.ProfileUseCase
	feedUseCase    *feed.FeedUseCase
	log            *zap.Logger
}

func NewUserHandler(profileUseCase *profile.ProfileUseCase, feedUseCase *feed.FeedUseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		profileUseCase: profileUseCase,
		feedUseCase:    feedUseCase,
		log:            log,
	}
}

// UpdateUserRequest wraps the profile form the client submits
type UpdateUserRequest struct {
	FormData *profile.UpdateProfileRequest `json:"formData" binding:"required"`
}

// GetUser handles GET /user
// @Summary Get user
// @Description Get a single user's profile
// @Tags users
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	user, err := h.profileUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /user
// @Summary Update user
// @Description Merge the submitted profile fields into the user's document
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserRequest true "Profile form"
// @Success 200 {object} domain.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.profileUseCase.UpdateProfile(c.Request.Context(), req.FormData)
	if err != nil {
		respondError(c, h.log, err, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUsers handles GET /users
// @Summary Get users by id
// @Description Batch-fetch users; userIds is a JSON array of ids
// @Tags users
// @Produce json
// @Param userIds query string true "JSON array of user IDs"
// @Success 200 {array} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	raw := c.Query("userIds")
	if raw == "" {
		badRequest(c, "no user IDs provided")
		return
	}

	userIDs, message := parseUserIDs(raw)
	if message != "" {
		badRequest(c, message)
		return
	}

	users, err := h.profileUseCase.GetUsersByIDs(c.Request.Context(), userIDs)
	if err != nil {
		respondError(c, h.log, err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// parseUserIDs decodes a JSON array of string ids. On failure it returns the
// client-facing reason.
func parseUserIDs(raw string) ([]string, string) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, "invalid user IDs format"
	}

	items, ok := decoded.([]interface{})
	if !ok {
		return nil, "user IDs should be an array"
	}

	userIDs := make([]string, 0, len(items))
	for _, item := range items {
		id, ok := item.(string)
		if !ok {
			return nil, "user IDs should be strings"
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, ""
}

// GetGenderedUsers handles GET /gendered-users
// @Summary Get users by gender
// @Description List users whose gender_identity equals the gender parameter
// @Tags users
// @Produce json
// @Param gender query string false "Gender identity"
// @Success 200 {array} domain.User
// @Failure 500 {object} ErrorResponse
// @Router /gendered-users [get]
func (h *UserHandler) GetGenderedUsers(c *gin.Context) {
	users, err := h.feedUseCase.ListByGender(c.Request.Context(), c.Query("gender"))
	if err != nil {
		respondError(c, h.log, err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, users)
}
