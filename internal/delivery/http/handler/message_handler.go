package handler

import (
	"net/http"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
	log            *zap.Logger
}

func NewMessageHandler(messageUseCase *message.MessageUseCase, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		log:            log,
	}
}

// SendMessageRequest wraps the posted message
type SendMessageRequest struct {
	Message *domain.Message `json:"message" binding:"required"`
}

// GetMessages handles GET /messages
// @Summary Get messages
// @Description Messages sent from userId to correspondingUserId, oldest first
// @Tags messages
// @Produce json
// @Param userId query string true "Sender"
// @Param correspondingUserId query string true "Recipient"
// @Success 200 {array} domain.Message
// @Failure 500 {object} ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	messages, err := h.messageUseCase.GetConversation(
		c.Request.Context(),
		c.Query("userId"),
		c.Query("correspondingUserId"),
	)
	if err != nil {
		respondError(c, h.log, err, "failed to get messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// PostMessage handles POST /message
// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 200 {object} domain.InsertReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /message [post]
func (h *MessageHandler) PostMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	receipt, err := h.messageUseCase.SendMessage(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, h.log, err, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, receipt)
}
