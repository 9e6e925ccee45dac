package repository

import (
	"context"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// GetConversation returns messages sent from fromUserID to toUserID in
	// insertion order.
	GetConversation(ctx context.Context, fromUserID, toUserID string) ([]*domain.Message, error)
}
