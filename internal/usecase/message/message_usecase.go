package message

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/google/uuid"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
	}
}

// GetConversation returns the messages userID sent to correspondingUserID,
// oldest first.
func (uc *MessageUseCase) GetConversation(ctx context.Context, userID, correspondingUserID string) ([]*domain.Message, error) {
	messages, err := uc.messageRepo.GetConversation(ctx, userID, correspondingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

// SendMessage stores a message under a fresh id and returns the receipt
func (uc *MessageUseCase) SendMessage(ctx context.Context, msg *domain.Message) (*domain.InsertReceipt, error) {
	if msg.FromUserID == "" || msg.ToUserID == "" {
		return nil, domain.ErrInvalidInput
	}

	msg.MessageID = uuid.NewString()
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &domain.InsertReceipt{Acknowledged: true, InsertedID: msg.MessageID}, nil
}
