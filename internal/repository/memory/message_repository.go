package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
)

type MessageRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.CreatedAt = time.Now().UTC()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MessageRepository) GetConversation(ctx context.Context, fromUserID, toUserID string) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Message{}
	for i := range r.messages {
		m := r.messages[i]
		if m.FromUserID == fromUserID && m.ToUserID == toUserID {
			out = append(out, &m)
		}
	}
	return out, nil
}
