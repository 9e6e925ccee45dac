package postgres

import (
	"context"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (message_id, from_user_id, to_user_id, message, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.MessageID, message.FromUserID, message.ToUserID, message.Message, message.Timestamp,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) GetConversation(ctx context.Context, fromUserID, toUserID string) ([]*domain.Message, error) {
	messages := []*domain.Message{}
	query := `
		SELECT message_id, from_user_id, to_user_id, message, timestamp, created_at
		FROM messages
		WHERE from_user_id = $1 AND to_user_id = $2
		ORDER BY seq
	`
	if err := r.db.SelectContext(ctx, &messages, query, fromUserID, toUserID); err != nil {
		return nil, err
	}
	return messages, nil
}
