package mongodb

import (
	"context"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepository struct {
	c *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{c: db.Collection(messagesCollection)}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	message.CreatedAt = time.Now().UTC()
	_, err := r.c.InsertOne(ctx, message)
	return err
}

func (r *messageRepository) GetConversation(ctx context.Context, fromUserID, toUserID string) ([]*domain.Message, error) {
	// _id breaks created_at ties; ObjectIDs grow with insertion time.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{"from_userId": fromUserID, "to_userId": toUserID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []*domain.Message{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
