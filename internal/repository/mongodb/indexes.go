package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	messagesCollection = "messages"
)

// EnsureIndexes creates the indexes both collections rely on. CreateMany is
// idempotent for identical specs, so this runs on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var problems []string

	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_user_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		{
			Keys:    bson.D{{Key: "gender_identity", Value: 1}},
			Options: options.Index().SetName("idx_users_gender_identity"),
		},
	})
	if err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	_, err = db.Collection(messagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "from_userId", Value: 1},
			{Key: "to_userId", Value: 1},
			{Key: "created_at", Value: 1},
		},
		Options: options.Index().SetName("idx_messages_from_to_created"),
	})
	if err != nil {
		problems = append(problems, "messages: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
