package domain

import "time"

type Message struct {
	MessageID  string    `json:"message_id" db:"message_id" bson:"message_id"`
	FromUserID string    `json:"from_userId" db:"from_user_id" bson:"from_userId"`
	ToUserID   string    `json:"to_userId" db:"to_user_id" bson:"to_userId"`
	Message    string    `json:"message" db:"message" bson:"message"`
	Timestamp  string    `json:"timestamp" db:"timestamp" bson:"timestamp"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}

// InsertReceipt mirrors the store's insert acknowledgement.
type InsertReceipt struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}
