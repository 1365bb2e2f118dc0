package domain

import "time"

// MessageType identifies who authored a message.
type MessageType string

const (
	MessageSystem MessageType = "system"
	MessageUser   MessageType = "user"
	MessageAdmin  MessageType = "admin"
)

// Message is a communication between a user and the trading desk.
// Only IsRead changes after creation.
type Message struct {
	ID          string      `json:"id" bson:"_id"`
	UserID      string      `json:"user_id" bson:"user_id"`
	OrderID     *string     `json:"order_id" bson:"order_id,omitempty"`
	MessageType MessageType `json:"message_type" bson:"message_type"`
	Subject     string      `json:"subject" bson:"subject"`
	Content     string      `json:"content" bson:"content"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	IsRead      bool        `json:"is_read" bson:"is_read"`
	RepliedTo   *string     `json:"replied_to" bson:"replied_to,omitempty"`
}
