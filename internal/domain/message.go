package domain

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	SenderID    uuid.UUID  `json:"sender_id" db:"sender_id"`
	ReceiverID  uuid.UUID  `json:"receiver_id" db:"receiver_id"`
	CelebrityID *uuid.UUID `json:"celebrity_id,omitempty" db:"celebrity_id"`
	Content     string     `json:"content" db:"content"`
	IsRead      bool       `json:"is_read" db:"is_read"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`

	// Sender identity, populated by the celebrity inbox join.
	SenderUsername *string `json:"sender_username,omitempty" db:"sender_username"`
	SenderName     *string `json:"sender_name,omitempty" db:"sender_name"`
}

type SendMessageInput struct {
	CelebrityID uuid.UUID `json:"celebrity_id" validate:"required"`
	Content     string    `json:"content" validate:"required,min=1,max=2000"`
}

type AdminReplyInput struct {
	CelebrityID uuid.UUID `json:"celebrity_id" validate:"required"`
	ReceiverID  uuid.UUID `json:"receiver_id" validate:"required"`
	Content     string    `json:"content" validate:"required,min=1,max=2000"`
}

// Direction of a message relative to the user whose conversations are
// being listed.
const (
	MessageSent     = "sent"
	MessageReceived = "received"
)

type ConversationMessage struct {
	Message
	Direction string `json:"direction"`
}

// Conversation is the derived thread between one user and one celebrity.
// It is computed at read time from the flat message rows, never stored.
type Conversation struct {
	CelebrityID      uuid.UUID             `json:"celebrity_id"`
	CelebrityName    string                `json:"celebrity_name"`
	Messages         []ConversationMessage `json:"messages"`
	LastMessageAt    time.Time             `json:"last_message_at"`
	HasUnreadReplies bool                  `json:"has_unread_replies"`
}
