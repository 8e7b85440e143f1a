package domain

import (
	"time"

	"github.com/google/uuid"
)

// DirectMessage is one message in a 1:1 conversation. Messages are never
// edited or deleted.
type DirectMessage struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	// Joined fields
	SenderName   string `json:"sender_name,omitempty"`
	SenderUSN    string `json:"sender_usn,omitempty"`
	ReceiverName string `json:"receiver_name,omitempty"`
	ReceiverUSN  string `json:"receiver_usn,omitempty"`
}
