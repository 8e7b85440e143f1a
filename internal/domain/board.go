package domain

import (
	"time"

	"github.com/google/uuid"
)

// BoardMessage is one broadcast message on the public board, visible to
// every user.
type BoardMessage struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	SenderName      string  `json:"sender_name,omitempty"`
	SenderUSN       string  `json:"sender_usn,omitempty"`
	SenderAvatarURL *string `json:"sender_avatar_url,omitempty"`
}
