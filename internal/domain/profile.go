package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a student identity record. Profiles are provisioned by the
// account system; this service only ever reads them.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	USN       string    `json:"usn"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
