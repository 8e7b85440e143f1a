package repository

import (
	"context"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListExcept(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

type DirectMessageRepository interface {
	Create(ctx context.Context, msg *domain.DirectMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DirectMessage, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.DirectMessage, error)
	ListConversation(ctx context.Context, userID, contactID uuid.UUID) ([]domain.DirectMessage, error)
}

type BoardRepository interface {
	Create(ctx context.Context, msg *domain.BoardMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BoardMessage, error)
	ListRecent(ctx context.Context, limit int) ([]domain.BoardMessage, error)
}
