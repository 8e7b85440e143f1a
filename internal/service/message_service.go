package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/backend/internal/bus"
	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrEmptyContent      = errors.New("message content is empty")
	ErrNoRecipient       = errors.New("no recipient selected")
	ErrCannotMessageSelf = errors.New("cannot send a message to yourself")
	ErrContactNotFound   = errors.New("contact not found")
)

// MessageService is the direct-conversation engine: it owns the full set of
// messages touching a user and partitions them into per-contact
// conversations.
type MessageService struct {
	messageRepo repository.DirectMessageRepository
	profileRepo repository.ProfileRepository
	events      *bus.EventBus
}

func NewMessageService(messageRepo repository.DirectMessageRepository, profileRepo repository.ProfileRepository, events *bus.EventBus) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		events:      events,
	}
}

// ListMessages returns every message sent or received by the user, ordered
// by creation time ascending.
func (s *MessageService) ListMessages(ctx context.Context, userID uuid.UUID) ([]domain.DirectMessage, error) {
	messages, err := s.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	if messages == nil {
		messages = []domain.DirectMessage{}
	}
	return messages, nil
}

// Conversation returns the messages exchanged between the user and one
// contact, in either direction, ordered by creation time ascending.
func (s *MessageService) Conversation(ctx context.Context, userID, contactID uuid.UUID) ([]domain.DirectMessage, error) {
	messages, err := s.messageRepo.ListConversation(ctx, userID, contactID)
	if err != nil {
		return nil, fmt.Errorf("listing conversation: %w", err)
	}
	if messages == nil {
		messages = []domain.DirectMessage{}
	}
	return messages, nil
}

// Send stores a new message addressed to receiverID. Whitespace-only content
// and missing recipients are rejected before anything reaches the store; on
// a store failure nothing is published and the caller's composer state is
// theirs to keep.
func (s *MessageService) Send(ctx context.Context, userID, receiverID uuid.UUID, content string) (*domain.DirectMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if receiverID == uuid.Nil {
		return nil, ErrNoRecipient
	}
	if receiverID == userID {
		return nil, ErrCannotMessageSelf
	}

	receiver, err := s.profileRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrContactNotFound
	}

	msg := &domain.DirectMessage{
		ID:         uuid.New(),
		SenderID:   userID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	full, err := s.messageRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, fmt.Errorf("reading back message %s: not found", msg.ID)
	}

	s.events.Emit(bus.Event{Type: bus.EventDirectMessageCreated, Payload: full})

	return full, nil
}
