package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/campusconnect/backend/internal/bus"
	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
)

// FeedLimit caps the public board feed at the 100 most recent messages.
const FeedLimit = 100

var ErrBoardAlreadyStarted = errors.New("board engine already started")

// BoardService is the public-board engine. It holds the latest feed snapshot
// in memory and refreshes it whenever a board insert event arrives on the
// bus, the author's own inserts included. Every refresh replaces the
// snapshot wholesale; there is no incremental merge.
type BoardService struct {
	boardRepo repository.BoardRepository
	events    *bus.EventBus

	mu      sync.RWMutex
	feed    []domain.BoardMessage
	applied uint64

	// seq numbers reload requests so that a slow fetch can never overwrite
	// the snapshot of a newer one.
	seq atomic.Uint64

	lifecycle sync.Mutex
	subID     int
	started   bool
}

func NewBoardService(boardRepo repository.BoardRepository, events *bus.EventBus) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		events:    events,
	}
}

// Start subscribes to board insert events and loads the initial snapshot.
func (s *BoardService) Start(ctx context.Context) error {
	s.lifecycle.Lock()
	if s.started {
		s.lifecycle.Unlock()
		return ErrBoardAlreadyStarted
	}
	s.subID = s.events.On(bus.EventBoardMessageCreated, func(bus.Event) {
		if err := s.Reload(context.Background()); err != nil {
			log.Printf("board: reload after insert: %v", err)
		}
	})
	s.started = true
	s.lifecycle.Unlock()

	return s.Reload(ctx)
}

// Stop releases the bus subscription. Safe to call more than once.
func (s *BoardService) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if !s.started {
		return
	}
	s.events.Off(bus.EventBoardMessageCreated, s.subID)
	s.started = false
}

// Reload fetches the newest FeedLimit messages and replaces the snapshot.
// On a store failure the previous snapshot stays in place and the error is
// returned.
func (s *BoardService) Reload(ctx context.Context) error {
	seq := s.seq.Add(1)

	messages, err := s.boardRepo.ListRecent(ctx, FeedLimit)
	if err != nil {
		return fmt.Errorf("reloading board feed: %w", err)
	}

	s.apply(seq, messages)
	return nil
}

func (s *BoardService) apply(seq uint64, messages []domain.BoardMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		// A newer reload already landed; this snapshot is stale.
		return
	}
	s.applied = seq
	s.feed = messages
}

// Post stores a new broadcast message and publishes the insert event. The
// snapshot is not touched here: the author's feed catches up through the
// same subscription as every other viewer's.
func (s *BoardService) Post(ctx context.Context, userID uuid.UUID, content string) (*domain.BoardMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	msg := &domain.BoardMessage{
		ID:        uuid.New(),
		SenderID:  userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.boardRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating board message: %w", err)
	}

	full, err := s.boardRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, fmt.Errorf("reading back board message %s: not found", msg.ID)
	}

	s.events.Emit(bus.Event{Type: bus.EventBoardMessageCreated, Payload: full})

	return full, nil
}

// Feed returns a copy of the current snapshot, newest first.
func (s *BoardService) Feed() []domain.BoardMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BoardMessage, len(s.feed))
	copy(out, s.feed)
	return out
}
