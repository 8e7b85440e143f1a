package ws

import (
	"log"
	"sync"

	"github.com/campusconnect/backend/internal/bus"
	"github.com/campusconnect/backend/internal/domain"
)

// Bridge forwards bus change notifications to connected WebSocket clients.
// Board inserts fan out to everyone, the author included; direct messages
// reach only the two participants.
type Bridge struct {
	hub    *Hub
	events *bus.EventBus

	mu       sync.Mutex
	boardSub int
	dmSub    int
	started  bool
}

func NewBridge(hub *Hub, events *bus.EventBus) *Bridge {
	return &Bridge{hub: hub, events: events}
}

func (b *Bridge) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}

	b.boardSub = b.events.On(bus.EventBoardMessageCreated, func(e bus.Event) {
		msg, ok := e.Payload.(*domain.BoardMessage)
		if !ok {
			log.Printf("ws bridge: unexpected payload for %s", e.Type)
			return
		}
		evt, err := NewEvent(EventTypeBoardMessageNew, msg)
		if err != nil {
			log.Printf("ws bridge: marshal error: %v", err)
			return
		}
		b.hub.BroadcastAll(evt)
	})

	b.dmSub = b.events.On(bus.EventDirectMessageCreated, func(e bus.Event) {
		msg, ok := e.Payload.(*domain.DirectMessage)
		if !ok {
			log.Printf("ws bridge: unexpected payload for %s", e.Type)
			return
		}
		evt, err := NewEvent(EventTypeDirectMessageNew, msg)
		if err != nil {
			log.Printf("ws bridge: marshal error: %v", err)
			return
		}
		b.hub.BroadcastToUsers(evt, msg.SenderID, msg.ReceiverID)
	})

	b.started = true
}

// Stop releases both subscriptions. Safe to call more than once.
func (b *Bridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return
	}
	b.events.Off(bus.EventBoardMessageCreated, b.boardSub)
	b.events.Off(bus.EventDirectMessageCreated, b.dmSub)
	b.started = false
}
