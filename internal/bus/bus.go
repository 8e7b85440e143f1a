package bus

import (
	"log"
	"sync"
	"time"
)

// Well-known event types.
const (
	EventDirectMessageCreated = "dm.message.created"
	EventBoardMessageCreated  = "board.message.created"
)

// Event is a row-change notification published when a service writes a new
// record.
type Event struct {
	Type      string
	Payload   any
	Timestamp time.Time
}

// Handler is a callback for events.
type Handler func(Event)

// EventBus is a topic-based publish/subscribe bus for in-process change
// notifications. Subscriptions are identified by the ID returned from On and
// released with Off; releasing an already-released subscription is a no-op.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]namedHandler
	nextID   int
}

type namedHandler struct {
	id      int
	handler Handler
}

func New() *EventBus {
	return &EventBus{
		handlers: make(map[string][]namedHandler),
	}
}

// On registers a handler for the given event type and returns its
// subscription ID.
func (b *EventBus) On(eventType string, handler Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], namedHandler{id: b.nextID, handler: handler})
	return b.nextID
}

// Off removes a handler by its subscription ID. Unknown IDs are ignored.
func (b *EventBus) Off(eventType string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	handlers := b.handlers[eventType]
	for i, h := range handlers {
		if h.id == id {
			b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
			return
		}
	}
}

// Emit delivers the event to every handler registered for its type,
// synchronously and in registration order. A panicking handler does not stop
// delivery to the rest.
func (b *EventBus) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	handlers := make([]namedHandler, len(b.handlers[event.Type]))
	copy(handlers, b.handlers[event.Type])
	b.mu.RUnlock()

	for _, h := range handlers {
		func(nh namedHandler) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("bus: handler %d panicked on %s: %v", nh.id, event.Type, r)
				}
			}()
			nh.handler(event)
		}(h)
	}
}
