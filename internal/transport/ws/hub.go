package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Hub manages all active WebSocket clients and routes feed updates to them.
// A user may hold several connections (multiple tabs); events addressed to a
// user reach every one of them.
type Hub struct {
	// clients maps userID → that user's open connections.
	clients map[uuid.UUID]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMsg
}

type broadcastMsg struct {
	data []byte
	// targets limits delivery to these users; nil means every client.
	targets []uuid.UUID
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMsg, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]struct{})
			}
			h.clients[client.userID][client] = struct{}{}
			log.Printf("ws hub: user %s connected (%d users online)", client.userID, len(h.clients))

		case client := <-h.unregister:
			if set, ok := h.clients[client.userID]; ok {
				if _, ok := set[client]; ok {
					h.drop(client)
					log.Printf("ws hub: user %s disconnected (%d users online)", client.userID, len(h.clients))
				}
			}

		case msg := <-h.broadcast:
			if msg.targets == nil {
				for _, set := range h.clients {
					for client := range set {
						h.deliver(client, msg.data)
					}
				}
				continue
			}
			for _, userID := range msg.targets {
				for client := range h.clients[userID] {
					h.deliver(client, msg.data)
				}
			}
		}
	}
}

func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		// Client buffer full - disconnect
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	set := h.clients[client.userID]
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.send)
	close(client.done)
}

// BroadcastAll sends an event to every connected client.
func (h *Hub) BroadcastAll(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.broadcast <- &broadcastMsg{data: data}
}

// BroadcastToUsers sends an event to every connection of the given users.
func (h *Hub) BroadcastToUsers(event *Event, userIDs ...uuid.UUID) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.broadcast <- &broadcastMsg{data: data, targets: userIDs}
}
