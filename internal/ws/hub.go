package ws

import (
	"context"
	"encoding/json"

	"nexcraft-service/internal/domain/contact"

	"go.uber.org/zap"
)

// Event is the wire format pushed to connected dashboards.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub owns the set of connected admin dashboard clients and fans new
// contact submissions out to them. The client set is touched only by
// the Run goroutine; registration and broadcast go through channels.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("dashboard client connected",
				zap.String("admin_id", client.adminID),
				zap.Int("clients", len(h.clients)),
			)

		case client := <-h.unregister:
			if h.clients[client] {
				delete(h.clients, client)
				client.close()
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients, client)
					client.close()
				}
			}
		}
	}
}

// NotifySubmission pushes a new contact submission to every connected
// dashboard. Best effort: if the hub is saturated the event is dropped.
func (h *Hub) NotifySubmission(s *contact.Submission) {
	payload, err := json.Marshal(Event{Event: "contact_submission", Data: s})
	if err != nil {
		h.logger.Error("failed to encode submission event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("submission event dropped, broadcast queue full")
	}
}
