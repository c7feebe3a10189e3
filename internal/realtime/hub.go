// Package realtime fans a single event type out to every connected
// websocket client: a new-movie notification emitted after catalog writes.
// The channel is unauthenticated and unfiltered; clients receive everything.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

// NewMovieEvent is pushed to all subscribers after a movie is created.
type NewMovieEvent struct {
	Title  string `json:"title"`
	Poster string `json:"poster"`
}

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
	logger  *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

// Handler returns the websocket handler that keeps a connection registered
// until it closes. Inbound messages are drained and ignored.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register(conn)
		defer h.unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("Realtime client connected")
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
	h.logger.Debug("Realtime client disconnected")
}

// BroadcastNewMovie pushes the notification to every connected client. Slow
// or dead clients are dropped rather than blocking the write loop.
func (h *Hub) BroadcastNewMovie(event NewMovieEvent) {
	payload, err := json.Marshal(envelope{Event: "newMovie", Data: event})
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode realtime event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount is used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
