package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// roundEvent is the wire format pushed to connected clients.
type roundEvent struct {
	Type       string `json:"type"`
	GameID     string `json:"gameId"`
	Round      int    `json:"round"`
	ServerTime int64  `json:"serverTime"`
}

const (
	eventCalculating   = "calculating"
	eventRoundComplete = "round_complete"
)

type subscriber struct {
	conn   *websocket.Conn
	gameID string
	mu     sync.Mutex
}

// Hub fans round lifecycle events out to websocket subscribers. Clients
// subscribe for a single game or, with an empty filter, for every game.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	logger      *log.Logger
	upgrader    websocket.Upgrader
}

// NewHub creates a hub with no subscribers.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the request to a websocket session and keeps it
// registered until the peer disconnects. The optional "game" query
// parameter narrows the events the session receives.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{conn: conn, gameID: gameID}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	// Inbound messages carry nothing; the read loop only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(sub)
			return
		}
	}
}

// RoundStarted announces that a round advance began for the game.
func (h *Hub) RoundStarted(gameID string, round int) {
	h.broadcast(roundEvent{
		Type:       eventCalculating,
		GameID:     gameID,
		Round:      round,
		ServerTime: time.Now().UnixMilli(),
	})
}

// RoundCompleted announces that the new round snapshot is available.
func (h *Hub) RoundCompleted(gameID string, round int) {
	h.broadcast(roundEvent{
		Type:       eventRoundComplete,
		GameID:     gameID,
		Round:      round,
		ServerTime: time.Now().UnixMilli(),
	})
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.subscribers = make(map[*subscriber]struct{})
	h.mu.Unlock()

	for _, sub := range subs {
		sub.conn.Close()
	}
}

func (h *Hub) broadcast(event roundEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Printf("failed to marshal round event: %v", err)
		return
	}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		if sub.gameID == "" || sub.gameID == event.GameID {
			subs = append(subs, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			h.logger.Printf("dropping websocket subscriber: %v", err)
			h.remove(sub)
			sub.conn.Close()
		}
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}
