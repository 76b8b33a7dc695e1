package notify

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, server *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	if gameID != "" {
		url += "?game=" + gameID
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, count int) {
	t.Helper()

	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.subscribers) == count
	}, time.Second, 5*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) roundEvent {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event roundEvent
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHub_BroadcastsRoundLifecycleEvents(t *testing.T) {
	// Arrange
	hub := NewHub(nil)
	defer hub.Close()
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dialHub(t, server, "")
	waitForSubscribers(t, hub, 1)

	// Act
	hub.RoundStarted("game-1", 12)
	hub.RoundCompleted("game-1", 12)

	// Assert
	started := readEvent(t, conn)
	assert.Equal(t, "calculating", started.Type)
	assert.Equal(t, "game-1", started.GameID)
	assert.Equal(t, 12, started.Round)

	completed := readEvent(t, conn)
	assert.Equal(t, "round_complete", completed.Type)
	assert.Equal(t, 12, completed.Round)
	assert.NotZero(t, completed.ServerTime)
}

func TestHub_FiltersEventsByGame(t *testing.T) {
	// Arrange
	hub := NewHub(nil)
	defer hub.Close()
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dialHub(t, server, "game-2")
	waitForSubscribers(t, hub, 1)

	// Act
	hub.RoundCompleted("game-1", 15)
	hub.RoundCompleted("game-2", 20)

	// Assert: only the subscribed game's event arrives
	event := readEvent(t, conn)
	assert.Equal(t, "game-2", event.GameID)
	assert.Equal(t, 20, event.Round)
}
