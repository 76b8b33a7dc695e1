package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbruckner/palletsim/internal/adapters/persistence"
	"github.com/lbruckner/palletsim/internal/application/gameops"
	"github.com/lbruckner/palletsim/internal/application/simulation"
	"github.com/lbruckner/palletsim/internal/domain/game"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/catalog"
	"github.com/lbruckner/palletsim/test/helpers"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := helpers.NewTestDB(t)
	rng := shared.NewSeededRandom(7)
	clock := shared.NewMockClock(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	registry := gameops.NewHandlerRegistry(
		persistence.NewGormGameRepository(db),
		persistence.NewGormStateRepository(db),
		simulation.NewEngine(rng, clock, catalog.NewApplicantPool(rng)),
		nil,
		rng,
		clock,
	)
	mediator, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(HandlerConfig{
		Mediator: mediator,
		Version:  "test",
	}))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func createGame(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, server.URL+"/v1/games", map[string]string{
		"name":     "Testlager",
		"playerId": "player-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload := decodeJSON(t, resp)
	gameID, ok := payload["gameId"].(string)
	require.True(t, ok)
	return gameID
}

func TestAPI_GameLifecycle(t *testing.T) {
	// Arrange
	server := newTestServer(t)

	// Act: create
	resp := postJSON(t, server.URL+"/v1/games", map[string]string{
		"name":     "Testlager",
		"playerId": "player-1",
	})

	// Assert
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON(t, resp)
	assert.EqualValues(t, game.InitialRound, created["round"])
	gameID := created["gameId"].(string)

	// Act: advance one round
	resp = postJSON(t, server.URL+"/v1/games/"+gameID+"/advance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	advanced := decodeJSON(t, resp)
	assert.EqualValues(t, game.InitialRound+1, advanced["round"])

	// Act: revert back to the opening round
	resp = postJSON(t, server.URL+"/v1/games/"+gameID+"/revert", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reverted := decodeJSON(t, resp)
	assert.EqualValues(t, game.InitialRound, reverted["round"])

	// Act: reverting past the opening round is a conflict
	resp = postJSON(t, server.URL+"/v1/games/"+gameID+"/revert", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_DeleteGame(t *testing.T) {
	// Arrange
	server := newTestServer(t)
	gameID := createGame(t, server)

	// Act
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/games/"+gameID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	advance := postJSON(t, server.URL+"/v1/games/"+gameID+"/advance", nil)
	assert.Equal(t, http.StatusNotFound, advance.StatusCode)
}

func TestAPI_ActionEndpoint(t *testing.T) {
	// Arrange
	server := newTestServer(t)
	gameID := createGame(t, server)

	// Act: a valid settings action
	resp := postJSON(t, server.URL+"/v1/games/"+gameID+"/actions/set-overtime", map[string]any{
		"process": 0,
		"hours":   2,
	})

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)
	payload := decodeJSON(t, resp)
	assert.Equal(t, gameID, payload["gameId"])

	// Act: an invalid process is rejected without touching the snapshot
	resp = postJSON(t, server.URL+"/v1/games/"+gameID+"/actions/set-overtime", map[string]any{
		"process": 9,
		"hours":   2,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Act: unknown actions are 404s
	resp = postJSON(t, server.URL+"/v1/games/"+gameID+"/actions/paint-the-warehouse", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
