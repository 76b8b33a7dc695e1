package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DaemonClient talks to the palletsim daemon's HTTP API.
type DaemonClient struct {
	baseURL string
	client  *http.Client
}

// HealthResponse mirrors the daemon's health payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CreateGameResult mirrors the daemon's create-game payload
type CreateGameResult struct {
	GameID  string `json:"gameId"`
	StateID string `json:"stateId"`
	Round   int    `json:"round"`
}

// RoundResult mirrors the daemon's advance/revert payloads
type RoundResult struct {
	StateID      string  `json:"stateId"`
	Round        int     `json:"round"`
	Balance      float64 `json:"balance"`
	Satisfaction float64 `json:"satisfaction"`
	GameState    string  `json:"gameState"`
}

// ActionResult mirrors the daemon's player-action payload
type ActionResult struct {
	GameID            string `json:"gameId"`
	StateID           string `json:"stateId"`
	Round             int    `json:"round"`
	OrderID           string `json:"orderId"`
	DeliveredQuantity int    `json:"deliveredQuantity"`
}

// NewDaemonClient creates a client for the daemon at the given base URL
func NewDaemonClient(baseURL string) *DaemonClient {
	return &DaemonClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// HealthCheck verifies the daemon is running and responsive
func (c *DaemonClient) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// CreateGame creates a new game with an opening snapshot
func (c *DaemonClient) CreateGame(ctx context.Context, name, playerID string) (*CreateGameResult, error) {
	var result CreateGameResult
	err := c.do(ctx, http.MethodPost, "/v1/games", map[string]string{
		"name":     name,
		"playerId": playerID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteGame removes a game and its snapshot history
func (c *DaemonClient) DeleteGame(ctx context.Context, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/games/"+gameID, nil, nil)
}

// AdvanceRound simulates the next round
func (c *DaemonClient) AdvanceRound(ctx context.Context, gameID string) (*RoundResult, error) {
	var result RoundResult
	if err := c.do(ctx, http.MethodPost, "/v1/games/"+gameID+"/advance", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RevertRound rolls the game back one round
func (c *DaemonClient) RevertRound(ctx context.Context, gameID string) (*RoundResult, error) {
	var result RoundResult
	if err := c.do(ctx, http.MethodPost, "/v1/games/"+gameID+"/revert", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Action sends a player action with the given payload
func (c *DaemonClient) Action(ctx context.Context, gameID, action string, payload any) (*ActionResult, error) {
	var result ActionResult
	path := "/v1/games/" + gameID + "/actions/" + action
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DaemonClient) do(ctx context.Context, method, path string, payload, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("daemon not reachable at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("daemon: %s", apiErr.Error)
		}
		return fmt.Errorf("daemon returned %s", resp.Status)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
