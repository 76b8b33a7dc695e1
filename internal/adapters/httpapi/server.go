package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/application/gameops/commands"
	"github.com/lbruckner/palletsim/internal/domain/game"
)

// HandlerConfig carries the collaborators of the daemon's HTTP surface.
type HandlerConfig struct {
	Mediator common.Mediator
	Hub      http.Handler
	Version  string
	Logger   *log.Logger
}

// NewHandler builds the daemon's HTTP handler: health, the websocket
// endpoint, and the game mutation API the CLI talks to. Read-side queries
// are not exposed here; clients run those directly against the database.
func NewHandler(cfg HandlerConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &server{
		mediator: cfg.Mediator,
		version:  cfg.Version,
		logger:   logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": s.version,
		})
	})

	if cfg.Hub != nil {
		mux.Handle("GET /ws", cfg.Hub)
	}

	mux.HandleFunc("POST /v1/games", s.handleCreateGame)
	mux.HandleFunc("DELETE /v1/games/{id}", s.handleDeleteGame)
	mux.HandleFunc("POST /v1/games/{id}/advance", s.handleAdvanceRound)
	mux.HandleFunc("POST /v1/games/{id}/revert", s.handleRevertRound)
	mux.HandleFunc("POST /v1/games/{id}/actions/{action}", s.handleAction)

	return mux
}

type server struct {
	mediator common.Mediator
	version  string
	logger   *log.Logger
}

func (s *server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		PlayerID string `json:"playerId"`
	}
	if err := decodeBody(r, &req); err != nil {
		httpError(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		httpError(w, "name is required", http.StatusBadRequest)
		return
	}

	result, err := s.mediator.Send(r.Context(), &commands.CreateGameCommand{
		Name:     req.Name,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := result.(*commands.CreateGameResponse)
	writeJSON(w, http.StatusCreated, map[string]any{
		"gameId":  resp.GameID,
		"stateId": resp.StateID,
		"round":   resp.Round,
	})
}

func (s *server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	_, err := s.mediator.Send(r.Context(), &commands.DeleteGameCommand{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleAdvanceRound(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	gameID := r.PathValue("id")

	result, err := s.mediator.Send(r.Context(), &commands.AdvanceRoundCommand{GameID: gameID})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := result.(*commands.AdvanceRoundResponse)
	s.logger.Printf("advanced game %s to round %d in %s", gameID, resp.Round, time.Since(start).Round(time.Millisecond))
	writeJSON(w, http.StatusOK, map[string]any{
		"stateId":      resp.StateID,
		"round":        resp.Round,
		"balance":      resp.Balance,
		"satisfaction": resp.Satisfaction,
		"gameState":    resp.GameState,
	})
}

func (s *server) handleRevertRound(w http.ResponseWriter, r *http.Request) {
	result, err := s.mediator.Send(r.Context(), &commands.RevertRoundCommand{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := result.(*commands.RevertRoundResponse)
	writeJSON(w, http.StatusOK, map[string]any{
		"stateId": resp.StateID,
		"round":   resp.Round,
	})
}

func (s *server) handleAction(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	action := r.PathValue("action")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpError(w, "failed to read payload", http.StatusBadRequest)
		return
	}

	cmd, known, err := buildAction(action, gameID, body)
	if !known {
		httpError(w, "unknown action: "+action, http.StatusNotFound)
		return
	}
	if err != nil {
		httpError(w, "invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.mediator.Send(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch resp := result.(type) {
	case *commands.PlaceOrderResponse:
		writeJSON(w, http.StatusOK, map[string]any{
			"orderId":           resp.OrderID,
			"deliveredQuantity": resp.DeliveredQuantity,
			"round":             resp.Round,
		})
	case *commands.ActionResponse:
		writeJSON(w, http.StatusOK, map[string]any{
			"gameId":  resp.GameID,
			"stateId": resp.StateID,
			"round":   resp.Round,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// writeError maps domain errors to HTTP statuses.
func (s *server) writeError(w http.ResponseWriter, err error) {
	var (
		gameNotFound  *game.ErrGameNotFound
		stateNotFound *game.ErrStateNotFound
		gameOver      *game.ErrGameOver
		noRevert      *game.ErrRevertNotPossible
	)
	switch {
	case errors.As(err, &gameNotFound), errors.As(err, &stateNotFound):
		httpError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &gameOver), errors.As(err, &noRevert):
		httpError(w, err.Error(), http.StatusConflict)
	default:
		var (
			invalidProcess  *game.ErrInvalidProcess
			invalidContract *game.ErrInvalidContractType
			employee        *game.ErrEmployeeNotFound
			conveyor        *game.ErrConveyorNotFound
			order           *game.ErrOrderNotFound
			article         *game.ErrArticleNotFound
		)
		if errors.As(err, &invalidProcess) || errors.As(err, &invalidContract) ||
			errors.As(err, &employee) || errors.As(err, &conveyor) ||
			errors.As(err, &order) || errors.As(err, &article) {
			httpError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.logger.Printf("request failed: %v", err)
		httpError(w, "internal error", http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		httpError(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func httpError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
