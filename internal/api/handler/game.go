package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/eternaldle/eternaldle-go/internal/api/middleware"
	"github.com/eternaldle/eternaldle-go/internal/api/response"
	"github.com/eternaldle/eternaldle-go/internal/services/game"
)

// GameHandler handles the daily game endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// guessRequest is the body of POST /api/v1/game/guess
type guessRequest struct {
	Guess string `json:"guess"`
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	result, err := h.gameController.StartGame(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StartGameResponseFromResult(result))
}

// Guess handles POST /api/v1/game/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	guessName := strings.TrimSpace(req.Guess)
	if guessName == "" {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	outcome, err := h.gameController.SubmitGuess(r.Context(), sess, guessName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResponseFromOutcome(outcome))
}
