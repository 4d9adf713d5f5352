package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/hangmanbot/internal/api/request"
	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/services/game"
)

// RoundsHandler plays single rounds on request
type RoundsHandler struct {
	runner *game.Runner
}

// NewRoundsHandler creates a new rounds handler
func NewRoundsHandler(runner *game.Runner) *RoundsHandler {
	return &RoundsHandler{
		runner: runner,
	}
}

// Play handles POST /api/v1/rounds
func (h *RoundsHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Category == "" {
		WriteError(w, NewInvalidRequestError("category is required"))
		return
	}
	if req.Phrase == "" {
		WriteError(w, NewInvalidRequestError("phrase is required"))
		return
	}

	round, err := h.runner.PlayRound(r.Context(), req.Category, req.Phrase, nil)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(round))
}
