package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/hangmanbot/internal/api/request"
	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/services/mask"
	"github.com/mcoot/hangmanbot/internal/services/selector"
)

// LettersHandler exposes the masking engine and the letter selector
type LettersHandler struct {
	selector *selector.Selector
}

// NewLettersHandler creates a new letters handler
func NewLettersHandler(sel *selector.Selector) *LettersHandler {
	return &LettersHandler{
		selector: sel,
	}
}

// Mask handles POST /api/v1/mask
func (h *LettersHandler) Mask(w http.ResponseWriter, r *http.Request) {
	var req request.MaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	guessed, err := model.ParseGuessedLetters(req.Guessed)
	if err != nil {
		WriteError(w, err)
		return
	}

	masked, hidden := mask.Obfuscate(req.Phrase, guessed)
	response.JSON(w, http.StatusOK, response.Mask{Masked: masked, Hidden: hidden})
}

// NextLetter handles POST /api/v1/next-letter
func (h *LettersHandler) NextLetter(w http.ResponseWriter, r *http.Request) {
	var req request.NextLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Phrase == "" {
		WriteError(w, NewInvalidRequestError("phrase is required"))
		return
	}
	if req.Issued < 0 {
		WriteError(w, NewInvalidRequestError("issued must not be negative"))
		return
	}

	guessed, err := model.ParseGuessedLetters(req.Guessed)
	if err != nil {
		WriteError(w, err)
		return
	}

	letter, phase, err := h.selector.Next(req.Phrase, guessed, req.Issued)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NextLetter{Letter: string(letter), Phase: string(phase)})
}
