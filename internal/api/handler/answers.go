package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/services/answers"
)

// AnswersHandler handles answer list endpoints
type AnswersHandler struct {
	answers *answers.Service
}

// NewAnswersHandler creates a new answers handler
func NewAnswersHandler(answerService *answers.Service) *AnswersHandler {
	return &AnswersHandler{
		answers: answerService,
	}
}

// List handles GET /api/v1/answers
func (h *AnswersHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.answers.Sets()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnswersFromModel(sets))
}

// Get handles GET /api/v1/answers/{category}
func (h *AnswersHandler) Get(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	set, err := h.answers.Lookup(r.Context(), category)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnswerSetFromModel(*set))
}
