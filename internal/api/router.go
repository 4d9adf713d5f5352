package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangmanbot/internal/api/handler"
	"github.com/mcoot/hangmanbot/internal/api/middleware"
	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/services/answers"
	"github.com/mcoot/hangmanbot/internal/services/game"
	"github.com/mcoot/hangmanbot/internal/services/selector"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AnswerService *answers.Service
	Selector      *selector.Selector
	GameRunner    *game.Runner
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	answersHandler := handler.NewAnswersHandler(cfg.AnswerService)
	lettersHandler := handler.NewLettersHandler(cfg.Selector)
	roundsHandler := handler.NewRoundsHandler(cfg.GameRunner)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Answer routes
	api.HandleFunc("/answers", answersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/answers/{category}", answersHandler.Get).Methods(http.MethodGet)

	// Guessing routes
	api.HandleFunc("/mask", lettersHandler.Mask).Methods(http.MethodPost)
	api.HandleFunc("/next-letter", lettersHandler.NextLetter).Methods(http.MethodPost)
	api.HandleFunc("/rounds", roundsHandler.Play).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
