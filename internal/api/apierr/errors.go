package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/hangmanbot/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidLetter     = "INVALID_LETTER"
	CodeUnknownCategory   = "UNKNOWN_CATEGORY"
	CodeSearchExhausted   = "SEARCH_EXHAUSTED"
	CodeAnswersNotLoaded  = "ANSWERS_NOT_LOADED"
	CodeAnswerSetNotFound = "ANSWER_SET_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUnknownCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownCategory, err.Error()}}
	case errors.Is(err, model.ErrSearchExhausted):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeSearchExhausted, "No unguessed letter of the phrase could be found"}}
	case errors.Is(err, model.ErrAnswersNotLoaded):
		return &httpError{http.StatusNotFound, APIError{CodeAnswersNotLoaded, "Answers have not been loaded"}}
	case errors.Is(err, model.ErrAnswerSetNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAnswerSetNotFound, "No answers for this category"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Guessed letters must be A-Z"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
