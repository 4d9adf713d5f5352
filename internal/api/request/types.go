package request

// MaskRequest is the request body for masking a phrase
type MaskRequest struct {
	Phrase  string `json:"phrase"`
	Guessed string `json:"guessed"`
}

// NextLetterRequest is the request body for asking the selector for a guess.
// Issued is the number of frequency-phase guesses already made.
type NextLetterRequest struct {
	Phrase  string `json:"phrase"`
	Guessed string `json:"guessed"`
	Issued  int    `json:"issued"`
}

// PlayRoundRequest is the request body for playing one phrase
type PlayRoundRequest struct {
	Category string `json:"category"`
	Phrase   string `json:"phrase"`
}
