package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRoundStarted  EventType = "round_started"
	EventLetterGuessed EventType = "letter_guessed"
	EventRoundFinished EventType = "round_finished"
)

// Event is the base structure for all events emitted while playing
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoundID   RoundID
	Category  Category
	Payload   any // Type-specific data
}

// RoundStartedPayload contains data for round started events
type RoundStartedPayload struct {
	Hint        string
	HiddenCount int
}

// LetterGuessedPayload contains data for letter guessed events
type LetterGuessedPayload struct {
	Step Step
}

// RoundFinishedPayload contains data for round finished events
type RoundFinishedPayload struct {
	Phrase      string
	FinalMasked string
	Guesses     int
}

// Observer receives events as a round progresses
type Observer func(Event)
