// Package selector decides which letter to guess next.
//
// Guessing runs in two phases. The frequency phase issues the first
// FrequencyGuesses entries of FrequencyTable in order without consulting
// the phrase. After that, a Strategy (normally RandomSearch) picks letters
// that are known to be in the phrase.
package selector

import (
	"log/slog"

	"github.com/mcoot/hangmanbot/internal/model"
)

// Selector produces the next guess for a round. The round's state (the
// guessed letters and how many frequency guesses were issued) is owned by
// the caller.
type Selector struct {
	search Strategy
	logger *slog.Logger
}

// New creates a Selector that falls back to search after the frequency phase
func New(search Strategy, logger *slog.Logger) *Selector {
	return &Selector{
		search: search,
		logger: logger.With(slog.String("component", "selector")),
	}
}

// Next returns the next letter to guess and the phase that produced it
func (s *Selector) Next(phrase string, guessed model.GuessedLetters, issued int) (rune, model.Phase, error) {
	if letter, ok := FrequencyLetter(issued); ok {
		return letter, model.PhaseFrequency, nil
	}

	letter, err := s.search.ChooseLetter(phrase, guessed)
	if err != nil {
		s.logger.Error("letter search failed",
			slog.String("guessed", guessed.String()),
			slog.String("error", err.Error()),
		)
		return 0, model.PhaseRandomSearch, err
	}

	s.logger.Debug("letter chosen",
		slog.String("letter", string(letter)),
		slog.String("guessed", guessed.String()),
	)
	return letter, model.PhaseRandomSearch, nil
}
