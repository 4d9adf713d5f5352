package selector

import (
	"fmt"

	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/model"
)

// MaxSearchAttempts bounds the draws a single search may make. Running out
// means the caller asked for a letter when none was left to find.
const MaxSearchAttempts = 100000

// RandomSearch draws letters from the frequency table until it finds one
// that occurs in the phrase and has not been guessed. Every call starts a
// fresh stream from the factory, so the walk is the same each time for the
// same phrase and guesses.
type RandomSearch struct {
	newStream   random.Factory
	maxAttempts int
}

// NewRandomSearch creates a RandomSearch drawing from streams made by newStream
func NewRandomSearch(newStream random.Factory) *RandomSearch {
	return &RandomSearch{
		newStream:   newStream,
		maxAttempts: MaxSearchAttempts,
	}
}

// ChooseLetter returns an unguessed lowercase letter present in the phrase
func (s *RandomSearch) ChooseLetter(phrase string, guessed model.GuessedLetters) (rune, error) {
	rng := s.newStream()
	for i := 0; i < s.maxAttempts; i++ {
		candidate := model.ToLowerASCII(FrequencyTable[rng.Intn(len(FrequencyTable))])
		if !guessed.Contains(candidate) && containsLetter(phrase, candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w after %d attempts (phrase %q, guessed %q)",
		model.ErrSearchExhausted, s.maxAttempts, phrase, guessed.String())
}

// containsLetter reports whether the lowercase letter occurs in the phrase, ignoring case
func containsLetter(phrase string, letter rune) bool {
	for _, c := range phrase {
		if model.ToLowerASCII(c) == letter {
			return true
		}
	}
	return false
}

var _ Strategy = (*RandomSearch)(nil)
