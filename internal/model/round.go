package model

import (
	"strings"
	"time"
)

// RoundID identifies a single played phrase
type RoundID string

// Phase identifies which stage of the letter selector produced a guess
type Phase string

const (
	PhaseFrequency    Phase = "frequency"     // Fixed most-frequent letters
	PhaseRandomSearch Phase = "random_search" // Seeded search over the phrase's own letters
)

// GuessedLetters is the ordered set of lowercase letters tried in a round.
// It only ever grows; a letter appears at most once.
type GuessedLetters []rune

// ParseGuessedLetters builds a GuessedLetters from a string such as "etai",
// ignoring separators and repeated letters
func ParseGuessedLetters(s string) (GuessedLetters, error) {
	var g GuessedLetters
	for _, r := range s {
		if r == ',' || r == ' ' {
			continue
		}
		if g.Contains(r) {
			continue
		}
		if err := g.Add(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Contains reports whether the letter has been guessed, ignoring case
func (g GuessedLetters) Contains(letter rune) bool {
	letter = ToLowerASCII(letter)
	for _, l := range g {
		if ToLowerASCII(l) == letter {
			return true
		}
	}
	return false
}

// Add appends a new letter, stored lowercase
func (g *GuessedLetters) Add(letter rune) error {
	if !IsASCIILetter(letter) {
		return ErrInvalidLetter
	}
	if g.Contains(letter) {
		return ErrLetterAlreadyGuessed
	}
	*g = append(*g, ToLowerASCII(letter))
	return nil
}

// String returns the letters in guess order
func (g GuessedLetters) String() string {
	return string(g)
}

// Clone returns an independent copy
func (g GuessedLetters) Clone() GuessedLetters {
	if g == nil {
		return nil
	}
	out := make(GuessedLetters, len(g))
	copy(out, g)
	return out
}

// IsASCIILetter reports whether r is in A-Z or a-z
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ToLowerASCII lowercases A-Z and leaves everything else alone
func ToLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Step records one guess within a round
type Step struct {
	MaskedBefore string // Render shown before the guess
	Letter       rune
	Phase        Phase
	Hits         int // Occurrences revealed by this guess
	HiddenAfter  int
}

// Round is the full record of guessing one phrase
type Round struct {
	ID          RoundID
	Category    Category
	Phrase      string
	Steps       []Step
	Guessed     GuessedLetters
	FinalMasked string
	FinalHidden int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// AnswerSet is the list of phrases configured under one category name.
// The name is kept raw so unknown categories surface when a round starts.
type AnswerSet struct {
	Category string
	Answers  []string
}

// Summary is a one-line description of a round, useful for logs
func (r *Round) Summary() string {
	var b strings.Builder
	b.WriteString(r.Category.String())
	b.WriteString(": ")
	b.WriteString(r.FinalMasked)
	b.WriteString(" after ")
	b.WriteString(r.Guessed.String())
	return b.String()
}
