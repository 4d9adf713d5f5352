// Package mask renders a phrase with its unguessed letters hidden.
package mask

import (
	"strings"

	"github.com/mcoot/hangmanbot/internal/model"
)

// Placeholder replaces every letter that has not been guessed yet
const Placeholder = '_'

// Obfuscate returns the phrase with unguessed ASCII letters replaced by
// Placeholder, and how many letters are still hidden. Revealed letters keep
// their original case; anything that is not an ASCII letter passes through
// and never counts as hidden. phrase must be valid UTF-8; invalid bytes come
// back as U+FFFD.
func Obfuscate(phrase string, guessed model.GuessedLetters) (string, int) {
	var b strings.Builder
	b.Grow(len(phrase))

	hidden := 0
	for _, c := range phrase {
		if !model.IsASCIILetter(c) {
			b.WriteRune(c)
			continue
		}
		if guessed.Contains(c) {
			b.WriteRune(c)
		} else {
			b.WriteRune(Placeholder)
			hidden++
		}
	}
	return b.String(), hidden
}

// CountLetters returns the number of ASCII letters in the phrase
func CountLetters(phrase string) int {
	count := 0
	for _, c := range phrase {
		if model.IsASCIILetter(c) {
			count++
		}
	}
	return count
}
