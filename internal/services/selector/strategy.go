package selector

import "github.com/mcoot/hangmanbot/internal/model"

// Strategy defines how the next letter is picked once the frequency phase is over
type Strategy interface {
	// ChooseLetter selects an unguessed letter for the phrase
	ChooseLetter(phrase string, guessed model.GuessedLetters) (rune, error)
}

// FrequencyTable ranks the 26 Latin letters by approximate English frequency
var FrequencyTable = [26]rune{
	'e', 't', 'a', 'i', 'n', 'o', 's', 'h', 'r', 'd', 'l', 'u', 'c', 'm', 'f', 'w', 'y', 'g', 'p',
	'b', 'v', 'k', 'q', 'j', 'x', 'z',
}

// FrequencyGuesses is how many letters the frequency phase issues
const FrequencyGuesses = 4

// FrequencyLetter returns the letter the frequency phase issues after
// issued earlier frequency guesses. It never looks at the phrase.
func FrequencyLetter(issued int) (rune, bool) {
	if issued < 0 || issued >= FrequencyGuesses {
		return 0, false
	}
	return FrequencyTable[issued], true
}
