package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/model"
)

// separator is printed after every round's answer
const separator = "---------------------------------------------"

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// IsJSON reports whether output is JSON
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Transcript returns an observer that writes a round's transcript as it is
// played. It writes nothing in JSON mode.
func (o *Output) Transcript() model.Observer {
	if o.IsJSON() {
		return nil
	}
	return func(e model.Event) {
		switch p := e.Payload.(type) {
		case model.RoundStartedPayload:
			o.writeHint(p.Hint)
		case model.LetterGuessedPayload:
			o.writeStep(response.StepFromModel(p.Step))
		case model.RoundFinishedPayload:
			o.writeAnswer(p.Phrase)
		}
	}
}

// PlayResult is the output of playing every configured answer
type PlayResult struct {
	Rounds       []response.Round `json:"rounds"`
	TotalAnswers int              `json:"total_answers"`
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Round:
		o.printRound(v)
	case PlayResult:
		o.printTotal(v.TotalAnswers)
	case response.Mask:
		fmt.Fprintln(o.w, v.Masked)
		fmt.Fprintf(o.w, "hidden = %d\n", v.Hidden)
	case response.NextLetter:
		fmt.Fprintf(o.w, "=> %s (%s)\n", v.Letter, v.Phase)
	case response.AnswersResponse:
		for _, set := range v.Sets {
			o.printAnswerSet(set)
		}
		o.printTotal(v.TotalAnswers)
	case response.AnswerSet:
		o.printAnswerSet(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// printRound replays a finished round in the same form as Transcript
func (o *Output) printRound(r response.Round) {
	o.writeHint(r.Hint)
	for _, step := range r.Steps {
		o.writeStep(step)
	}
	o.writeAnswer(r.Phrase)
}

func (o *Output) printTotal(total int) {
	fmt.Fprintf(o.w, "total_answers = %d\n", total)
}

func (o *Output) printAnswerSet(set response.AnswerSet) {
	fmt.Fprintf(o.w, "%s (%d):\n", set.Category, len(set.Answers))
	for _, answer := range set.Answers {
		fmt.Fprintf(o.w, "  - %s\n", answer)
	}
}

func (o *Output) writeHint(hint string) {
	fmt.Fprintf(o.w, "Hint: %s\n\n", hint)
}

func (o *Output) writeStep(s response.Step) {
	fmt.Fprintln(o.w, s.Masked)
	fmt.Fprintf(o.w, "=> %s\n", s.Letter)
	fmt.Fprintln(o.w, hitsLine(s.Letter, s.Hits))
	fmt.Fprintln(o.w)
}

func (o *Output) writeAnswer(phrase string) {
	fmt.Fprintln(o.w, "Would you like to make a guess?")
	fmt.Fprintf(o.w, "Answer: %s\n", phrase)
	fmt.Fprintf(o.w, "\n%s\n\n", separator)
}

func hitsLine(letter string, hits int) string {
	switch hits {
	case 0:
		return fmt.Sprintf("- No %s's!", letter)
	case 1:
		return fmt.Sprintf("- 1 %s!", letter)
	default:
		return fmt.Sprintf("- %d %s's!", hits, letter)
	}
}
