package response

import (
	"time"

	"github.com/mcoot/hangmanbot/internal/model"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// AnswerSet represents one category's answers
type AnswerSet struct {
	Category string   `json:"category"`
	Answers  []string `json:"answers"`
}

// AnswerSetFromModel converts a model.AnswerSet
func AnswerSetFromModel(set model.AnswerSet) AnswerSet {
	answers := set.Answers
	if answers == nil {
		answers = []string{}
	}
	return AnswerSet{
		Category: set.Category,
		Answers:  answers,
	}
}

// AnswersResponse lists every loaded answer set
type AnswersResponse struct {
	Sets         []AnswerSet `json:"sets"`
	TotalAnswers int         `json:"total_answers"`
}

// AnswersFromModel converts a list of answer sets
func AnswersFromModel(sets []model.AnswerSet) AnswersResponse {
	resp := AnswersResponse{Sets: make([]AnswerSet, 0, len(sets))}
	for _, set := range sets {
		resp.Sets = append(resp.Sets, AnswerSetFromModel(set))
		resp.TotalAnswers += len(set.Answers)
	}
	return resp
}

// Mask is the response for the mask endpoint
type Mask struct {
	Masked string `json:"masked"`
	Hidden int    `json:"hidden"`
}

// NextLetter is the response for the next-letter endpoint
type NextLetter struct {
	Letter string `json:"letter"`
	Phase  string `json:"phase"`
}

// Step represents one guess within a round
type Step struct {
	Masked      string `json:"masked"`
	Letter      string `json:"letter"`
	Phase       string `json:"phase"`
	Hits        int    `json:"hits"`
	HiddenAfter int    `json:"hidden_after"`
}

// StepFromModel converts a model.Step
func StepFromModel(s model.Step) Step {
	return Step{
		Masked:      s.MaskedBefore,
		Letter:      string(s.Letter),
		Phase:       string(s.Phase),
		Hits:        s.Hits,
		HiddenAfter: s.HiddenAfter,
	}
}

// Round represents a played round
type Round struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Hint        string    `json:"hint"`
	Phrase      string    `json:"phrase"`
	Steps       []Step    `json:"steps"`
	Guessed     string    `json:"guessed"`
	FinalMasked string    `json:"final_masked"`
	FinalHidden int       `json:"final_hidden"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// RoundFromModel converts a model.Round
func RoundFromModel(r *model.Round) Round {
	steps := make([]Step, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, StepFromModel(s))
	}
	return Round{
		ID:          string(r.ID),
		Category:    r.Category.String(),
		Hint:        r.Category.Hint(),
		Phrase:      r.Phrase,
		Steps:       steps,
		Guessed:     r.Guessed.String(),
		FinalMasked: r.FinalMasked,
		FinalHidden: r.FinalHidden,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
}
