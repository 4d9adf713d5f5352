package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/hangmanbot/internal/dependencies/clock"
	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/services/mask"
	"github.com/mcoot/hangmanbot/internal/services/selector"
)

const (
	// RevealThreshold is the hidden-letter count at which a round stops guessing
	RevealThreshold = 3
	// RoundIDAlphabet is the character set for generating round IDs
	RoundIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// RoundIDLength is the length of generated round IDs
	RoundIDLength = 12
)

// Runner plays phrases by alternating the masking engine and the letter selector
type Runner struct {
	selector *selector.Selector
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(sel *selector.Selector, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Runner {
	return &Runner{
		selector: sel,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "game-runner")),
	}
}

// PlayRound guesses letters of phrase until at most RevealThreshold letters
// remain hidden. An unknown category or a failed letter search ends the
// round with an error. observe may be nil.
func (r *Runner) PlayRound(ctx context.Context, categoryName, phrase string, observe model.Observer) (*model.Round, error) {
	category, err := model.ParseCategory(categoryName)
	if err != nil {
		r.logger.Error("unknown category", slog.String("category", categoryName))
		return nil, err
	}
	if observe == nil {
		observe = func(model.Event) {}
	}

	round := &model.Round{
		ID:        model.RoundID("round-" + r.random.String(RoundIDLength, RoundIDAlphabet)),
		Category:  category,
		Phrase:    phrase,
		StartedAt: r.clock.Now(),
	}

	hidden := mask.CountLetters(phrase)
	observe(r.event(model.EventRoundStarted, round, model.RoundStartedPayload{
		Hint:        category.Hint(),
		HiddenCount: hidden,
	}))

	issued := 0
	for hidden > RevealThreshold {
		before, _ := mask.Obfuscate(phrase, round.Guessed)

		letter, phase, err := r.selector.Next(phrase, round.Guessed, issued)
		if err != nil {
			return nil, err
		}
		if phase == model.PhaseFrequency {
			issued++
		}
		if err := round.Guessed.Add(letter); err != nil {
			return nil, err
		}

		_, after := mask.Obfuscate(phrase, round.Guessed)
		step := model.Step{
			MaskedBefore: before,
			Letter:       letter,
			Phase:        phase,
			Hits:         hidden - after,
			HiddenAfter:  after,
		}
		round.Steps = append(round.Steps, step)
		observe(r.event(model.EventLetterGuessed, round, model.LetterGuessedPayload{Step: step}))

		hidden = after
	}

	round.FinalMasked, round.FinalHidden = mask.Obfuscate(phrase, round.Guessed)
	round.FinishedAt = r.clock.Now()

	observe(r.event(model.EventRoundFinished, round, model.RoundFinishedPayload{
		Phrase:      phrase,
		FinalMasked: round.FinalMasked,
		Guesses:     len(round.Steps),
	}))

	r.logger.Info("round finished",
		slog.String("round_id", string(round.ID)),
		slog.String("summary", round.Summary()),
		slog.Int("guesses", len(round.Steps)),
	)

	return round, nil
}

// PlayAll plays every answer of every set in order. The first error stops
// the run; rounds finished before it are returned alongside the error.
func (r *Runner) PlayAll(ctx context.Context, sets []model.AnswerSet, observe model.Observer) ([]*model.Round, error) {
	var rounds []*model.Round
	for _, set := range sets {
		for _, answer := range set.Answers {
			if err := ctx.Err(); err != nil {
				return rounds, err
			}
			round, err := r.PlayRound(ctx, set.Category, answer, observe)
			if err != nil {
				return rounds, err
			}
			rounds = append(rounds, round)
		}
	}

	r.logger.Info("all rounds finished", slog.Int("total_answers", len(rounds)))
	return rounds, nil
}

func (r *Runner) event(eventType model.EventType, round *model.Round, payload any) model.Event {
	return model.Event{
		Type:      eventType,
		Timestamp: r.clock.Now(),
		RoundID:   round.ID,
		Category:  round.Category,
		Payload:   payload,
	}
}
