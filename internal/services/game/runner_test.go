package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangmanbot/internal/dependencies/mocks"
	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/services/selector"
	"github.com/mcoot/hangmanbot/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	clock  *mocks.MockClock
	random *mocks.MockRandom
	runner *Runner
	ctx    context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	sel := selector.New(selector.NewRandomSearch(random.Seeded(random.DefaultSeed)), logger)
	s.runner = NewRunner(sel, s.clock, s.random, logger)
	s.ctx = context.Background()
}

func (s *RunnerSuite) letters(round *model.Round) string {
	var out []rune
	for _, step := range round.Steps {
		out = append(out, step.Letter)
	}
	return string(out)
}

// PlayRound tests

func (s *RunnerSuite) TestPlayRoundTomCruise() {
	s.random.QueueString("abcdefghijkl")

	round, err := s.runner.PlayRound(s.ctx, "actors", "Tom Cruise", nil)
	s.Require().NoError(err)

	s.Equal(model.RoundID("round-abcdefghijkl"), round.ID)
	s.Equal(model.CategoryActors, round.Category)
	s.Equal("etaiucm", s.letters(round))
	s.Equal("etaiucm", round.Guessed.String())
	s.Equal("T_m C_ui_e", round.FinalMasked)
	s.Equal(3, round.FinalHidden)

	expected := []model.Step{
		{MaskedBefore: "___ ______", Letter: 'e', Phase: model.PhaseFrequency, Hits: 1, HiddenAfter: 8},
		{MaskedBefore: "___ _____e", Letter: 't', Phase: model.PhaseFrequency, Hits: 1, HiddenAfter: 7},
		{MaskedBefore: "T__ _____e", Letter: 'a', Phase: model.PhaseFrequency, Hits: 0, HiddenAfter: 7},
		{MaskedBefore: "T__ _____e", Letter: 'i', Phase: model.PhaseFrequency, Hits: 1, HiddenAfter: 6},
		{MaskedBefore: "T__ ___i_e", Letter: 'u', Phase: model.PhaseRandomSearch, Hits: 1, HiddenAfter: 5},
		{MaskedBefore: "T__ __ui_e", Letter: 'c', Phase: model.PhaseRandomSearch, Hits: 1, HiddenAfter: 4},
		{MaskedBefore: "T__ C_ui_e", Letter: 'm', Phase: model.PhaseRandomSearch, Hits: 1, HiddenAfter: 3},
	}
	s.Equal(expected, round.Steps)
}

func (s *RunnerSuite) TestPlayRoundAlbertEinstein() {
	round, err := s.runner.PlayRound(s.ctx, "scientists", "Albert Einstein", nil)
	s.Require().NoError(err)

	s.Equal("etaisrb", s.letters(round))
	s.Equal("A_bert Ei_stei_", round.FinalMasked)
	s.Equal(3, round.FinalHidden)
	s.Equal(3, round.Steps[0].Hits) // e appears three times
}

func (s *RunnerSuite) TestPlayRoundStopsInsideFrequencyPhase() {
	round, err := s.runner.PlayRound(s.ctx, "fruits", "Banana", nil)
	s.Require().NoError(err)

	s.Equal("eta", s.letters(round))
	s.Equal([]int{0, 0, 3}, []int{round.Steps[0].Hits, round.Steps[1].Hits, round.Steps[2].Hits})
	s.Equal("_a_a_a", round.FinalMasked)
}

func (s *RunnerSuite) TestPlayRoundShortPhraseNeedsNoGuesses() {
	round, err := s.runner.PlayRound(s.ctx, "fruits", "Fig", nil)
	s.Require().NoError(err)

	s.Empty(round.Steps)
	s.Equal("___", round.FinalMasked)
	s.Equal(3, round.FinalHidden)
}

func (s *RunnerSuite) TestPlayRoundPunctuationIsNotCounted() {
	// Four letters plus punctuation: the frequency phase runs until i hits twice
	round, err := s.runner.PlayRound(s.ctx, "fruits", "Kiwi!!!", nil)
	s.Require().NoError(err)

	s.Equal("etai", s.letters(round))
	s.Equal("_i_i!!!", round.FinalMasked)
	s.Equal(2, round.FinalHidden)
}

func (s *RunnerSuite) TestPlayRoundHitsAddUp() {
	phrase := "Marie Curie"
	round, err := s.runner.PlayRound(s.ctx, "scientists", phrase, nil)
	s.Require().NoError(err)

	total := 0
	for _, step := range round.Steps {
		total += step.Hits
	}
	s.Equal(10-round.FinalHidden, total)
	s.LessOrEqual(round.FinalHidden, RevealThreshold)
}

func (s *RunnerSuite) TestPlayRoundUnknownCategory() {
	_, err := s.runner.PlayRound(s.ctx, "vegetables", "Carrot", nil)
	s.ErrorIs(err, model.ErrUnknownCategory)
}

func (s *RunnerSuite) TestPlayRoundEmitsEvents() {
	var events []model.Event
	round, err := s.runner.PlayRound(s.ctx, "actors", "Tom Cruise", func(e model.Event) {
		events = append(events, e)
	})
	s.Require().NoError(err)

	s.Require().Len(events, len(round.Steps)+2)
	s.Equal(model.EventRoundStarted, events[0].Type)
	started, ok := events[0].Payload.(model.RoundStartedPayload)
	s.Require().True(ok)
	s.Equal("This person is an actor.", started.Hint)
	s.Equal(9, started.HiddenCount)

	for i, step := range round.Steps {
		e := events[i+1]
		s.Equal(model.EventLetterGuessed, e.Type)
		s.Equal(round.ID, e.RoundID)
		s.Equal(model.LetterGuessedPayload{Step: step}, e.Payload)
	}

	last := events[len(events)-1]
	s.Equal(model.EventRoundFinished, last.Type)
	s.Equal(model.RoundFinishedPayload{Phrase: "Tom Cruise", FinalMasked: "T_m C_ui_e", Guesses: 7}, last.Payload)
}

func (s *RunnerSuite) TestPlayRoundTimestamps() {
	s.clock.Tick = time.Second
	round, err := s.runner.PlayRound(s.ctx, "fruits", "Fig", nil)
	s.Require().NoError(err)
	s.True(round.FinishedAt.After(round.StartedAt))
}

func (s *RunnerSuite) TestPlayRoundIsReproducible() {
	first, err := s.runner.PlayRound(s.ctx, "scientists", "Isaac Newton", nil)
	s.Require().NoError(err)
	second, err := s.runner.PlayRound(s.ctx, "scientists", "Isaac Newton", nil)
	s.Require().NoError(err)
	s.Equal(first.Steps, second.Steps)
}

// PlayAll tests

func (s *RunnerSuite) TestPlayAll() {
	sets := []model.AnswerSet{
		{Category: "actors", Answers: []string{"Tom Cruise"}},
		{Category: "fruits", Answers: []string{"Banana", "Fig"}},
	}

	rounds, err := s.runner.PlayAll(s.ctx, sets, nil)
	s.Require().NoError(err)
	s.Require().Len(rounds, 3)
	s.Equal("Tom Cruise", rounds[0].Phrase)
	s.Equal("Banana", rounds[1].Phrase)
	s.Equal("Fig", rounds[2].Phrase)
}

func (s *RunnerSuite) TestPlayAllStopsAtUnknownCategory() {
	sets := []model.AnswerSet{
		{Category: "actors", Answers: []string{"Tom Cruise"}},
		{Category: "planets", Answers: []string{"Neptune"}},
		{Category: "fruits", Answers: []string{"Banana"}},
	}

	rounds, err := s.runner.PlayAll(s.ctx, sets, nil)
	s.ErrorIs(err, model.ErrUnknownCategory)
	s.Len(rounds, 1)
}

func (s *RunnerSuite) TestPlayAllHonoursCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	rounds, err := s.runner.PlayAll(ctx, []model.AnswerSet{{Category: "fruits", Answers: []string{"Banana"}}}, nil)
	s.ErrorIs(err, context.Canceled)
	s.Empty(rounds)
}

func (s *RunnerSuite) TestPlayAllEmpty() {
	rounds, err := s.runner.PlayAll(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Empty(rounds)
}
