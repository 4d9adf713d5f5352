package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangmanbot/internal/model"
	redisstorage "github.com/mcoot/hangmanbot/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestAnswers(s.ctx))
}

// Test: every configured answer is played in category order
func (s *IntegrationSuite) TestPlayAllAnswers() {
	s.app.MockRandom.QueueString("r1", "r2", "r3", "r4", "r5", "r6", "r7")

	sets, err := s.app.AnswerService.Sets()
	s.Require().NoError(err)

	rounds, err := s.app.GameRunner.PlayAll(s.ctx, sets, nil)
	s.Require().NoError(err)
	s.Require().Len(rounds, 7)

	expected := []struct {
		phrase  string
		guessed string
		final   string
	}{
		{"Tom Cruise", "etaiucm", "T_m C_ui_e"},
		{"Banana", "eta", "_a_a_a"},
		{"Apple", "eta", ""},
		{"Kiwi", "etai", ""},
		{"Fig", "", "___"},
		{"Albert Einstein", "etaisrb", "A_bert Ei_stei_"},
		{"Marie Curie", "etaiuc", ""},
	}
	for i, want := range expected {
		round := rounds[i]
		s.Equal(want.phrase, round.Phrase)
		s.Equal(want.guessed, round.Guessed.String(), want.phrase)
		if want.final != "" {
			s.Equal(want.final, round.FinalMasked)
		}
		s.LessOrEqual(round.FinalHidden, 3)
	}

	s.Equal(model.RoundID("round-r1"), rounds[0].ID)
	s.Equal(model.CategoryActors, rounds[0].Category)
	s.Equal(model.CategoryFruits, rounds[1].Category)
	s.Equal(model.CategoryScientists, rounds[6].Category)
}

// Test: round timestamps come from the injected clock
func (s *IntegrationSuite) TestRoundTimestamps() {
	s.app.MockClock.Tick = time.Second

	round, err := s.app.GameRunner.PlayRound(s.ctx, "fruits", "Fig", nil)
	s.Require().NoError(err)

	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), round.StartedAt)
	s.True(round.FinishedAt.After(round.StartedAt))
}

// Test: an unknown category aborts the run
func (s *IntegrationSuite) TestUnknownCategoryAborts() {
	err := s.app.AnswerService.LoadSets(s.ctx, []model.AnswerSet{
		{Category: "actors", Answers: []string{"Tom Cruise"}},
		{Category: "planets", Answers: []string{"Mars"}},
	})
	s.Require().NoError(err)

	sets, _ := s.app.AnswerService.Sets()
	rounds, err := s.app.GameRunner.PlayAll(s.ctx, sets, nil)
	s.ErrorIs(err, model.ErrUnknownCategory)
	s.Len(rounds, 1)
}

// Test: the selector is shared with the runner
func (s *IntegrationSuite) TestSelectorMatchesReferencePicks() {
	letter, phase, err := s.app.Selector.Next("asdff", nil, 4)
	s.Require().NoError(err)
	s.Equal('a', letter)
	s.Equal(model.PhaseRandomSearch, phase)
}

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) writeAnswers(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.yml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *FactorySuite) TestNewWithMemoryStorageAndFile() {
	path := s.writeAnswers("fruits:\n  - Banana\n")

	app, err := New(s.ctx, Config{AnswersPath: path})
	s.Require().NoError(err)
	defer app.Close()

	s.True(app.AnswerService.IsLoaded())
	s.Equal(1, app.AnswerService.AnswerCount())
}

func (s *FactorySuite) TestNewWithoutAnswers() {
	app, err := New(s.ctx, Config{})
	s.Require().NoError(err)
	defer app.Close()

	s.False(app.AnswerService.IsLoaded())
}

func (s *FactorySuite) TestNewWithMissingAnswersFile() {
	_, err := New(s.ctx, Config{AnswersPath: filepath.Join(s.T().TempDir(), "missing.yml")})
	s.Error(err)
}

func (s *FactorySuite) TestNewWithInvalidStorageType() {
	_, err := New(s.ctx, Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *FactorySuite) TestNewRedisRequiresConfig() {
	_, err := New(s.ctx, Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestRedisAnswersSurviveRestart() {
	mini := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	path := s.writeAnswers("actors:\n  - Tom Cruise\nfruits:\n  - Fig\n")
	first, err := New(s.ctx, Config{AnswersPath: path, StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := New(s.ctx, Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	defer second.Close()

	sets, err := second.AnswerService.Sets()
	s.Require().NoError(err)
	s.Require().Len(sets, 2)
	s.Equal("actors", sets[0].Category)
	s.Equal([]string{"Fig"}, sets[1].Answers)
}

func (s *FactorySuite) TestCustomSeed() {
	seed := uint64(0)
	app, err := New(s.ctx, Config{Seed: &seed})
	s.Require().NoError(err)
	defer app.Close()

	round, err := app.GameRunner.PlayRound(s.ctx, "fruits", "Banana", nil)
	s.Require().NoError(err)
	s.Equal("eta", round.Guessed.String())
}
