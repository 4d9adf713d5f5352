package factory

import (
	"context"
	"time"

	"github.com/mcoot/hangmanbot/internal/dependencies/mocks"
	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/storage/memory"
	"github.com/mcoot/hangmanbot/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked clock and
// round IDs. The letter search keeps the real seeded stream so rounds
// replay exactly.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, random.Seeded(random.DefaultSeed), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestAnswers loads a small answer list covering every category
func (t *TestApp) LoadTestAnswers(ctx context.Context) error {
	return t.AnswerService.LoadSets(ctx, []model.AnswerSet{
		{Category: "actors", Answers: []string{"Tom Cruise"}},
		{Category: "scientists", Answers: []string{"Albert Einstein", "Marie Curie"}},
		{Category: "fruits", Answers: []string{"Banana", "Apple", "Kiwi", "Fig"}},
	})
}
