package answers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/storage"
)

// Service holds the answer sets a run plays through.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	sets   []model.AnswerSet
	loaded bool
}

// New creates a new answer service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "answers")),
	}
}

// LoadFromStorage loads answer sets previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	sets, err := s.storage.GetAnswerSets(ctx)
	if err != nil {
		return err
	}
	s.setSets(sets)
	return nil
}

// LoadFromFile reads a YAML mapping of category name to phrases and saves it
// to storage. Category names are kept as written so an unknown one surfaces
// when the round is played.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading answers file: %w", err)
	}

	sets, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	if err := s.LoadSets(ctx, sets); err != nil {
		return err
	}

	s.logger.Info("answers loaded",
		slog.String("path", path),
		slog.Int("categories", len(sets)),
		slog.Int("answers", countAnswers(sets)),
	)
	return nil
}

// LoadSets saves answer sets to storage and makes them current
func (s *Service) LoadSets(ctx context.Context, sets []model.AnswerSet) error {
	sorted := sortSets(sets)
	if err := s.storage.SaveAnswerSets(ctx, sorted); err != nil {
		return fmt.Errorf("saving answers: %w", err)
	}
	s.setSets(sorted)
	return nil
}

// Lookup returns the stored answer set for one category name
func (s *Service) Lookup(ctx context.Context, category string) (*model.AnswerSet, error) {
	return s.storage.GetAnswerSet(ctx, category)
}

// Parse decodes an answers document into sets ordered by category name.
func Parse(data []byte) ([]model.AnswerSet, error) {
	var doc map[string][]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	sets := make([]model.AnswerSet, 0, len(doc))
	for category, phrases := range doc {
		sets = append(sets, model.AnswerSet{Category: category, Answers: phrases})
	}
	return sortSets(sets), nil
}

// Sets returns a copy of the loaded answer sets
func (s *Service) Sets() ([]model.AnswerSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrAnswersNotLoaded
	}

	out := make([]model.AnswerSet, len(s.sets))
	for i, set := range s.sets {
		out[i] = model.AnswerSet{
			Category: set.Category,
			Answers:  append([]string(nil), set.Answers...),
		}
	}
	return out, nil
}

// IsLoaded returns whether answers have been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// AnswerCount returns the total number of phrases across all sets
func (s *Service) AnswerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countAnswers(s.sets)
}

func (s *Service) setSets(sets []model.AnswerSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets = sets
	s.loaded = true
}

func sortSets(sets []model.AnswerSet) []model.AnswerSet {
	sorted := append([]model.AnswerSet(nil), sets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Category < sorted[j].Category
	})
	return sorted
}

func countAnswers(sets []model.AnswerSet) int {
	total := 0
	for _, set := range sets {
		total += len(set.Answers)
	}
	return total
}
