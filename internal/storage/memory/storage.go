package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	answers map[string][]string
	loaded  bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		answers: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveAnswerSets(ctx context.Context, sets []model.AnswerSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = make(map[string][]string, len(sets))
	for _, set := range sets {
		s.answers[set.Category] = append([]string(nil), set.Answers...)
	}
	s.loaded = true
	return nil
}

func (s *Storage) GetAnswerSets(ctx context.Context) ([]model.AnswerSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrAnswersNotLoaded
	}

	categories := make([]string, 0, len(s.answers))
	for category := range s.answers {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sets := make([]model.AnswerSet, 0, len(categories))
	for _, category := range categories {
		sets = append(sets, model.AnswerSet{
			Category: category,
			Answers:  append([]string(nil), s.answers[category]...),
		})
	}
	return sets, nil
}

func (s *Storage) GetAnswerSet(ctx context.Context, category string) (*model.AnswerSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrAnswersNotLoaded
	}
	answers, ok := s.answers[category]
	if !ok {
		return nil, model.ErrAnswerSetNotFound
	}
	return &model.AnswerSet{
		Category: category,
		Answers:  append([]string(nil), answers...),
	}, nil
}
