package storage

import (
	"context"

	"github.com/mcoot/hangmanbot/internal/model"
)

// Storage defines the interface for answer-list persistence
type Storage interface {
	// SaveAnswerSets replaces every stored answer set
	SaveAnswerSets(ctx context.Context, sets []model.AnswerSet) error
	// GetAnswerSets returns all answer sets ordered by category name
	GetAnswerSets(ctx context.Context) ([]model.AnswerSet, error)
	// GetAnswerSet returns the answer set for one category name
	GetAnswerSet(ctx context.Context, category string) (*model.AnswerSet, error)
}
