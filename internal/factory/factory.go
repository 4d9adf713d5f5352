package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/hangmanbot/internal/dependencies/clock"
	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/services/answers"
	"github.com/mcoot/hangmanbot/internal/services/game"
	"github.com/mcoot/hangmanbot/internal/services/selector"
	"github.com/mcoot/hangmanbot/internal/storage"
	"github.com/mcoot/hangmanbot/internal/storage/memory"
	redisstorage "github.com/mcoot/hangmanbot/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AnswerService *answers.Service
	Selector      *selector.Selector
	GameRunner    *game.Runner

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// AnswersPath is the path to the answers YAML file (optional)
	// If empty, answers are loaded from storage when available
	AnswersPath string
	// Seed seeds the letter search stream (optional)
	// If nil, random.DefaultSeed is used
	Seed *uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	seed := random.DefaultSeed
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	app := newWithDependencies(store, clock.New(), random.New(), random.Seeded(seed), logger)
	app.closer = closer

	if err := app.loadAnswers(ctx, cfg.AnswersPath); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, streams random.Factory, logger *slog.Logger) *App {
	answerService := answers.New(store, logger)
	sel := selector.New(selector.NewRandomSearch(streams), logger)
	runner := game.NewRunner(sel, clk, rnd, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		AnswerService: answerService,
		Selector:      sel,
		GameRunner:    runner,
	}
}

// loadAnswers reads the answers file when one is configured, otherwise it
// picks up whatever an earlier run saved to storage.
func (a *App) loadAnswers(ctx context.Context, path string) error {
	if path != "" {
		return a.AnswerService.LoadFromFile(ctx, path)
	}
	err := a.AnswerService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrAnswersNotLoaded) {
		return nil
	}
	return err
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
