package redis

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Category names live in one SET; each category's answers are a LIST so
// their order survives a round trip.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveAnswerSets(ctx context.Context, sets []model.AnswerSet) error {
	previous, err := s.client.SMembers(ctx, categoriesKey()).Result()
	if err != nil {
		return err
	}

	// Replace everything in one transaction
	pipe := s.client.TxPipeline()
	for _, category := range previous {
		pipe.Del(ctx, answersKey(category))
	}
	pipe.Del(ctx, categoriesKey())

	for _, set := range sets {
		pipe.SAdd(ctx, categoriesKey(), set.Category)
		if len(set.Answers) == 0 {
			continue
		}
		members := make([]interface{}, len(set.Answers))
		for i, a := range set.Answers {
			members[i] = a
		}
		key := answersKey(set.Category)
		pipe.RPush(ctx, key, members...)
		if s.cfg.AnswersTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.AnswersTTL)
		}
	}
	if s.cfg.AnswersTTL > 0 && len(sets) > 0 {
		pipe.Expire(ctx, categoriesKey(), s.cfg.AnswersTTL)
	}
	pipe.Set(ctx, loadedKey(), "1", s.cfg.AnswersTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAnswerSets(ctx context.Context) ([]model.AnswerSet, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	categories, err := s.client.SMembers(ctx, categoriesKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(categories)

	if len(categories) == 0 {
		return []model.AnswerSet{}, nil
	}

	// Fetch every list in one round trip
	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(categories))
	for i, category := range categories {
		cmds[i] = pipe.LRange(ctx, answersKey(category), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	sets := make([]model.AnswerSet, 0, len(categories))
	for i, category := range categories {
		sets = append(sets, model.AnswerSet{
			Category: category,
			Answers:  cmds[i].Val(),
		})
	}
	return sets, nil
}

func (s *Storage) GetAnswerSet(ctx context.Context, category string) (*model.AnswerSet, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	ok, err := s.client.SIsMember(ctx, categoriesKey(), category).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrAnswerSetNotFound
	}

	answers, err := s.client.LRange(ctx, answersKey(category), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return &model.AnswerSet{Category: category, Answers: answers}, nil
}

func (s *Storage) ensureLoaded(ctx context.Context) error {
	exists, err := s.client.Exists(ctx, loadedKey()).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrAnswersNotLoaded
	}
	return nil
}
