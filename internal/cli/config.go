package cli

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/hangmanbot/internal/dependencies/random"
	"github.com/mcoot/hangmanbot/internal/factory"
	redisstorage "github.com/mcoot/hangmanbot/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	AnswersPath string
	Seed        uint64
	StorageType string
	RedisURL    string
	ServerURL   string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		AnswersPath: getEnvOrDefault("HANGMAN_ANSWERS", "config.yml"),
		Seed:        getSeedOrDefault("HANGMAN_SEED", random.DefaultSeed),
		StorageType: getEnvOrDefault("STORAGE_TYPE", factory.StorageTypeMemory),
		RedisURL:    getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		ServerURL:   os.Getenv("HANGMAN_SERVER"),
		Output:      "text",
		Verbose:     false,
	}
}

// Remote reports whether commands should go through the API server
func (c *Config) Remote() bool {
	return c.ServerURL != ""
}

// Logger builds the CLI logger. Logs go to stderr so they never mix with
// command output.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig builds the application config. answersPath may be empty to
// use whatever is already in storage.
func (c *Config) FactoryConfig(answersPath string, logger *slog.Logger) factory.Config {
	seed := c.Seed
	cfg := factory.Config{
		AnswersPath: answersPath,
		Seed:        &seed,
		Logger:      logger,
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getSeedOrDefault(key string, defaultVal uint64) uint64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	seed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return seed
}
