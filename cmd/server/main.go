package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/hangmanbot/internal/api"
	"github.com/mcoot/hangmanbot/internal/factory"
	redisstorage "github.com/mcoot/hangmanbot/internal/storage/redis"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		AnswersPath: os.Getenv("HANGMAN_ANSWERS"),
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if seedStr := os.Getenv("HANGMAN_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			logger.Error("invalid HANGMAN_SEED", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.Seed = &seed
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	if !app.AnswerService.IsLoaded() {
		logger.Warn("no answers loaded; set HANGMAN_ANSWERS or load them into storage")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		AnswerService: app.AnswerService,
		Selector:      app.Selector,
		GameRunner:    app.GameRunner,
	})

	// Create server
	serverConfig, err := api.ServerConfigFromEnv()
	if err != nil {
		logger.Error("invalid server config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
