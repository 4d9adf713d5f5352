package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Automated hangman guesser",
		Long: `hangman plays hangman against itself.

For every phrase in the answers file it guesses the most frequent English
letters first, then searches the phrase's own letters with a seeded random
stream until at most three letters remain hidden.

Commands run locally by default. Set --server to send them to a running
hangman API server instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = cfg.Logger()

			if cfg.Remote() {
				client = NewClient(cfg.ServerURL)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.AnswersPath, "answers", "a", cfg.AnswersPath, "Answers YAML file (env: HANGMAN_ANSWERS)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the letter search (env: HANGMAN_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: STORAGE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API server URL (env: HANGMAN_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newRoundCmd())
	rootCmd.AddCommand(newMaskCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newAnswersCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		NewOutput(rootCmd.OutOrStdout(), cfg.Output).PrintError(err)
		os.Exit(1)
	}
}
