package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangmanbot/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Remote() {
				return errors.New("health needs --server or HANGMAN_SERVER")
			}

			var result response.Health
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
