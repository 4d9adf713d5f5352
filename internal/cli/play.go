package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangmanbot/internal/api/request"
	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/model"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play every phrase in the answers file",
		Long: `Play every phrase of every category, categories in name order.

Pass --answers "" to play the answers already saved in storage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(cmd, cfg.AnswersPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			sets, err := app.AnswerService.Sets()
			if errors.Is(err, model.ErrAnswersNotLoaded) {
				return fmt.Errorf("%w: pass --answers or run 'hangman answers load'", err)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			rounds, playErr := app.GameRunner.PlayAll(cmd.Context(), sets, out.Transcript())

			result := PlayResult{Rounds: make([]response.Round, 0, len(rounds))}
			for _, round := range rounds {
				result.Rounds = append(result.Rounds, response.RoundFromModel(round))
			}
			result.TotalAnswers = len(rounds)

			if playErr != nil {
				if out.IsJSON() {
					out.Print(result)
				}
				return playErr
			}
			out.Print(result)
			return nil
		},
	}
}

func newRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round <category> <phrase>",
		Short: "Play a single phrase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, phrase := args[0], args[1]
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if cfg.Remote() {
				var result response.Round
				req := request.PlayRoundRequest{Category: category, Phrase: phrase}
				if err := client.Post("/api/v1/rounds", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			app, err := newLocalApp(cmd, "")
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			round, err := app.GameRunner.PlayRound(cmd.Context(), category, phrase, out.Transcript())
			if err != nil {
				return err
			}
			if out.IsJSON() {
				out.Print(response.RoundFromModel(round))
			}
			return nil
		},
	}
}
