package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangmanbot/internal/api/response"
)

func newAnswersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Answer list commands",
	}

	cmd.AddCommand(newAnswersLoadCmd())
	cmd.AddCommand(newAnswersListCmd())
	cmd.AddCommand(newAnswersShowCmd())

	return cmd
}

func newAnswersLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Save an answers file to storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			sets, err := app.AnswerService.Sets()
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("Loaded %d answers in %d categories", app.AnswerService.AnswerCount(), len(sets)))
			return nil
		},
	}
}

func newAnswersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the answers in storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if cfg.Remote() {
				var result response.AnswersResponse
				if err := client.Get("/api/v1/answers", &result); err != nil {
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

			sets, err := app.AnswerService.Sets()
			if err != nil {
				return err
			}

			out.Print(response.AnswersFromModel(sets))
			return nil
		},
	}
}

func newAnswersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <category>",
		Short: "Show the stored answers for one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if cfg.Remote() {
				var result response.AnswerSet
				if err := client.Get(fmt.Sprintf("/api/v1/answers/%s", category), &result); err != nil {
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

			set, err := app.AnswerService.Lookup(cmd.Context(), category)
			if err != nil {
				return err
			}

			out.Print(response.AnswerSetFromModel(*set))
			return nil
		},
	}
}
