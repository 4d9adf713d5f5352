package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangmanbot/internal/api/request"
	"github.com/mcoot/hangmanbot/internal/api/response"
	"github.com/mcoot/hangmanbot/internal/model"
	"github.com/mcoot/hangmanbot/internal/services/mask"
)

func newMaskCmd() *cobra.Command {
	var guessedFlag string

	cmd := &cobra.Command{
		Use:   "mask <phrase>",
		Short: "Show a phrase with unguessed letters hidden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := args[0]
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if cfg.Remote() {
				var result response.Mask
				req := request.MaskRequest{Phrase: phrase, Guessed: guessedFlag}
				if err := client.Post("/api/v1/mask", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			guessed, err := model.ParseGuessedLetters(guessedFlag)
			if err != nil {
				return err
			}

			masked, hidden := mask.Obfuscate(phrase, guessed)
			out.Print(response.Mask{Masked: masked, Hidden: hidden})
			return nil
		},
	}

	cmd.Flags().StringVarP(&guessedFlag, "guessed", "g", "", "Letters guessed so far, e.g. etai")

	return cmd
}

func newNextCmd() *cobra.Command {
	var (
		guessedFlag string
		issuedFlag  int
	)

	cmd := &cobra.Command{
		Use:   "next <phrase>",
		Short: "Show the letter the selector would guess next",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := args[0]
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if issuedFlag < 0 {
				return errors.New("--issued must not be negative")
			}

			if cfg.Remote() {
				var result response.NextLetter
				req := request.NextLetterRequest{Phrase: phrase, Guessed: guessedFlag, Issued: issuedFlag}
				if err := client.Post("/api/v1/next-letter", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			guessed, err := model.ParseGuessedLetters(guessedFlag)
			if err != nil {
				return err
			}

			app, err := newLocalApp(cmd, "")
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			letter, phase, err := app.Selector.Next(phrase, guessed, issuedFlag)
			if err != nil {
				return err
			}

			out.Print(response.NextLetter{Letter: string(letter), Phase: string(phase)})
			return nil
		},
	}

	cmd.Flags().StringVarP(&guessedFlag, "guessed", "g", "", "Letters guessed so far, e.g. etai")
	cmd.Flags().IntVar(&issuedFlag, "issued", 0, "Number of frequency guesses already made")

	return cmd
}
