package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hangmanbot/internal/factory"
)

// newLocalApp wires the application in-process. An empty answersPath reads
// answers from the configured storage instead of a file.
func newLocalApp(cmd *cobra.Command, answersPath string) (*factory.App, error) {
	return factory.New(cmd.Context(), cfg.FactoryConfig(answersPath, logger))
}
