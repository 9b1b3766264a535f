package commands

import (
	"github.com/spf13/cobra"

	"github.com/tokenstudio/tokenstudio/cmd/tokenstudio/handlers"
)

// Launch returns the command that runs the wizard in the terminal.
func Launch() *cobra.Command {
	var simple bool

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Run the token launch wizard in the terminal",
		Long: `Walk through Configure, Review and Launch in the terminal.

The launch is simulated. The address printed at the end is a placeholder
and no transaction is created.

Without a terminal, or with --simple, the wizard runs as a series of
prompts instead of the full-screen interface.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Launch(cmd.Context(), simple)
		},
	}

	cmd.Flags().BoolVar(&simple, "simple", false, "Use step-by-step prompts instead of the full-screen interface")

	return cmd
}
