// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the tokenstudio CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tokenstudio",
		Short:        "Solana Token Studio: landing page and simulated token launch wizard",
		SilenceUsage: true,
	}

	cmd.AddCommand(Serve())
	cmd.AddCommand(Launch())
	cmd.AddCommand(Estimate())
	cmd.AddCommand(Preview())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
