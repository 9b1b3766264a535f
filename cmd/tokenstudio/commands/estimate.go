package commands

import (
	"github.com/spf13/cobra"

	"github.com/tokenstudio/tokenstudio/cmd/tokenstudio/handlers"
	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// outputFlags binds the mutually exclusive output format flags.
type outputFlags struct {
	json    bool
	yaml    bool
	compact bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&o.yaml, "yaml", false, "Output in YAML format")
	cmd.Flags().BoolVar(&o.compact, "compact", false, "Output a single line")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml", "compact")
}

func (o *outputFlags) format() handlers.OutputFormat {
	switch {
	case o.json:
		return handlers.FormatJSON
	case o.yaml:
		return handlers.FormatYAML
	case o.compact:
		return handlers.FormatCompact
	default:
		return handlers.FormatBox
	}
}

// registerDraftFlags binds the token fields shared by estimate and preview.
func registerDraftFlags(cmd *cobra.Command, opts *handlers.DraftOptions) {
	defaults := launch.DefaultDraft()
	cmd.Flags().StringVar(&opts.Name, "name", "", "Token name")
	cmd.Flags().StringVar(&opts.Symbol, "symbol", "", "Token symbol (uppercased, at most 8 characters)")
	cmd.Flags().StringVar(&opts.Supply, "supply", "", "Initial supply in whole tokens")
	cmd.Flags().IntVar(&opts.Decimals, "decimals", defaults.Decimals, "Decimals: 0, 2, 4, 6, 8 or 9")
	cmd.Flags().BoolVar(&opts.FreezeAuthority, "freeze", defaults.FreezeAuthority, "Keep the freeze authority")
	cmd.Flags().BoolVar(&opts.MintAuthority, "mint", defaults.MintAuthority, "Keep the mint authority")
	cmd.Flags().StringVar(&opts.MetadataURI, "uri", "", "Metadata URI")
}

// Estimate returns the command that prints a launch fee estimate.
func Estimate() *cobra.Command {
	var opts handlers.DraftOptions
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the launch fee for a token",
		Long: `Print the simulated launch fee for a token configuration.

The fee is a base amount plus a surcharge for each authority kept.
Use --freeze=false or --mint=false to drop an authority.
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Estimate(opts, out.format())
		},
	}

	registerDraftFlags(cmd, &opts)
	out.register(cmd)

	return cmd
}

// Preview returns the command that prints the token preview label.
func Preview() *cobra.Command {
	var opts handlers.DraftOptions
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the one-line preview for a token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Preview(opts, out.format())
		},
	}

	registerDraftFlags(cmd, &opts)
	out.register(cmd)

	return cmd
}
