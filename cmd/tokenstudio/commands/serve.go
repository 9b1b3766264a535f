package commands

import (
	"github.com/spf13/cobra"

	"github.com/tokenstudio/tokenstudio/cmd/tokenstudio/handlers"
)

// Serve returns the command that runs the web server.
func Serve() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page and launch wizard",
		Long: `Serve the Solana Token Studio landing page, the launch wizard and the
JSON API.

Configuration is read from tokenstudio.yaml when present, then from
TOKENSTUDIO_* environment variables, which take precedence.

Endpoints:
  GET  /                  landing page (?skin=midnight|aurora|mono)
  GET  /launch            launch wizard
  POST /api/v1/estimate   fee estimate for a JSON draft
  POST /api/v1/preview    preview label for a JSON draft
  POST /api/v1/simulate   simulated launch for a JSON draft
  GET  /healthz           health check
  GET  /metrics           Prometheus metrics
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Serve(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: tokenstudio.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides the configuration")

	return cmd
}
