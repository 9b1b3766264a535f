// Package main is the entry point for the tokenstudio CLI.
//
// tokenstudio serves the Solana Token Studio landing page and its launch
// wizard, and offers the same wizard in the terminal. Launches are
// simulated: no transaction is ever built or sent.
//
// Commands: serve, launch, estimate, preview, version.
//
// For detailed usage information, run:
//
//	tokenstudio --help
package main

import (
	"fmt"
	"os"

	"github.com/tokenstudio/tokenstudio/cmd/tokenstudio/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
