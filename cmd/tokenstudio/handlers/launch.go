package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/launch/prompt"
	"github.com/tokenstudio/tokenstudio/internal/ui/tui"
)

// Factory function variables for launch - can be replaced in tests.
var (
	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runTUI runs the full-screen wizard.
	runTUI = func(ctx context.Context, s *launch.Session) (*launch.Result, error) {
		return tui.Run(ctx, s)
	}

	// runPrompts runs the form-based wizard.
	runPrompts = func(ctx context.Context, s *launch.Session) (*launch.Result, error) {
		return prompt.New().Run(ctx, s)
	}
)

// Launch runs the wizard in the terminal. The full-screen UI is used when
// stdout is a terminal and simple is false.
func Launch(ctx context.Context, simple bool) error {
	session := launch.NewSession()

	run := runTUI
	if simple || !isInteractiveTTY() {
		run = runPrompts
	}

	res, err := run(ctx, session)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Println("Wizard closed. Nothing was launched.")
		return nil
	}

	printLaunchResult(res)
	return nil
}

// printLaunchResult prints the simulated launch summary.
func printLaunchResult(res *launch.Result) {
	fmt.Println()
	fmt.Println("Token launched (simulated)")
	fmt.Println("--------------------------")
	fmt.Printf("  Token:    %s\n", res.Preview)
	fmt.Printf("  Address:  %s\n", res.Address)
	fmt.Printf("  Fee:      %s SOL\n", res.FeeSOL)
	if res.Draft.MetadataURI != "" {
		fmt.Printf("  Metadata: %s\n", res.Draft.MetadataURI)
	}
	fmt.Println()
	fmt.Println("The address is a placeholder generated for preview. It is not an on-chain account.")
}
