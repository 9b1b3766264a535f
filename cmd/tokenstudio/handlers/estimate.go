package handlers

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/pricing"
)

// Estimate prints the fee breakdown for the draft described by opts.
func Estimate(opts DraftOptions, format OutputFormat) error {
	d, err := opts.Draft()
	if err != nil {
		return err
	}

	estimate := pricing.NewCalculator().Calculate(d)
	f := pricing.NewFormatter()

	switch format {
	case FormatBox, "":
		fmt.Print(f.Format(estimate))
	case FormatCompact:
		fmt.Println(f.FormatCompact(estimate))
	case FormatJSON:
		fmt.Println(f.FormatJSON(estimate))
	case FormatYAML:
		out, err := f.FormatYAML(estimate)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	return nil
}

// previewOutput is the serialized form printed by Preview.
type previewOutput struct {
	Preview    string       `json:"preview"`
	CanAdvance bool         `json:"can_advance"`
	FeeSOL     string       `json:"fee_sol"`
	Draft      launch.Draft `json:"draft"`
}

// Preview prints the one-line token summary and whether the draft may
// continue past the Configure step.
func Preview(opts DraftOptions, format OutputFormat) error {
	d, err := opts.Draft()
	if err != nil {
		return err
	}

	out := previewOutput{
		Preview:    launch.PreviewLabel(d),
		CanAdvance: d.Complete(),
		FeeSOL:     launch.EstimatedFee(d).String(),
		Draft:      d,
	}

	switch format {
	case FormatBox, FormatCompact, "":
		fmt.Println(out.Preview)
		if format != FormatCompact {
			if out.CanAdvance {
				fmt.Printf("Ready to continue. Estimated fee: %s SOL\n", out.FeeSOL)
			} else {
				fmt.Println("Not ready: name, symbol and a supply above zero are required.")
			}
		}
	case FormatJSON:
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
	case FormatYAML:
		b, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		fmt.Print(string(b))
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	return nil
}
