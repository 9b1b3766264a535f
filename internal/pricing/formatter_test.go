package pricing

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

func sampleEstimate() *Estimate {
	return NewCalculator().Calculate(launch.Draft{
		Name:            "Photon",
		Symbol:          "PHO",
		Decimals:        9,
		Supply:          "1000000",
		FreezeAuthority: true,
		MintAuthority:   true,
	})
}

func TestFormatter_Format(t *testing.T) {
	output := NewFormatter().Format(sampleEstimate())

	checks := []string{
		"Fee Estimate",
		"Photon (PHO) • 9 dec • 1000000 supply",
		"Base fee",
		"0.0020",
		"Freeze authority",
		"0.0004",
		"Mint authority",
		"0.0003",
		"Estimated total",
		"0.0027",
		"2700000",
		"Simulated estimate",
	}

	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("Output missing %q", check)
		}
	}
}

func TestFormatter_FormatBoxWidth(t *testing.T) {
	output := NewFormatter().Format(sampleEstimate())

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "│") && !strings.HasPrefix(line, "┌") &&
			!strings.HasPrefix(line, "├") && !strings.HasPrefix(line, "└") {
			continue
		}
		if n := utf8.RuneCountInString(line); n != 61 {
			t.Errorf("line %q has width %d, want 61", line, n)
		}
	}
}

func TestFormatter_FormatCompact(t *testing.T) {
	output := NewFormatter().FormatCompact(sampleEstimate())

	if len(output) > 200 {
		t.Errorf("FormatCompact output too long: %d chars", len(output))
	}
	if !strings.Contains(output, "0.0027 SOL") {
		t.Error("FormatCompact missing total")
	}
}

func TestFormatter_FormatJSON(t *testing.T) {
	output := NewFormatter().FormatJSON(sampleEstimate())

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("FormatJSON output is not valid JSON: %v", err)
	}
	if decoded["total_sol"] != "0.0027" {
		t.Errorf("total_sol = %v", decoded["total_sol"])
	}
	if decoded["total_lamports"] != float64(2_700_000) {
		t.Errorf("total_lamports = %v", decoded["total_lamports"])
	}
	items, ok := decoded["items"].([]any)
	if !ok || len(items) != 3 {
		t.Errorf("items = %v", decoded["items"])
	}
}

func TestFormatter_FormatYAML(t *testing.T) {
	output, err := NewFormatter().FormatYAML(sampleEstimate())
	if err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}

	for _, check := range []string{"total_sol: \"0.0027\"", "total_lamports: 2700000", "symbol: PHO"} {
		if !strings.Contains(output, check) {
			t.Errorf("YAML missing %q:\n%s", check, output)
		}
	}
}

func TestBoxLine_Truncates(t *testing.T) {
	line := boxLine(strings.Repeat("é", 100), 20)
	if n := utf8.RuneCountInString(strings.TrimSuffix(line, "\n")); n != 20 {
		t.Errorf("width = %d, want 20", n)
	}
}
