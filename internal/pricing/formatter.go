package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"sigs.k8s.io/yaml"
)

// Formatter formats fee estimates for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns a detailed, formatted fee estimate for terminal display.
func (f *Formatter) Format(e *Estimate) string {
	var sb strings.Builder

	width := 61

	// Header
	sb.WriteString(boxTop(width))
	sb.WriteString(boxLine("Solana Token Studio Fee Estimate", width))
	sb.WriteString(boxLine(e.Preview, width))
	sb.WriteString(boxSep(width))

	// Line items
	sb.WriteString(boxEmpty(width))
	for _, item := range e.Items {
		line := fmt.Sprintf("%-28s %12s SOL", item.Description, item.Amount)
		sb.WriteString(boxLine(line, width))
	}

	// Total
	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-28s %12s SOL", "Estimated total", e.Total), width))
	sb.WriteString(boxLine(fmt.Sprintf("%-28s %12d", "Lamports", uint64(e.Total)), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxBottom(width))

	// Footer
	sb.WriteString("\n  Simulated estimate. No transaction is sent.\n")

	return sb.String()
}

// FormatCompact returns a single-line fee summary.
func (f *Formatter) FormatCompact(e *Estimate) string {
	return fmt.Sprintf("%s: %s SOL (%d items)", e.Preview, e.Total, len(e.Items))
}

// FormatJSON returns the estimate as JSON.
func (f *Formatter) FormatJSON(e *Estimate) string {
	data, _ := json.MarshalIndent(e.Summary(), "", "  ")
	return string(data)
}

// FormatYAML returns the estimate as YAML using the JSON field names.
func (f *Formatter) FormatYAML(e *Estimate) (string, error) {
	data, err := yaml.Marshal(e.Summary())
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return string(data), nil
}

// Helper functions for box drawing

func boxTop(width int) string {
	return fmt.Sprintf("┌%s┐\n", strings.Repeat("─", width-2))
}

func boxBottom(width int) string {
	return fmt.Sprintf("└%s┘\n", strings.Repeat("─", width-2))
}

func boxSep(width int) string {
	return fmt.Sprintf("├%s┤\n", strings.Repeat("─", width-2))
}

func boxDash(width int) string {
	return fmt.Sprintf("│ %s │\n", strings.Repeat("─", width-4))
}

func boxLine(text string, width int) string {
	padding := width - 4 - utf8.RuneCountInString(text)
	if padding < 0 {
		padding = 0
		text = string([]rune(text)[:width-4])
	}
	return fmt.Sprintf("│ %s%s │\n", text, strings.Repeat(" ", padding))
}

func boxEmpty(width int) string {
	return fmt.Sprintf("│%s│\n", strings.Repeat(" ", width-2))
}
