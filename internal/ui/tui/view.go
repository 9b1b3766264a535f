package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/tokenstudio/tokenstudio/internal/launch"
	"github.com/tokenstudio/tokenstudio/internal/site"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderSteps(&b, m)

	switch m.session.Step() {
	case launch.StepConfigure:
		renderConfigure(&b, m)
	case launch.StepReview:
		renderReview(&b, m)
	case launch.StepLaunch:
		renderLaunch(&b, m)
	}

	renderFooter(&b, m)
	return b.String()
}

func renderHeader(b *strings.Builder, _ Model) {
	b.WriteString(titleStyle.Render(site.Brand))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Launch a token"))
	b.WriteString("\n")
}

func renderSteps(b *strings.Builder, m Model) {
	current := m.session.Step()
	parts := make([]string, 0, len(launch.Steps))
	for _, s := range launch.Steps {
		label := fmt.Sprintf("%02d %s", int(s), s)
		var style styleFunc
		switch {
		case s == current:
			style = sf(activeStyle)
		case s < current || m.session.Launched():
			style = sf(readyStyle)
		default:
			style = sf(dimStyle)
		}
		parts = append(parts, style(label))
	}
	b.WriteString(sectionStyle.Render("  " + strings.Join(parts, dimStyle.Render("  ·  "))))
	b.WriteString("\n\n")
}

func renderConfigure(b *strings.Builder, m Model) {
	d := m.session.Draft()

	for r := row(0); r < rowCount; r++ {
		marker := " "
		label := sf(dimStyle)
		if r == m.focus {
			marker = cursor
			label = sf(activeStyle)
		}

		var value string
		switch r {
		case rowDecimals:
			value = fmt.Sprintf("‹ %d ›", d.Decimals)
		case rowFreeze:
			value = toggleMark(d.FreezeAuthority)
		case rowMint:
			value = toggleMark(d.MintAuthority)
		default:
			value = m.inputs[textRows[r].slot].View()
		}
		fmt.Fprintf(b, "  %s %s %s\n", marker, label(fmt.Sprintf("%-18s", rowLabels[r])), value)
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render("Preview"), launch.PreviewLabel(d))

	if m.blocked {
		b.WriteString(warningStyle.Render("  Fill in name, symbol and a supply above zero to continue."))
		b.WriteString("\n")
	}
}

func renderReview(b *strings.Builder, m Model) {
	d := m.session.Draft()
	lines := []string{
		summaryLine("Token", launch.PreviewLabel(d)),
		summaryLine("Freeze authority", enabled(d.FreezeAuthority)),
		summaryLine("Mint authority", enabled(d.MintAuthority)),
	}
	if d.MetadataURI != "" {
		lines = append(lines, summaryLine("Metadata URI", d.MetadataURI))
	}
	lines = append(lines, summaryLine("Estimated fee", launch.EstimatedFee(d).String()+" SOL"))

	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Estimate only. No transaction is created."))
	b.WriteString("\n")
}

func renderLaunch(b *strings.Builder, m Model) {
	res, ok := m.session.Result()
	if !ok {
		d := m.session.Draft()
		b.WriteString(boxStyle.Render(strings.Join([]string{
			summaryLine("Token", launch.PreviewLabel(d)),
			summaryLine("Estimated fee", launch.EstimatedFee(d).String()+" SOL"),
		}, "\n")))
		b.WriteString("\n")
		return
	}

	b.WriteString(readyStyle.Render("  Launched (simulated)"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(strings.Join([]string{
		summaryLine("Token", res.Preview),
		summaryLine("Simulated address", addressStyle.Render(res.Address)),
		summaryLine("Estimated fee", res.FeeSOL+" SOL"),
	}, "\n")))
	b.WriteString("\n")
	b.WriteString(failedStyle.Render("  This address is a placeholder generated for preview. It is not an on-chain account."))
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	var bindings []key.Binding
	switch m.session.Step() {
	case launch.StepConfigure:
		bindings = append(bindings, keys.Next, keys.Prev)
		switch m.focus {
		case rowDecimals:
			bindings = append(bindings, keys.Left, keys.Right)
		case rowFreeze, rowMint:
			bindings = append(bindings, keys.Toggle)
		}
		bindings = append(bindings, keys.Confirm)
	case launch.StepReview:
		bindings = append(bindings, keys.Back, withHelp(keys.Confirm, "proceed"))
	case launch.StepLaunch:
		if m.session.Launched() {
			bindings = append(bindings, keys.Another, withHelp(keys.Confirm, "close"))
		} else {
			bindings = append(bindings, keys.Back, withHelp(keys.Confirm, "launch"))
		}
	}
	bindings = append(bindings, keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	b.WriteString(footerStyle.Render("  " + strings.Join(parts, "  •  ")))
	b.WriteString("\n")
}

func withHelp(k key.Binding, desc string) key.Binding {
	k.SetHelp(k.Help().Key, desc)
	return k
}

func summaryLine(label, value string) string {
	return fmt.Sprintf("%s %s", dimStyle.Render(fmt.Sprintf("%-18s", label)), value)
}

func toggleMark(on bool) string {
	if on {
		return readyStyle.Render(checkMark)
	}
	return dimStyle.Render(emptyMark)
}

func enabled(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}
