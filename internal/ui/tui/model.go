package tui

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// row is a focusable line of the Configure step.
type row int

const (
	rowName row = iota
	rowSymbol
	rowSupply
	rowDecimals
	rowFreeze
	rowMint
	rowMetadataURI
	rowCount
)

var rowLabels = [rowCount]string{
	rowName:        "Name",
	rowSymbol:      "Symbol",
	rowSupply:      "Supply",
	rowDecimals:    "Decimals",
	rowFreeze:      "Freeze authority",
	rowMint:        "Mint authority",
	rowMetadataURI: "Metadata URI",
}

// textRows maps the rows edited through a text input to their draft field
// and input slot.
var textRows = map[row]struct {
	field launch.Field
	slot  int
}{
	rowName:        {launch.FieldName, 0},
	rowSymbol:      {launch.FieldSymbol, 1},
	rowSupply:      {launch.FieldSupply, 2},
	rowMetadataURI: {launch.FieldMetadataURI, 3},
}

// Model is the Bubble Tea model for the launch wizard.
type Model struct {
	session *launch.Session
	inputs  [4]textinput.Model
	focus   row
	blocked bool
	closed  bool
	width   int
}

// NewModel creates a wizard model driving session.
func NewModel(session *launch.Session) Model {
	m := Model{session: session}

	placeholders := [4]string{"Photon", "PHO", "1000000", "https://…/metadata.json"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 0
		m.inputs[i] = ti
	}
	m.inputs[textRows[rowSymbol].slot].CharLimit = launch.MaxSymbolLength

	m.syncInputs()
	m.setFocus(rowName)
	return m
}

// Session returns the session the model drives.
func (m Model) Session() *launch.Session { return m.session }

// Result returns the launch result once the session has launched.
func (m Model) Result() (launch.Result, bool) { return m.session.Result() }

// Closed reports whether the user closed the wizard.
func (m Model) Closed() bool { return m.closed }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.closed = true
			return m, tea.Quit
		}
		switch m.session.Step() {
		case launch.StepConfigure:
			return m.updateConfigure(msg)
		case launch.StepReview:
			return m.updateReview(msg), nil
		case launch.StepLaunch:
			return m.updateLaunch(msg)
		}
	}

	return m, nil
}

func (m Model) updateConfigure(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		if m.session.Advance() {
			m.blocked = false
			m.blurInputs()
		} else {
			m.blocked = true
		}
		return m, nil
	case key.Matches(msg, keys.Next):
		return m, m.setFocus((m.focus + 1) % rowCount)
	case key.Matches(msg, keys.Prev):
		return m, m.setFocus((m.focus + rowCount - 1) % rowCount)
	}

	d := m.session.Draft()
	switch m.focus {
	case rowDecimals:
		switch {
		case key.Matches(msg, keys.Left):
			m.session.UpdateField(launch.FieldDecimals, strconv.Itoa(stepDecimals(d.Decimals, -1)))
		case key.Matches(msg, keys.Right):
			m.session.UpdateField(launch.FieldDecimals, strconv.Itoa(stepDecimals(d.Decimals, 1)))
		}
		return m, nil
	case rowFreeze:
		if key.Matches(msg, keys.Toggle) {
			m.session.UpdateField(launch.FieldFreezeAuthority, strconv.FormatBool(!d.FreezeAuthority))
		}
		return m, nil
	case rowMint:
		if key.Matches(msg, keys.Toggle) {
			m.session.UpdateField(launch.FieldMintAuthority, strconv.FormatBool(!d.MintAuthority))
		}
		return m, nil
	}

	tr, ok := textRows[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[tr.slot], cmd = m.inputs[tr.slot].Update(msg)

	// The session owns the transform; the input shows its result.
	before := m.inputs[tr.slot].Value()
	m.session.UpdateField(tr.field, before)
	if after := fieldValue(m.session.Draft(), tr.field); after != before {
		m.inputs[tr.slot].SetValue(after)
	}
	m.blocked = false
	return m, cmd
}

func (m Model) updateReview(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, keys.Confirm):
		m.session.Advance()
	case key.Matches(msg, keys.Back):
		if m.session.Back() {
			m.setFocus(m.focus)
		}
	}
	return m
}

func (m Model) updateLaunch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Launched() {
		switch {
		case key.Matches(msg, keys.Another):
			m.session.Reset()
			m.syncInputs()
			return m, m.setFocus(rowName)
		case key.Matches(msg, keys.Confirm):
			m.closed = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Confirm):
		m.session.Launch()
	case key.Matches(msg, keys.Back):
		m.session.Back()
	}
	return m, nil
}

// setFocus moves the cursor to r and focuses its text input, if any.
func (m *Model) setFocus(r row) tea.Cmd {
	m.focus = r
	m.blurInputs()
	if tr, ok := textRows[r]; ok {
		return m.inputs[tr.slot].Focus()
	}
	return nil
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) syncInputs() {
	d := m.session.Draft()
	for _, tr := range textRows {
		m.inputs[tr.slot].SetValue(fieldValue(d, tr.field))
	}
}

func fieldValue(d launch.Draft, f launch.Field) string {
	switch f {
	case launch.FieldName:
		return d.Name
	case launch.FieldSymbol:
		return d.Symbol
	case launch.FieldSupply:
		return d.Supply
	case launch.FieldMetadataURI:
		return d.MetadataURI
	}
	return ""
}

// stepDecimals moves delta places through DecimalOptions, stopping at either end.
func stepDecimals(current, delta int) int {
	opts := launch.DecimalOptions
	i := slices.Index(opts, current)
	if i < 0 {
		return launch.DefaultDecimals
	}
	i = min(max(i+delta, 0), len(opts)-1)
	return opts[i]
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
