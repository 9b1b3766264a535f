package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// Run drives session through the wizard in the terminal. It returns the
// launch result, or nil when the wizard was closed before launching.
func Run(ctx context.Context, session *launch.Session, opts ...tea.ProgramOption) (*launch.Result, error) {
	m := NewModel(session)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if res, ok := fm.Result(); ok {
		return &res, nil
	}
	return nil, nil
}
