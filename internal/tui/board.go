package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"bloom/internal/engine"
)

// RunBoard starts the interactive garden board. It blocks until the
// user quits.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
