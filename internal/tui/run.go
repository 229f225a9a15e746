package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the view in the alternate screen until the user quits or ctx is
// canceled. The view is unmounted when the program exits.
func Run(ctx context.Context, view *DisplayView, opts ...tea.ProgramOption) error {
	defer view.Unmount()

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	p := tea.NewProgram(view, opts...)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Resolve mounts the view without a terminal, waits for its single request
// and returns the heading text. The view is unmounted before returning.
func Resolve(view *DisplayView) string {
	defer view.Unmount()

	fetch := view.Mount()
	if fetch == nil {
		return view.Heading()
	}
	view.Update(fetch())
	return view.Heading()
}
