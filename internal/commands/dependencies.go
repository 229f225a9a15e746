package commands

import (
	"context"
	"os"

	"github.com/atotto/clipboard"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/diogo/headline/internal/api"
	"github.com/diogo/headline/internal/tui"
)

// ViewRunner runs a DisplayView until it exits.
type ViewRunner interface {
	RunView(ctx context.Context, view *tui.DisplayView) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Fetcher overrides the HTTP client built from the endpoint.
	Fetcher api.MessageFetcher

	// TUI runs the interactive view.
	TUI ViewRunner

	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error

	// IsTerminal reports whether stdout is a terminal.
	IsTerminal func() bool

	// TerminalWidth reports the width of stdout, or 0 if unknown.
	TerminalWidth func() int
}

// DefaultTUI is the production implementation of ViewRunner.
type DefaultTUI struct{}

func (d *DefaultTUI) RunView(ctx context.Context, view *tui.DisplayView) error {
	return tui.Run(ctx, view)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:       &DefaultTUI{},
		Clipboard: clipboard.WriteAll,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		TerminalWidth: func() int {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 0
			}
			return width
		},
	}
}

// fetcher returns the injected fetcher or builds a client for endpoint
func (d *Dependencies) fetcher(endpoint string, log logr.Logger) (api.MessageFetcher, error) {
	if d.Fetcher != nil {
		return d.Fetcher, nil
	}
	return api.NewClient(endpoint, api.WithLogger(log))
}
