package commands

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/diogo/headline/internal/config"
	"github.com/diogo/headline/internal/logging"
	"github.com/diogo/headline/internal/render"
	"github.com/diogo/headline/internal/tui"
)

// runInteractive shows the view until the user quits. Diagnostics go to the
// log file because the view owns the terminal.
func runInteractive(cmd *cobra.Command, deps *Dependencies, flags *globalFlags) error {
	s := loadSettings(cmd, flags)

	if !render.SetTUITheme(s.cfg.TUITheme) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown theme %q, using %s\n",
			s.cfg.TUITheme, render.GetTUITheme().Name)
	}
	tui.UpdateTheme()

	log, closer := openLog(cmd.ErrOrStderr(), s.cfg)
	if closer != nil {
		defer closer.Close()
	}

	fetcher, err := deps.fetcher(s.endpoint, log)
	if err != nil {
		return err
	}

	view := tui.NewDisplayView(fetcher,
		tui.WithLogger(log),
		tui.WithContext(commandContext(cmd)),
		tui.WithClipboard(deps.Clipboard),
		tui.WithEndpoint(s.endpoint),
	)

	return deps.TUI.RunView(commandContext(cmd), view)
}

// openLog opens the configured log file. If that fails the warning goes to
// stderr and diagnostics are dropped.
func openLog(stderr io.Writer, cfg config.Config) (logr.Logger, io.Closer) {
	path, err := config.GetLogFile(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (diagnostics disabled)\n", err)
		return logging.Discard(), nil
	}

	log, closer, err := logging.OpenFile(path, logging.Verbosity(cfg.Verbose))
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (diagnostics disabled)\n", err)
		return logging.Discard(), nil
	}
	return log, closer
}
