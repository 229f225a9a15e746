package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/headline/internal/logging"
	"github.com/diogo/headline/internal/render"
	"github.com/diogo/headline/internal/tui"
)

// NewPrintCmd creates the print command
func NewPrintCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the heading and exit",
		Long: `Mount the view once without a terminal UI, wait for its single request
and print the heading. On failure the heading is empty, the failure is
logged to stderr and the exit status is still 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, deps, flags)
		},
	}
}

// runPrint resolves the view headlessly and writes the rendered heading to stdout
func runPrint(cmd *cobra.Command, deps *Dependencies, flags *globalFlags) error {
	s := loadSettings(cmd, flags)
	log := logging.New(cmd.ErrOrStderr(), logging.Verbosity(s.cfg.Verbose))

	fetcher, err := deps.fetcher(s.endpoint, log)
	if err != nil {
		return err
	}

	view := tui.NewDisplayView(fetcher,
		tui.WithLogger(log),
		tui.WithContext(commandContext(cmd)),
		tui.WithEndpoint(s.endpoint),
	)
	text := tui.Resolve(view)

	opts := render.OptionsFromConfigWithWidth(s.cfg, deps.TerminalWidth())
	if !deps.IsTerminal() {
		opts = opts.WithStyle(render.StyleNoTTY)
	}

	out, err := render.Heading(text, opts)
	if err != nil {
		return fmt.Errorf("failed to render heading: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if s.cfg.CopyToClipboard && text != "" {
		if err := deps.Clipboard(text); err != nil {
			log.Error(err, "clipboard copy failed")
		}
	}

	return nil
}
