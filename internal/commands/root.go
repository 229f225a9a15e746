// Package commands provides CLI commands for headline.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diogo/headline/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd creates the root command. Without a subcommand it shows the
// interactive view, or prints the heading when stdout is not a terminal.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "headline",
		Short: "Fetch a message and show it as a heading",
		Long: `headline requests a message from a fixed local endpoint once and
shows it in a heading. Failures are written to the log file and the
heading stays empty.

Examples:
  headline                      Show the message in the terminal
  headline print                Print the heading and exit
  headline | cat                Same as print when stdout is not a terminal
  headline config               Show the effective configuration
  headline config set tui_theme nord`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "headline %s (built %s)\n", Version, BuildTime)
				return nil
			}

			if !deps.IsTerminal() {
				return runPrint(cmd, deps, flags)
			}
			return runInteractive(cmd, deps, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "Override the built-in endpoint (development)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write diagnostics of the interactive view to this file")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "TUI color theme")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log debug entries on the diagnostic channel")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewPrintCmd(deps, flags))
	cmd.AddCommand(NewConfigCmd(deps))

	return cmd
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(NewDependencies())

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, rootCmd, os.Stderr)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}

// run executes cmd and returns the process exit code. Command errors are
// printed to stderr as a styled error.
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		tui.PrintError(stderr, err)
		return 1
	}
	return 0
}

// commandContext returns the command's context, falling back to Background
// when the command runs outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
