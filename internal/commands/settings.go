package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/headline/internal/config"
)

// globalFlags are the persistent flags shared by all commands
type globalFlags struct {
	endpoint string
	logFile  string
	theme    string
	verbose  bool
}

// settings is the effective configuration of one command run
type settings struct {
	cfg      config.Config
	endpoint string
}

// loadSettings merges the config file with command line flags.
// A broken config file is reported on stderr and defaults are used.
func loadSettings(cmd *cobra.Command, flags *globalFlags) settings {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}

	s := settings{
		cfg:      cfg,
		endpoint: config.DefaultEndpoint,
	}

	if flags.endpoint != "" {
		s.endpoint = flags.endpoint
	}
	if flags.logFile != "" {
		s.cfg.LogFile = flags.logFile
	}
	if flags.theme != "" {
		s.cfg.TUITheme = flags.theme
	}
	if flags.verbose {
		s.cfg.Verbose = true
	}

	return s
}
