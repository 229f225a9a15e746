package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/headline/internal/config"
	"github.com/diogo/headline/internal/render"
)

var (
	configKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	configValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	configDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// NewConfigCmd creates a new config command
func NewConfigCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  `Show the configuration read from ~/.headline/config.json and the built-in endpoint.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg, path)
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a configuration value",
		Long: fmt.Sprintf(`Update a configuration value and save it.

Keys: %s
Themes: %s
Heading styles: %s`,
			strings.Join(config.Keys(), ", "),
			strings.Join(render.TUIThemeNames(), ", "),
			strings.Join(render.HeadingStyles(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validateConfigValue(key, value); err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
			return nil
		},
	}
}

// validateConfigValue rejects theme and style names that do not exist
func validateConfigValue(key, value string) error {
	switch key {
	case "tui_theme":
		if _, ok := render.GetTUIThemeByName(value); !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", value, strings.Join(render.TUIThemeNames(), ", "))
		}
	case "heading_style":
		if !render.IsHeadingStyle(value) {
			return fmt.Errorf("unknown heading style %q (available: %s)", value, strings.Join(render.HeadingStyles(), ", "))
		}
	}
	return nil
}

// printConfig writes the configuration as aligned key/value lines
func printConfig(w io.Writer, cfg config.Config, path string) {
	rows := [][2]string{
		{"endpoint", config.DefaultEndpoint},
		{"tui_theme", cfg.TUITheme},
		{"heading_style", cfg.HeadingStyle},
		{"copy_to_clipboard", fmt.Sprintf("%t", cfg.CopyToClipboard)},
		{"verbose", fmt.Sprintf("%t", cfg.Verbose)},
		{"log_file", cfg.LogFile},
	}

	for _, row := range rows {
		key := configKeyStyle.Render(fmt.Sprintf("%-18s", row[0]))
		fmt.Fprintf(w, "%s %s\n", key, configValueStyle.Render(row[1]))
	}
	fmt.Fprintln(w, configDimStyle.Render("\nconfig file: "+path))
}
