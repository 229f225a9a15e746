package render

import (
	"github.com/diogo/headline/internal/config"
)

// OptionsFromConfig builds render options from user configuration.
// An unknown heading style falls back to the default.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if cfg.HeadingStyle != "" && IsHeadingStyle(cfg.HeadingStyle) {
		opts.Style = cfg.HeadingStyle
	}
	return opts
}

// OptionsFromConfigWithWidth builds options from config with a specific width.
func OptionsFromConfigWithWidth(cfg config.Config, width int) Options {
	opts := OptionsFromConfig(cfg)
	if width > 0 {
		opts.Width = width
	}
	return opts
}
