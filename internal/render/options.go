// Package render provides heading rendering and color themes for terminal output.
package render

// Options configures the heading renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style is a glamour standard style name: "dark", "light", "notty", ...
	Style string
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width: 80,
		Style: StyleDark,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}
