// Package tui provides the terminal view that displays the fetched message.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/headline/internal/errors"
	"github.com/diogo/headline/internal/render"
)

// Color variables (updated from theme)
var (
	colorHeading lipgloss.Color
	colorAccent  lipgloss.Color
	colorBorder  lipgloss.Color
	colorTextDim lipgloss.Color
)

// Fixed error color, shared by all themes
var colorError = lipgloss.Color("#f7768e")

// Style variables (rebuilt when theme changes)
var (
	// Heading: bold, underlined, the only place the message appears
	headingStyle lipgloss.Style

	// Status line under the heading
	statusStyle lipgloss.Style

	// Spinner while the request is in flight
	loadingStyle lipgloss.Style

	// Transient notices ("copied")
	noticeStyle lipgloss.Style

	// Separator between key hints
	separatorStyle lipgloss.Style

	// Frame around the whole view
	frameStyle lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorHeading = theme.Heading
	colorAccent = theme.Accent
	colorBorder = theme.Border
	colorTextDim = theme.TextDim

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	headingStyle = lipgloss.NewStyle().
		Foreground(colorHeading).
		Bold(true).
		Underline(true)

	statusStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	noticeStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Italic(true)

	separatorStyle = lipgloss.NewStyle().
		Foreground(colorBorder)

	frameStyle = lipgloss.NewStyle().
		Padding(1, 2)
}

// FormatError returns a styled error message with the request details
// recorded on the error, if any.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if endpoint := errors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if body := errors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	}

	return sb.String()
}

// PrintError prints a styled error message to w.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, FormatError(err))
}
