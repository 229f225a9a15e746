package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the interactive view
type TUITheme struct {
	Name        string
	Description string

	Heading lipgloss.Color // heading text
	Accent  lipgloss.Color // spinner and key hints
	Border  lipgloss.Color
	TextDim lipgloss.Color // status line
}

// Built-in TUI themes
var (
	// TokyoNightTheme is the default dark theme based on Tokyo Night color scheme
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",
		Heading:     lipgloss.Color("#c0caf5"),
		Accent:      lipgloss.Color("#7aa2f7"),
		Border:      lipgloss.Color("#414868"),
		TextDim:     lipgloss.Color("#565f89"),
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha palette
	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",
		Heading:     lipgloss.Color("#cdd6f4"),
		Accent:      lipgloss.Color("#89b4fa"),
		Border:      lipgloss.Color("#45475a"),
		TextDim:     lipgloss.Color("#6c7086"),
	}

	// NordTheme is based on the Nord color palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",
		Heading:     lipgloss.Color("#eceff4"),
		Accent:      lipgloss.Color("#88c0d0"),
		Border:      lipgloss.Color("#4c566a"),
		TextDim:     lipgloss.Color("#7b88a1"),
	}

	// DraculaTheme is based on the Dracula color palette
	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",
		Heading:     lipgloss.Color("#f8f8f2"),
		Accent:      lipgloss.Color("#ff79c6"),
		Border:      lipgloss.Color("#6272a4"),
		TextDim:     lipgloss.Color("#6272a4"),
	}
)

var (
	themeMu         sync.RWMutex
	currentTUITheme = TokyoNightTheme
)

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTUITheme = theme
	themeMu.Unlock()
	return true
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		TokyoNightTheme,
		CatppuccinMochaTheme,
		NordTheme,
		DraculaTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
