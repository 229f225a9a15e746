package render

import "github.com/charmbracelet/glamour/styles"

// Glamour standard styles usable for the printed heading
const (
	StyleAuto       = styles.AutoStyle
	StyleDark       = styles.DarkStyle
	StyleLight      = styles.LightStyle
	StyleNoTTY      = styles.NoTTYStyle
	StyleASCII      = styles.AsciiStyle
	StyleDracula    = styles.DraculaStyle
	StyleTokyoNight = styles.TokyoNightStyle
	StylePink       = styles.PinkStyle
)

// HeadingStyles returns the style names accepted by heading_style
func HeadingStyles() []string {
	return []string{
		StyleAuto,
		StyleDark,
		StyleLight,
		StyleNoTTY,
		StyleASCII,
		StyleDracula,
		StyleTokyoNight,
		StylePink,
	}
}

// IsHeadingStyle reports whether name is an accepted heading style
func IsHeadingStyle(name string) bool {
	for _, s := range HeadingStyles() {
		if s == name {
			return true
		}
	}
	return false
}
