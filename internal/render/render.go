package render

import (
	"strings"
)

// markdownEscaper escapes characters that would turn message text into markup
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
	`&`, `\&`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer for better performance and thread safety.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// Heading renders text as a single top-level heading. The text is escaped so
// it is shown literally. An empty text renders an empty line.
func Heading(text string, opts Options) (string, error) {
	text = HeadingText(text)
	if text == "" {
		return "\n", nil
	}
	return Markdown("# "+EscapeMarkdown(text), opts)
}

// HeadingText normalizes message text for a single line heading: line breaks
// become spaces and surrounding whitespace is trimmed. A whitespace-only
// message yields "".
func HeadingText(text string) string {
	return strings.TrimSpace(lineBreaks.Replace(text))
}

// EscapeMarkdown escapes markdown syntax and folds line breaks into spaces
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
