package render

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// WrapText wraps text to width terminal cells, breaking on spaces and
// hard-splitting words that are wider than a line. Blank paragraphs are kept.
func WrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}
