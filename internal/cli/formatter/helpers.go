package formatter

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Wrap breaks text into lines no wider than width. Existing line breaks are
// kept; a non-positive width only splits on them.
func Wrap(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if width > 0 {
		text = ansi.Wrap(text, width, "")
	}
	return strings.Split(text, "\n")
}

// Clamp wraps text and keeps at most maxLines lines, marking the cut with an
// ellipsis on the last kept line.
func Clamp(text string, width, maxLines int) []string {
	lines := Wrap(text, width)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	kept := append([]string(nil), lines[:maxLines]...)
	last := strings.TrimRight(kept[maxLines-1], " ")
	if width > 0 && ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	kept[maxLines-1] = last + "…"
	return kept
}

// Indent prefixes every line with pad.
func Indent(lines []string, pad string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad + l)
	}
	return b.String()
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
