// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text s to at most maxWidth columns, ending in an ellipsis
// when anything was cut. A non-positive maxWidth yields "".
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads plain text s with spaces to exactly width columns, truncating if longer.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Span is a half-open column range [Start, End) on one line.
type Span struct {
	Start, End int
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Spans returns the column range each styled segment occupies when the segments
// are joined with sep.
func Spans(segments []string, sep string) []Span {
	spans := make([]Span, len(segments))
	x := 0
	gap := Width(sep)
	for i, seg := range segments {
		w := Width(seg)
		spans[i] = Span{Start: x, End: x + w}
		x += w + gap
	}
	return spans
}
