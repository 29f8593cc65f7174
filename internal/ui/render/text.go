// Package render provides text helpers for fixed-width terminal layout.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) and invalid UTF-8 so
// catalog text cannot break the terminal layout.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == unicode.ReplacementChar || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == unicode.ReplacementChar || (r != '\t' && unicode.IsControl(r)) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// Truncate shortens s to maxWidth display columns, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Fit truncates s if necessary and pads it to exactly width columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// FitRight is Fit with the text aligned to the right edge.
func FitRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillLeft(Truncate(s, width), width)
}

// Row joins left and right content with spaces so that the result spans
// width columns. At least one space separates the two sides.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Duration formats d as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
