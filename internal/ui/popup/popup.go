// Package popup renders popups and places them over a base view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/encore/internal/ui/styles"
)

// Dialog is a centered popup with title, content, and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// Render returns the dialog box, bordered, not yet placed.
func (d Dialog) Render(maxWidth int) string {
	s := styles.T().S()

	lines := make([]string, 0, 4)
	if d.Title != "" {
		lines = append(lines, s.Title.Render(d.Title), "")
	}
	lines = append(lines, d.Content)
	if d.Footer != "" {
		lines = append(lines, "", s.Subtle.Render(d.Footer))
	}
	content := strings.Join(lines, "\n")

	width := min(maxLineWidth(content), max(maxWidth-4, 1))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Width(width + 2).
		Render(content)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// BoxSize returns the display width and height of a rendered box.
func BoxSize(box string) (width, height int) {
	return maxLineWidth(box), strings.Count(box, "\n") + 1
}

// Place returns the top-left cell for a box of size w×h requested at
// (x, y), shifted so the box stays on a screenW×screenH screen. A box larger
// than the screen is pinned to the top-left corner.
func Place(x, y, w, h, screenW, screenH int) (px, py int) {
	px = max(min(x, screenW-w), 0)
	py = max(min(y, screenH-h), 0)
	return px, py
}

// Center returns the top-left cell that centers a w×h box on the screen.
func Center(w, h, screenW, screenH int) (x, y int) {
	return max((screenW-w)/2, 0), max((screenH-h)/2, 0)
}

// ComposeAt overlays box on base with its top-left corner at (x, y).
// base lines are padded to width; overlay lines past the base are dropped.
// ANSI sequences in both layers are preserved.
func ComposeAt(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		lineWidth := ansi.StringWidth(line)

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Truncate(under, x, "")
		// A wide rune straddling x is dropped by Truncate; pad the gap.
		if pw := ansi.StringWidth(prefix); pw < x {
			prefix += strings.Repeat(" ", x-pw)
		}

		result := prefix + line
		end := x + lineWidth
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if sw := ansi.StringWidth(suffix); sw < width-end {
				suffix = strings.Repeat(" ", width-end-sw) + suffix
			}
			result += suffix
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}

// Overlay renders a Dialog centered over base.
func Overlay(base string, d Dialog, width, height int) string {
	box := d.Render(width)
	w, h := BoxSize(box)
	x, y := Center(w, h, width, height)
	return ComposeAt(base, box, x, y, width)
}
