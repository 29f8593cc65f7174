package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color blend from one color to
// another, one grapheme cluster at a time. Colors must be "#rrggbb"; any
// other form falls back to a flat render in from.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	flat := lipgloss.NewStyle().Foreground(from).Bold(bold)

	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) < 2 {
		return flat.Render(text)
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		return flat.Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the blend perceptually even.
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(bold).
			Render(cluster))
	}
	return b.String()
}

// TitleGradient renders an application title with the theme gradient.
func (t *Theme) TitleGradient(text string) string {
	return Gradient(text, t.Primary, t.Secondary, true)
}
