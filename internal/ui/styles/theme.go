// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // Green accent: focused items, buttons
	Secondary lipgloss.Color // Gradient end for titles

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color
	BgPopup  lipgloss.Color // Context menu background

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base         lipgloss.Style
	Muted        lipgloss.Style
	Subtle       lipgloss.Style
	Title        lipgloss.Style
	Cursor       lipgloss.Style
	Button       lipgloss.Style // Card action, unfocused
	ButtonFocus  lipgloss.Style // Card action, focused
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuBox      lipgloss.Style // Border around context menus
	Error        lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#1db954"),
	Secondary: lipgloss.Color("#7dd3fc"),

	FgBase:   lipgloss.Color("#e0e0e0"),
	FgMuted:  lipgloss.Color("#9a9a9a"),
	FgSubtle: lipgloss.Color("#5e5e5e"),

	BgBase:   lipgloss.Color("#121212"),
	BgCursor: lipgloss.Color("#2a2a2a"),
	BgPopup:  lipgloss.Color("#282828"),

	Border:      lipgloss.Color("#5e5e5e"),
	BorderFocus: lipgloss.Color("#1db954"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Button: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Underline(true),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),
		MenuItem: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgPopup),
		MenuSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.BgCursor).
			Bold(true),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			BorderBackground(t.BgPopup).
			Background(t.BgPopup),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
