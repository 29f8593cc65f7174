// Package action defines how UI components report what the user did.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// ActionType returns a stable identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// Components return it from commands; the app routes on Source.
type Msg struct {
	Source string // "songlist", "songmenu", "profilemenu", "cards"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command emitting a for source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
