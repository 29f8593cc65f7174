// internal/app/keys.go
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// appKeys are the global bindings handled before the page sees a key.
type appKeys struct {
	Quit    key.Binding
	Back    key.Binding
	Help    key.Binding
	Profile key.Binding
	Home    key.Binding
}

var keys = appKeys{
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "go back")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show keys")),
	Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile menu")),
	Home:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
}

func (k appKeys) help() []string {
	var out []string
	for _, b := range []key.Binding{k.Quit, k.Back, k.Home, k.Profile, k.Help} {
		h := b.Help()
		out = append(out, fmt.Sprintf("%-11s %s", h.Key, h.Desc))
	}
	return out
}
