// Package testutil provides helpers for testing UI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences so rendered output can be compared.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing substr, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line of the ANSI-stripped output
// containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}

// Press builds a mouse press of button at (x, y).
func Press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress}
}

// LeftClick builds a left button press at (x, y).
func LeftClick(x, y int) tea.MouseMsg {
	return Press(tea.MouseButtonLeft, x, y)
}

// RightClick builds a right button press at (x, y).
func RightClick(x, y int) tea.MouseMsg {
	return Press(tea.MouseButtonRight, x, y)
}

// Key builds a key message for a printable key or a named special key
// ("enter", "esc", "up", "down", "tab").
func Key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Drain runs cmd and, for batches, every nested command, returning all
// non-nil messages in order.
func Drain(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
