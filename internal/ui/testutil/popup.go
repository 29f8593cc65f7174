package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/ui/popup"
)

// PopupHarness wraps a popup for testing, providing helpers to simulate
// user interactions and inspect state.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness creates a test harness for any popup.Popup implementation.
// It initializes the popup and captures any init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the underlying popup for type assertion when needed.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends a key built with Key.
func (h *PopupHarness) SendKey(k string) tea.Cmd {
	return h.SendMsg(Key(k))
}

// SendEnter sends the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendKey("enter")
}

// SendEscape sends the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendKey("esc")
}

// SendDown sends the down arrow key.
func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendKey("down")
}

// SendUp sends the up arrow key.
func (h *PopupHarness) SendUp() tea.Cmd {
	return h.SendKey("up")
}

// Commands returns all non-nil commands collected since creation.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// AssertViewContains returns an error message if view doesn't contain substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if view contains substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
