package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want FormAction
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, FormActionNext},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, FormActionNext},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, FormActionPrev},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, FormActionPrev},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, FormActionSubmit},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, FormActionDraw},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, FormActionSnapshot},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, FormActionHistory},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, FormActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, FormActionQuit},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, FormActionNone},
		{"q is text", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, FormActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, want 8", total)
	}
}
