package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the draw form.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Draw      key.Binding
	Snapshot  key.Binding
	History   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Draw, k.Snapshot, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Submit, k.Draw},
		{k.Snapshot, k.History, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Draw: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "draw"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "snapshot"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FormAction is a form-level action derived from input.
type FormAction int

const (
	FormActionNone FormAction = iota
	FormActionNext
	FormActionPrev
	FormActionSubmit
	FormActionDraw
	FormActionSnapshot
	FormActionHistory
	FormActionBack
	FormActionQuit
)

// Action translates a key to a form action. Keys without a binding are
// FormActionNone and go to the focused input.
func (k KeyMap) Action(msg tea.KeyMsg) FormAction {
	switch {
	case key.Matches(msg, k.Quit):
		return FormActionQuit
	case key.Matches(msg, k.NextField):
		return FormActionNext
	case key.Matches(msg, k.PrevField):
		return FormActionPrev
	case key.Matches(msg, k.Submit):
		return FormActionSubmit
	case key.Matches(msg, k.Draw):
		return FormActionDraw
	case key.Matches(msg, k.Snapshot):
		return FormActionSnapshot
	case key.Matches(msg, k.History):
		return FormActionHistory
	case key.Matches(msg, k.Back):
		return FormActionBack
	}
	return FormActionNone
}
