// Package tui provides the Bubble Tea front-end for the rasterizer.
// It handles the draw form, panel rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 4 * time.Second

// StatusExpiredMsg clears the status line if it still shows message ID.
type StatusExpiredMsg struct {
	ID int
}

// expireStatusCmd returns a command that expires status message id.
func expireStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return StatusExpiredMsg{ID: id}
	})
}
