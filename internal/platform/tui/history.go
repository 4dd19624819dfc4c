package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raster/internal/storage"
)

// maxHistory is the number of draws loaded into the table.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Replay, k.Back}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "redraw"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// HistoryModel shows recent draws in a table. It runs inside Model rather
// than as its own program.
type HistoryModel struct {
	store   *storage.Store
	records []storage.DrawRecord
	loadErr error
	table   table.Model
	help    help.Model
	keys    HistoryKeyMap
	width   int
	height  int
	chosen  *storage.DrawRecord
	done    bool
}

// NewHistoryModel creates the history view and loads recent draws.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with the history columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "When", Width: 12},
		{Title: "Mode", Width: 9},
		{Title: "Size", Width: 5},
		{Title: "From", Width: 8},
		{Title: "To", Width: 8},
		{Title: "R", Width: 3},
		{Title: "Lin", Width: 4},
		{Title: "DDA", Width: 4},
		{Title: "Bres", Width: 4},
		{Title: "Circ", Width: 4},
		{Title: "Source", Width: 14},
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads recent draws from the store.
func (m *HistoryModel) load() {
	m.records = nil
	m.loadErr = nil
	if m.store != nil {
		m.records, m.loadErr = m.store.RecentDraws(maxHistory)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current records.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Format("Jan 02 15:04"),
			string(r.Mode),
			fmt.Sprintf("%d", r.GridSize),
			fmt.Sprintf("(%d,%d)", r.X0, r.Y0),
			fmt.Sprintf("(%d,%d)", r.X1, r.Y1),
			fmt.Sprintf("%d", r.Radius),
			fmt.Sprintf("%d", r.MarkedLinear),
			fmt.Sprintf("%d", r.MarkedDDA),
			fmt.Sprintf("%d", r.MarkedBresenham),
			fmt.Sprintf("%d", r.MarkedCircle),
			r.Source,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Resize lays the table out for a new terminal size.
func (m HistoryModel) Resize(width, height int) HistoryModel {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
	m.help.Width = width
	return m
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.records) {
				rec := m.records[i]
				m.chosen = &rec
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Chosen returns the record picked for redrawing, if any.
func (m HistoryModel) Chosen() *storage.DrawRecord {
	return m.chosen
}

// Done reports whether the user left the history view.
func (m HistoryModel) Done() bool {
	return m.done
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("DRAW HISTORY", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.records) == 0:
		return emptyStyle.Render("No draws recorded yet.\nPress ctrl+d on the form to draw!")
	}
	return m.table.View()
}
