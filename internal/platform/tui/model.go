package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raster/internal/config"
	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/render"
	"github.com/vovakirdan/tui-raster/internal/storage"
)

// Form fields, in focus order.
const (
	fieldSize = iota
	fieldX0
	fieldY0
	fieldX1
	fieldY1
	fieldRadius
	fieldCount
)

var fieldLabels = [fieldCount]string{"Size", "X0", "Y0", "X1", "Y1", "R"}

// Model is the Bubble Tea model for the draw screen: a six-field form
// above four panels (Linear, DDA, Bresenham, circle).
type Model struct {
	cfg    config.Config
	store  *storage.Store
	source string

	theme  Theme
	style  render.Style
	keys   KeyMap
	help   help.Model
	inputs []textinput.Model
	focus  int

	panels []draw.Panel
	result *draw.Result // last successful draw, nil after a regenerate

	status    string
	statusErr bool
	statusID  int

	history     HistoryModel
	showHistory bool

	snapshotDir string
	width       int
	height      int
	quitting    bool
}

// NewModel creates the draw screen. store may be nil; source tags the
// draws saved to it.
func NewModel(cfg config.Config, store *storage.Store, source string) Model {
	req := cfg.InitialRequest()
	in := draw.InputFromRequest(req)
	values := [fieldCount]string{in.GridSize, in.X0, in.Y0, in.X1, in.Y1, in.Radius}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4
		ti.Width = 4
		ti.SetValue(values[i])
		inputs[i] = ti
	}
	inputs[fieldSize].Focus()

	snapshotDir := "~/.raster/snapshots"
	if expanded, err := config.ExpandHome(snapshotDir); err == nil {
		snapshotDir = expanded
	}

	return Model{
		cfg:    cfg,
		store:  store,
		source: source,
		theme:  ThemeByName(cfg.Render.Theme),
		style: render.Style{
			Marked: cfg.Render.Marked,
			Empty:  cfg.Render.Empty,
		},
		keys:        DefaultKeyMap(),
		help:        help.New(),
		inputs:      inputs,
		panels:      draw.Blank(req.GridSize, draw.ModeAll),
		snapshotDir: snapshotDir,
	}
}

// WithSnapshotDir returns a copy of the model writing snapshots to dir.
func (m Model) WithSnapshotDir(dir string) Model {
	m.snapshotDir = dir
	return m
}

// WithSize returns a copy of the model laid out for a terminal of the given size.
func (m Model) WithSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.WithSize(msg.Width, msg.Height)
		if m.showHistory {
			m.history = m.history.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case StatusExpiredMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHistory {
			return m.updateHistory(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleKey processes keyboard input on the form.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case FormActionQuit:
		m.quitting = true
		return m, tea.Quit
	case FormActionNext:
		return m.focusField((m.focus + 1) % fieldCount)
	case FormActionPrev:
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case FormActionSubmit:
		if m.focus == fieldSize {
			return m.regenerate()
		}
		return m.drawAll()
	case FormActionDraw:
		return m.drawAll()
	case FormActionSnapshot:
		return m.snapshot()
	case FormActionHistory:
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.showHistory = true
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// updateHistory forwards keys to the history view and handles leaving it.
func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.Action(msg) == FormActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	if rec := m.history.Chosen(); rec != nil {
		m.showHistory = false
		m.setInputs(draw.InputFromRequest(rec.Request()))
		return m.drawAll()
	}
	if m.history.Done() {
		m.showHistory = false
	}
	return m, cmd
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[m.focus].Focus()
}

// input returns the raw form text.
func (m Model) input() draw.Input {
	return draw.Input{
		GridSize: m.inputs[fieldSize].Value(),
		X0:       m.inputs[fieldX0].Value(),
		Y0:       m.inputs[fieldY0].Value(),
		X1:       m.inputs[fieldX1].Value(),
		Y1:       m.inputs[fieldY1].Value(),
		Radius:   m.inputs[fieldRadius].Value(),
	}
}

func (m *Model) setInputs(in draw.Input) {
	values := [fieldCount]string{in.GridSize, in.X0, in.Y0, in.X1, in.Y1, in.Radius}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

// regenerate replaces the panels with empty grids of the typed size.
func (m Model) regenerate() (tea.Model, tea.Cmd) {
	size, err := draw.ParseGridSize(m.inputs[fieldSize].Value())
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.panels = draw.Blank(size, draw.ModeAll)
	m.result = nil
	return m.setStatus(fmt.Sprintf("grid regenerated: %dx%d", size, size), false)
}

// drawAll validates the form and draws all four panels.
func (m Model) drawAll() (tea.Model, tea.Cmd) {
	req, err := draw.ParseInput(m.input(), draw.ModeAll)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	res, err := draw.Execute(req, m.cfg.Options())
	if err != nil {
		return m.setStatus(err.Error(), true)
	}

	m.panels = res.Panels
	m.result = &res

	if m.store != nil {
		//nolint:errcheck // Best-effort save, the draw is shown regardless
		m.store.SaveDraw(storage.RecordFromResult(res, m.source))
	}

	return m.setStatus(fmt.Sprintf("drew %v -> %v, r=%d on %dx%d",
		req.From, req.To, req.Radius, req.GridSize, req.GridSize), false)
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	return m, expireStatusCmd(m.statusID)
}

// snapshot writes the current panels as text and one PNG per panel.
func (m Model) snapshot() (tea.Model, tea.Cmd) {
	path, err := m.saveSnapshot(time.Now())
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m.setStatus("snapshot saved to "+path, false)
}

// saveSnapshot writes the snapshot files and returns the text file path.
func (m Model) saveSnapshot(now time.Time) (string, error) {
	if m.result == nil {
		return "", errors.New("nothing drawn yet")
	}
	if err := os.MkdirAll(m.snapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	base := filepath.Join(m.snapshotDir, "raster_"+now.Format("20060102_150405"))
	text := render.Panels(m.panels, render.Style{Marked: m.style.Marked, Empty: m.style.Empty, Axes: true}, 0)
	if err := os.WriteFile(base+".txt", []byte(text+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	opts := render.DefaultPNGOptions()
	opts.CellPixels = m.cfg.Render.CellPixels
	for _, p := range m.panels {
		if err := writePNG(fmt.Sprintf("%s_%s.png", base, p.Mode), p, opts); err != nil {
			return "", err
		}
	}
	return base + ".txt", nil
}

func writePNG(path string, p draw.Panel, opts render.PNGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := render.PNG(f, p.Grid, opts); err != nil {
		return fmt.Errorf("snapshot %s: %w", p.Mode, err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}
	return m.renderScreen()
}

// Panels returns the panels currently on screen.
func (m Model) Panels() []draw.Panel {
	return m.panels
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.Config, store *storage.Store, width, height int) error {
	model := NewModel(cfg, store, storage.SourceTUI).WithSize(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
