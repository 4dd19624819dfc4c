package draw

import (
	"fmt"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/grid"
	"github.com/vovakirdan/tui-raster/internal/raster"
)

// Panel is one rasterized grid together with what produced it.
type Panel struct {
	Mode  Mode
	Title string
	Grid  *grid.Grid
	Stats raster.PlotStats
}

// Result holds the panels produced for a request, in display order.
type Result struct {
	Request Request
	Panels  []Panel
}

// Panel returns the panel for a single-algorithm mode, if present.
func (r Result) Panel(mode Mode) (Panel, bool) {
	for _, p := range r.Panels {
		if p.Mode == mode {
			return p, true
		}
	}
	return Panel{}, false
}

// MarkedCounts returns the number of marked cells per panel mode.
func (r Result) MarkedCounts() map[Mode]int {
	counts := make(map[Mode]int, len(r.Panels))
	for _, p := range r.Panels {
		counts[p.Mode] = p.Grid.MarkedCount()
	}
	return counts
}

// lineModes maps the single-line modes to their algorithm.
var lineModes = map[Mode]raster.Algorithm{
	ModeLinear:    raster.AlgorithmLinear,
	ModeDDA:       raster.AlgorithmDDA,
	ModeBresenham: raster.AlgorithmBresenham,
}

// panelModes expands a mode into the panels it draws.
func panelModes(mode Mode) []Mode {
	if mode == ModeAll {
		return []Mode{ModeLinear, ModeDDA, ModeBresenham, ModeCircle}
	}
	return []Mode{mode}
}

// Execute validates req and runs the selected algorithms. Every panel gets
// its own freshly allocated grid.
func Execute(req Request, opts raster.Options) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{Request: req}
	for _, mode := range panelModes(req.Mode) {
		result.Panels = append(result.Panels, runPanel(req, mode, opts))
	}
	return result, nil
}

// Blank returns empty panels for mode, as shown right after the grid is
// regenerated and before anything is drawn.
func Blank(size int, mode Mode) []Panel {
	modes := panelModes(mode)
	panels := make([]Panel, 0, len(modes))
	for _, m := range modes {
		panels = append(panels, Panel{Mode: m, Title: panelTitle(m), Grid: raster.ConfigureGrid(size)})
	}
	return panels
}

func runPanel(req Request, mode Mode, opts raster.Options) Panel {
	g := raster.ConfigureGrid(req.GridSize)
	var stats raster.PlotStats

	if mode == ModeCircle {
		stats = raster.RasterizeCircle(req.Center(), req.Radius, g)
	} else {
		stats = raster.RasterizeLineWith(lineModes[mode], opts, req.From, req.To, g)
	}

	return Panel{
		Mode:  mode,
		Title: panelTitle(mode),
		Grid:  g,
		Stats: stats,
	}
}

func panelTitle(mode Mode) string {
	if mode == ModeCircle {
		return "Bresenham Circle"
	}
	if a, ok := lineModes[mode]; ok {
		return a.Title()
	}
	return string(mode)
}

// Comparison describes how a line algorithm's output differs from the
// Bresenham reference for the same segment.
type Comparison struct {
	Algorithm raster.Algorithm
	Marked    int
	Extra     []core.Point // cells marked here but not by Bresenham
	Missing   []core.Point // Bresenham cells not marked here
}

// Exact reports whether the output matches the reference cell for cell.
func (c Comparison) Exact() bool {
	return len(c.Extra) == 0 && len(c.Missing) == 0
}

// Compare rasterizes the request's segment with every line algorithm and
// diffs each against Bresenham.
func Compare(req Request, opts raster.Options) ([]Comparison, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sets := make(map[raster.Algorithm]raster.CellSet)
	for _, a := range raster.Algorithms() {
		r, err := raster.New(a, opts)
		if err != nil {
			return nil, err
		}
		set := raster.NewCellSet()
		r.Rasterize(req.From, req.To, raster.NewPlotter(req.GridSize, set))
		sets[a] = set
	}

	reference := sets[raster.AlgorithmBresenham]
	comparisons := make([]Comparison, 0, len(sets))
	for _, a := range raster.Algorithms() {
		set := sets[a]
		comparisons = append(comparisons, Comparison{
			Algorithm: a,
			Marked:    set.Len(),
			Extra:     set.Diff(reference),
			Missing:   reference.Diff(set),
		})
	}
	return comparisons, nil
}

// Step is one Mark call issued by an algorithm.
type Step struct {
	Point    core.Point
	InBounds bool
}

// Trace runs a single-algorithm mode and returns every mark call in order,
// including the ones the plotter dropped.
func Trace(req Request, opts raster.Options) ([]Step, raster.PlotStats, error) {
	if req.Mode == ModeAll {
		return nil, raster.PlotStats{}, fmt.Errorf("%w: trace needs a single algorithm", ErrUnknownMode)
	}
	if err := req.Validate(); err != nil {
		return nil, raster.PlotStats{}, err
	}

	g := raster.ConfigureGrid(req.GridSize)
	plotter := raster.NewPlotter(g.Size(), g)
	rec := &raster.Recorder{}
	sink := raster.SinkFunc(func(x, y int) {
		rec.Mark(x, y)
		plotter.Mark(x, y)
	})

	if req.Mode == ModeCircle {
		raster.MidpointCircle{}.Rasterize(req.Center(), req.Radius, sink)
	} else {
		r, err := raster.New(lineModes[req.Mode], opts)
		if err != nil {
			return nil, raster.PlotStats{}, err
		}
		r.Rasterize(req.From, req.To, sink)
	}

	steps := make([]Step, len(rec.Points))
	for i, p := range rec.Points {
		steps[i] = Step{Point: p, InBounds: g.InBounds(p.X, p.Y)}
	}
	return steps, plotter.Stats(), nil
}
