package raster

import (
	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/grid"
)

// ConfigureGrid returns a fresh, unmarked grid of the given side.
// Callers reject non-positive sizes before getting here.
func ConfigureGrid(size int) *grid.Grid {
	return grid.New(size)
}

// RasterizeLine draws p0-p1 into g with algorithm a using default options.
// An invalid algorithm leaves g untouched and returns zero stats.
func RasterizeLine(a Algorithm, p0, p1 core.Point, g *grid.Grid) PlotStats {
	return RasterizeLineWith(a, DefaultOptions(), p0, p1, g)
}

// RasterizeLineWith is RasterizeLine with explicit options.
func RasterizeLineWith(a Algorithm, opts Options, p0, p1 core.Point, g *grid.Grid) PlotStats {
	r, err := New(a, opts)
	if err != nil {
		return PlotStats{}
	}
	plotter := NewPlotter(g.Size(), g)
	r.Rasterize(p0, p1, plotter)
	return plotter.Stats()
}

// RasterizeCircle draws the circle of the given radius around center into g.
func RasterizeCircle(center core.Point, radius int, g *grid.Grid) PlotStats {
	plotter := NewPlotter(g.Size(), g)
	MidpointCircle{}.Rasterize(center, radius, plotter)
	return plotter.Stats()
}
