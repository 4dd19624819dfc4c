package raster

import (
	"sort"

	"github.com/vovakirdan/tui-raster/internal/core"
)

// Sink receives the cells produced by a rasterizer.
// Implementations must tolerate any integer coordinate, including ones
// outside the surface they draw on.
type Sink interface {
	Mark(x, y int)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(x, y int)

// Mark calls f(x, y).
func (f SinkFunc) Mark(x, y int) {
	f(x, y)
}

// PlotStats summarizes the traffic that went through a Plotter.
type PlotStats struct {
	Calls   int // Mark calls issued by the algorithm
	Plotted int // Calls forwarded to the destination
	Dropped int // Calls discarded as out of range
}

// Plotter is the bounds-checked sink between an algorithm and its
// destination. Coordinates outside [0, size) on either axis are dropped
// silently; everything else is forwarded.
type Plotter struct {
	size  int
	dst   Sink
	stats PlotStats
}

// NewPlotter creates a plotter for a square surface of the given side.
func NewPlotter(size int, dst Sink) *Plotter {
	return &Plotter{size: size, dst: dst}
}

// Mark forwards (x, y) to the destination if it is in range.
func (p *Plotter) Mark(x, y int) {
	p.stats.Calls++
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		p.stats.Dropped++
		return
	}
	p.stats.Plotted++
	if p.dst != nil {
		p.dst.Mark(x, y)
	}
}

// Stats returns the counters accumulated so far.
func (p *Plotter) Stats() PlotStats {
	return p.stats
}

// Recorder is a sink that keeps every mark in call order, duplicates
// included. Used for tracing and for counting plot calls.
type Recorder struct {
	Points []core.Point
}

// Mark appends (x, y) to the recorded sequence.
func (r *Recorder) Mark(x, y int) {
	r.Points = append(r.Points, core.P(x, y))
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return len(r.Points)
}

// CellSet is an in-memory set of marked cells with no bounds.
type CellSet map[core.Point]struct{}

// NewCellSet creates an empty set.
func NewCellSet() CellSet {
	return make(CellSet)
}

// Mark adds (x, y) to the set.
func (s CellSet) Mark(x, y int) {
	s[core.P(x, y)] = struct{}{}
}

// Has reports whether p is in the set.
func (s CellSet) Has(p core.Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of distinct cells.
func (s CellSet) Len() int {
	return len(s)
}

// Points returns the cells sorted by y, then x.
func (s CellSet) Points() []core.Point {
	points := make([]core.Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// Diff returns the cells in s that are missing from other.
func (s CellSet) Diff(other CellSet) []core.Point {
	out := NewCellSet()
	for p := range s {
		if !other.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out.Points()
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
