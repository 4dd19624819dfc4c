package raster

import (
	"math"

	"github.com/vovakirdan/tui-raster/internal/core"
)

// Linear rasterizes a segment by evaluating y = k*x + b at fractional x
// positions and rounding. Sampling Oversample times per cell of the
// dominant axis keeps the output free of gaps; duplicate plots are
// expected.
type Linear struct {
	Oversample int // Samples per dominant-axis cell (default 2)
}

// Rasterize plots the segment p0-p1.
// Endpoints may come in either order; they are normalized so x increases.
// A vertical segment has no finite slope and is stepped along y instead.
func (l Linear) Rasterize(p0, p1 core.Point, dst Sink) {
	if p1.X < p0.X {
		p0, p1 = p1, p0
	}

	if p0.X == p1.X {
		lo, hi := core.Min(p0.Y, p1.Y), core.Max(p0.Y, p1.Y)
		for y := lo; y <= hi; y++ {
			dst.Mark(p0.X, y)
		}
		return
	}

	oversample := l.Oversample
	if oversample <= 0 {
		oversample = DefaultOptions().LinearOversample
	}

	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)

	k := (y1 - y0) / (x1 - x0)
	b := y0 - k*x0

	extent := p0.Chebyshev(p1)
	steps := extent * oversample
	dx := (x1 - x0) / float64(steps)

	// x = x0 + i*dx reaches x1 at i == steps; the next sample would pass it.
	for i := 0; i <= steps; i++ {
		x := x0 + float64(i)*dx
		y := k*x + b
		dst.Mark(round(x), round(y))
	}
}

// round converts to the nearest integer, ties to even.
func round(v float64) int {
	return int(math.RoundToEven(v))
}
