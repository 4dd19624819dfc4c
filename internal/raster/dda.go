package raster

import "github.com/vovakirdan/tui-raster/internal/core"

// DDA is the digital differential analyzer: it walks from p0 to p1 in
// equal float increments on both axes and rounds each sample.
type DDA struct {
	Oversample int // Step multiplier over the dominant-axis extent (default 10)
}

// Rasterize plots the segment p0-p1, both endpoints included.
func (d DDA) Rasterize(p0, p1 core.Point, dst Sink) {
	oversample := d.Oversample
	if oversample <= 0 {
		oversample = DefaultOptions().DDAOversample
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := core.Max(core.Abs(dx), core.Abs(dy)) * oversample

	// Coincident endpoints: no direction to step in.
	if steps == 0 {
		dst.Mark(p0.X, p0.Y)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	for i := 0; i <= steps; i++ {
		x := float64(p0.X) + float64(i)*xInc
		y := float64(p0.Y) + float64(i)*yInc
		dst.Mark(round(x), round(y))
	}
}
