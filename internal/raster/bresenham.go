package raster

import "github.com/vovakirdan/tui-raster/internal/core"

// Bresenham is the integer-only line algorithm. It emits exactly one cell
// per step of the dominant axis, max(|dx|,|dy|)+1 cells in total.
type Bresenham struct{}

// Rasterize plots the segment p0-p1 in any orientation.
func (Bresenham) Rasterize(p0, p1 core.Point, dst Sink) {
	dx := core.Abs(p1.X - p0.X)
	dy := core.Abs(p1.Y - p0.Y)
	sx := core.Sign(p1.X - p0.X)
	sy := core.Sign(p1.Y - p0.Y)
	err := dx - dy

	x, y := p0.X, p0.Y
	for {
		dst.Mark(x, y)
		if x == p1.X && y == p1.Y {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
