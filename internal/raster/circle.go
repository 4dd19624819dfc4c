package raster

import "github.com/vovakirdan/tui-raster/internal/core"

// MidpointCircle is Bresenham's midpoint circle algorithm. It walks one
// octant with an integer decision variable and mirrors each step into the
// other seven.
type MidpointCircle struct{}

// Rasterize plots the circle of the given radius around center.
// A zero radius plots the center only; a negative radius plots nothing.
func (MidpointCircle) Rasterize(center core.Point, radius int, dst Sink) {
	cx, cy := center.X, center.Y
	x, y := 0, radius
	d := 3 - 2*radius

	for y >= x {
		plotOctants(dst, cx, cy, x, y)

		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}

// plotOctants marks the eight reflections of (x, y) around (cx, cy).
func plotOctants(dst Sink, cx, cy, x, y int) {
	dst.Mark(cx+x, cy+y)
	dst.Mark(cx-x, cy+y)
	dst.Mark(cx+x, cy-y)
	dst.Mark(cx-x, cy-y)
	dst.Mark(cx+y, cy+x)
	dst.Mark(cx-y, cy+x)
	dst.Mark(cx+y, cy-x)
	dst.Mark(cx-y, cy-x)
}
