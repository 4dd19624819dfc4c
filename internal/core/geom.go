// Package core provides the small geometric types shared by the grid, the
// rasterizers and the renderers. It has no external dependencies so the
// algorithm packages stay pure and testable.
package core

import "fmt"

// Point is an integer cell coordinate on the grid.
// X grows to the right and Y grows upward (origin at the bottom-left).
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point formatted as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Chebyshev returns the chessboard distance to q, i.e. the extent of the
// dominant axis.
func (p Point) Chebyshev(q Point) int {
	d := p.Sub(q)
	return Max(Abs(d.X), Abs(d.Y))
}

// Center returns the center cell of a square grid of the given side.
// Integer division is intentional: a 10x10 grid is centered on (5,5).
func Center(size int) Point {
	return Point{X: size / 2, Y: size / 2}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
