// Package grid holds the square cell surface the rasterizers draw into.
package grid

import "github.com/vovakirdan/tui-raster/internal/core"

// DefaultSize is the side length used when nothing else is configured.
const DefaultSize = 10

// MaxSize is the largest side a grid will allocate.
const MaxSize = 1024

// Grid is an N×N surface of binary cell states.
// Cells are stored in row-major order: index = y*Size + x, with y=0 being
// the bottom row. Flipping rows for top-left rendering is left to renderers.
type Grid struct {
	size  int
	cells []bool
}

// New creates an unmarked grid of the given side.
// A size outside [1, MaxSize] yields an empty grid that ignores every mark.
func New(size int) *Grid {
	g := &Grid{}
	g.Reset(size)
	return g
}

// Reset reallocates the grid as an unmarked size×size surface,
// discarding all previous marks. Sizes outside [0, MaxSize] become 0.
func (g *Grid) Reset(size int) {
	if size < 0 || size > MaxSize {
		size = 0
	}
	g.size = size
	g.cells = make([]bool, size*size)
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Mark sets the cell at (x, y).
// Out-of-range coordinates are silently ignored.
func (g *Grid) Mark(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.size+x] = true
}

// IsMarked reports whether the cell at (x, y) is marked.
// Returns false for out-of-range coordinates.
func (g *Grid) IsMarked(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.size+x]
}

// MarkedCount returns the number of marked cells.
func (g *Grid) MarkedCount() int {
	count := 0
	for _, marked := range g.cells {
		if marked {
			count++
		}
	}
	return count
}

// Marked returns the marked cells ordered by row (bottom first) then column.
func (g *Grid) Marked() []core.Point {
	points := make([]core.Point, 0)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y*g.size+x] {
				points = append(points, core.P(x, y))
			}
		}
	}
	return points
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal returns true if both grids have the same side and marks.
// A nil grid equals nothing.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, marked := range g.cells {
		if marked != other.cells[i] {
			return false
		}
	}
	return true
}
