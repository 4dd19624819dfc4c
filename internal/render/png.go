package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tui-raster/internal/grid"
)

// MaxImageSide is the largest width and height Image will produce.
const MaxImageSide = 16384

// PNGOptions controls image snapshots.
type PNGOptions struct {
	CellPixels int         // Side of one cell in pixels
	Marked     color.Color // Fill of marked cells
	Empty      color.Color // Fill of unmarked cells
	GridLine   color.Color // Cell border color; nil disables borders
}

// DefaultPNGOptions returns black-on-white cells with light gray borders.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		CellPixels: 24,
		Marked:     color.Black,
		Empty:      color.White,
		GridLine:   color.RGBA{R: 211, G: 211, B: 211, A: 255},
	}
}

// Image renders g with one source pixel per cell, scaled up to
// CellPixels per cell with nearest-neighbour sampling.
func Image(g *grid.Grid, opts PNGOptions) (*image.RGBA, error) {
	size := g.Size()
	if size <= 0 {
		return nil, fmt.Errorf("render: cannot draw an empty grid")
	}
	if opts.CellPixels <= 0 {
		return nil, fmt.Errorf("render: cell size must be positive, got %d", opts.CellPixels)
	}
	if opts.CellPixels > MaxImageSide/size {
		return nil, fmt.Errorf("render: %d cells of %dpx exceed %dpx", size, opts.CellPixels, MaxImageSide)
	}

	small := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{opts.Empty, opts.Marked})
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.IsMarked(x, y) {
				small.SetColorIndex(x, size-1-y, 1)
			}
		}
	}

	side := size * opts.CellPixels
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), xdraw.Src, nil)

	if opts.GridLine != nil {
		for i := 0; i <= size; i++ {
			pos := i * opts.CellPixels
			if pos == side {
				pos = side - 1
			}
			for j := 0; j < side; j++ {
				dst.Set(pos, j, opts.GridLine)
				dst.Set(j, pos, opts.GridLine)
			}
		}
	}
	return dst, nil
}

// PNG writes g to w as a PNG image.
func PNG(w io.Writer, g *grid.Grid, opts PNGOptions) error {
	img, err := Image(g, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
