// Package raster converts lines and circles into discrete grid cells.
//
// Three interchangeable line algorithms share the LineRasterizer contract:
// naive slope stepping (Linear), the digital differential analyzer (DDA)
// and Bresenham's integer algorithm. Circles go through the midpoint
// circle algorithm. Algorithms only talk to a Sink, so they can be run
// against a grid, a recorder or a plain set.
package raster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-raster/internal/core"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("raster: unknown algorithm")

// LineRasterizer plots the cells approximating the segment p0-p1.
type LineRasterizer interface {
	Rasterize(p0, p1 core.Point, dst Sink)
}

// CircleRasterizer plots the cells approximating a circle.
type CircleRasterizer interface {
	Rasterize(center core.Point, radius int, dst Sink)
}

// Algorithm selects one of the line rasterizers.
type Algorithm int

const (
	AlgorithmLinear Algorithm = iota
	AlgorithmDDA
	AlgorithmBresenham
)

// Algorithms returns every line algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmLinear, AlgorithmDDA, AlgorithmBresenham}
}

// String returns the identifier used on the command line and in storage.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLinear:
		return "linear"
	case AlgorithmDDA:
		return "dda"
	case AlgorithmBresenham:
		return "bresenham"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name for panel headers.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmLinear:
		return "Linear"
	case AlgorithmDDA:
		return "DDA"
	case AlgorithmBresenham:
		return "Bresenham"
	default:
		return "Unknown"
	}
}

// Description returns a one-line summary of how the algorithm works.
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmLinear:
		return "slope-intercept stepping along x with float rounding"
	case AlgorithmDDA:
		return "incremental float stepping along both axes"
	case AlgorithmBresenham:
		return "integer error-term stepping, one cell per major step"
	default:
		return ""
	}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= AlgorithmLinear && a <= AlgorithmBresenham
}

// ParseAlgorithm converts an identifier (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, s)
}

// Options tunes the floating-point rasterizers.
type Options struct {
	// LinearOversample is the number of samples per cell of the dominant
	// axis taken by the Linear algorithm.
	LinearOversample int
	// DDAOversample multiplies the DDA step count.
	DDAOversample int
}

// DefaultOptions returns the oversampling factors of the classic variants.
func DefaultOptions() Options {
	return Options{
		LinearOversample: 2,
		DDAOversample:    10,
	}
}

// New returns the rasterizer for a, configured with opts.
func New(a Algorithm, opts Options) (LineRasterizer, error) {
	switch a {
	case AlgorithmLinear:
		return Linear{Oversample: opts.LinearOversample}, nil
	case AlgorithmDDA:
		return DDA{Oversample: opts.DDAOversample}, nil
	case AlgorithmBresenham:
		return Bresenham{}, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownAlgorithm, int(a))
	}
}
