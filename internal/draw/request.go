// Package draw turns user input into validated draw requests and runs the
// rasterizers for them. It is the only layer that rejects input: the
// algorithms underneath assume everything they receive is valid.
package draw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/grid"
)

// Mode selects which panels a request produces.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeLinear    Mode = "linear"
	ModeDDA       Mode = "dda"
	ModeBresenham Mode = "bresenham"
	ModeCircle    Mode = "circle"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeAll, ModeLinear, ModeDDA, ModeBresenham, ModeCircle}
}

// ParseMode converts a name to a Mode. An empty name selects ModeAll.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ModeAll, nil
	}
	for _, m := range Modes() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MaxGridSize is the largest grid size a request may ask for.
const MaxGridSize = grid.MaxSize

// Request is a validated draw request.
type Request struct {
	Mode     Mode
	GridSize int
	From     core.Point
	To       core.Point
	Radius   int
}

// DefaultRequest returns the request the application starts with.
func DefaultRequest() Request {
	return Request{
		Mode:     ModeAll,
		GridSize: grid.DefaultSize,
		From:     core.P(2, 2),
		To:       core.P(7, 5),
		Radius:   3,
	}
}

// Center returns the circle center for the request's grid.
func (r Request) Center() core.Point {
	return core.Center(r.GridSize)
}

// MaxRadius returns the largest radius whose circle fits the grid.
func (r Request) MaxRadius() int {
	c := r.Center()
	return core.Min(c.X, c.Y)
}

// Validate checks a typed request. The checks and their order follow the
// form: grid size, radius sign, coordinate range, radius range.
func (r Request) Validate() error {
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	if r.GridSize <= 0 || r.GridSize > MaxGridSize {
		return fmt.Errorf("%w: %d, size is >= 1 and <= %d", ErrInvalidGridSize, r.GridSize, MaxGridSize)
	}
	if r.Radius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, r.Radius)
	}
	for _, p := range []core.Point{r.From, r.To} {
		if p.X < 0 || p.X >= r.GridSize || p.Y < 0 || p.Y >= r.GridSize {
			return fmt.Errorf("%w: %v, coordinates are >= 0 and <= %d",
				ErrCoordinateRange, p, r.GridSize-1)
		}
	}
	if maxRadius := r.MaxRadius(); r.Radius > maxRadius {
		return fmt.Errorf("%w: radius is <= %d", ErrRadiusRange, maxRadius)
	}
	return nil
}

// Input holds the raw text of the request form.
type Input struct {
	GridSize string
	X0, Y0   string
	X1, Y1   string
	Radius   string
}

// InputFromRequest formats a request back into form text.
func InputFromRequest(r Request) Input {
	return Input{
		GridSize: strconv.Itoa(r.GridSize),
		X0:       strconv.Itoa(r.From.X),
		Y0:       strconv.Itoa(r.From.Y),
		X1:       strconv.Itoa(r.To.X),
		Y1:       strconv.Itoa(r.To.Y),
		Radius:   strconv.Itoa(r.Radius),
	}
}

// ParseGridSize parses the grid size field on its own, as done when the
// user only regenerates the grid.
func ParseGridSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || size <= 0 || size > MaxGridSize {
		return 0, fmt.Errorf("%w: %q, size is >= 1 and <= %d", ErrInvalidGridSize, s, MaxGridSize)
	}
	return size, nil
}

// ParseInput parses and validates raw form text into a Request.
func ParseInput(in Input, mode Mode) (Request, error) {
	size, err := ParseGridSize(in.GridSize)
	if err != nil {
		return Request{}, err
	}

	coords := make([]int, 4)
	for i, field := range []string{in.X0, in.Y0, in.X1, in.Y1} {
		v, convErr := strconv.Atoi(strings.TrimSpace(field))
		if convErr != nil {
			return Request{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, field)
		}
		coords[i] = v
	}

	radius, err := strconv.Atoi(strings.TrimSpace(in.Radius))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidRadius, in.Radius)
	}

	req := Request{
		Mode:     mode,
		GridSize: size,
		From:     core.P(coords[0], coords[1]),
		To:       core.P(coords[2], coords[3]),
		Radius:   radius,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
