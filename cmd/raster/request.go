package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/draw"
)

// requestFlags are the request fields settable on the command line. Unset
// flags fall back to the config's request section.
type requestFlags struct {
	mode   string
	size   int
	x0, y0 int
	x1, y1 int
	radius int
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "Draw mode: all, linear, dda, bresenham, circle")
	cmd.Flags().IntVar(&f.size, "size", 0, "Grid size")
	cmd.Flags().IntVar(&f.x0, "x0", 0, "Line start X")
	cmd.Flags().IntVar(&f.y0, "y0", 0, "Line start Y")
	cmd.Flags().IntVar(&f.x1, "x1", 0, "Line end X")
	cmd.Flags().IntVar(&f.y1, "y1", 0, "Line end Y")
	cmd.Flags().IntVar(&f.radius, "radius", 0, "Circle radius")
}

// request overlays the flags the user set onto the configured request and
// validates the result.
func (f *requestFlags) request(cmd *cobra.Command) (draw.Request, error) {
	req := appConfig.InitialRequest()
	flags := cmd.Flags()

	if flags.Changed("mode") {
		mode, err := draw.ParseMode(f.mode)
		if err != nil {
			return draw.Request{}, err
		}
		req.Mode = mode
	}
	if flags.Changed("size") {
		req.GridSize = f.size
	}
	if flags.Changed("x0") {
		req.From = core.P(f.x0, req.From.Y)
	}
	if flags.Changed("y0") {
		req.From = core.P(req.From.X, f.y0)
	}
	if flags.Changed("x1") {
		req.To = core.P(f.x1, req.To.Y)
	}
	if flags.Changed("y1") {
		req.To = core.P(req.To.X, f.y1)
	}
	if flags.Changed("radius") {
		req.Radius = f.radius
	}

	if err := req.Validate(); err != nil {
		return draw.Request{}, err
	}
	return req, nil
}
