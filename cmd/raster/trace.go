package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/raster"
	"github.com/vovakirdan/tui-raster/internal/render"
)

var traceFlags requestFlags

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every plot call made by one algorithm",
	Long: `Run a single algorithm and list each Mark call in order, including
repeated cells and calls the plotter dropped as out of range.

Examples:
  raster trace --mode bresenham
  raster trace --mode dda --x0 0 --y0 0 --x1 4 --y1 2
  raster trace --mode circle --radius 4`,
	RunE: runTrace,
}

func init() {
	traceFlags.register(traceCmd)
}

func runTrace(cmd *cobra.Command, _ []string) error {
	req, err := traceFlags.request(cmd)
	if err != nil {
		return err
	}
	if req.Mode == draw.ModeAll {
		req.Mode = draw.ModeBresenham
	}

	steps, stats, err := draw.Trace(req, appConfig.Options())
	if err != nil {
		return err
	}

	fmt.Printf("%s  %dx%d  %v -> %v  r=%d\n\n", req.Mode, req.GridSize, req.GridSize, req.From, req.To, req.Radius)
	fmt.Printf("  %-5s  %-10s  %s\n", "Call", "Cell", "")
	fmt.Printf("  %-5s  %-10s  %s\n", "----", "----", "")

	seen := raster.NewCellSet()
	for i, s := range steps {
		note := ""
		switch {
		case !s.InBounds:
			note = "dropped"
		case seen.Has(s.Point):
			note = "repeat"
		}
		seen.Mark(s.Point.X, s.Point.Y)
		fmt.Printf("  %-5d  %-10s  %s\n", i+1, s.Point, note)
	}

	fmt.Println()
	fmt.Printf("calls: %d  plotted: %d  dropped: %d  cells: %d\n",
		stats.Calls, stats.Plotted, stats.Dropped, seen.Len())

	res, err := draw.Execute(req, appConfig.Options())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(render.ASCII(res.Panels[0].Grid, outputStyle()))
	return nil
}
