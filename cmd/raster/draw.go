package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raster/internal/config"
	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/render"
	"github.com/vovakirdan/tui-raster/internal/storage"
)

var (
	drawFlags       requestFlags
	flagScene       string
	flagPNGDir      string
	flagCompare     bool
	flagNoHistory   bool
	flagPlainGlyphs bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a request and print the grids",
	Long: `Rasterize a line and a circle and print the resulting grids side by side.

Unset flags fall back to the request section of the config. The circle is
always centered on the grid; its radius must not exceed size/2.

Modes:
  all        - Linear, DDA and Bresenham lines plus the circle (default)
  linear     - Only the Linear line
  dda        - Only the DDA line
  bresenham  - Only the Bresenham line
  circle     - Only the midpoint circle

Examples:
  raster draw
  raster draw --size 20 --x0 1 --y0 3 --x1 18 --y1 11 --radius 8
  raster draw --mode dda --compare
  raster draw --png ./out
  raster draw --scene ./scenes/demo.yaml`,
	RunE: runDraw,
}

func init() {
	drawFlags.register(drawCmd)
	drawCmd.Flags().StringVar(&flagScene, "scene", "", "Draw every request of a scene YAML file")
	drawCmd.Flags().StringVar(&flagPNGDir, "png", "", "Also write one PNG per panel into this directory")
	drawCmd.Flags().BoolVar(&flagCompare, "compare", false, "Compare the line algorithms against Bresenham")
	drawCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the draw in the history database")
	drawCmd.Flags().BoolVar(&flagPlainGlyphs, "plain", false, "Use # and . instead of the configured glyphs")
}

func runDraw(cmd *cobra.Command, _ []string) error {
	var store *storage.Store
	if !flagNoHistory {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	if flagScene != "" {
		return runScene(store)
	}

	req, err := drawFlags.request(cmd)
	if err != nil {
		return err
	}
	return drawOne("", req, store, storage.SourceCLI)
}

// runScene draws every entry of the scene file in order.
func runScene(store *storage.Store) error {
	scene, err := config.LoadScene(flagScene)
	if err != nil {
		return err
	}
	logger.Info("drawing scene", "name", scene.Name, "entries", len(scene.Entries))

	for i, entry := range scene.Entries {
		if i > 0 {
			fmt.Println()
		}
		if err := drawOne(entry.Name, entry.Request, store, storage.SourceScene); err != nil {
			return fmt.Errorf("scene entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

// drawOne executes a request, prints it and records it.
func drawOne(name string, req draw.Request, store *storage.Store, source string) error {
	res, err := draw.Execute(req, appConfig.Options())
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%s  %dx%d  %v -> %v  r=%d", req.Mode, req.GridSize, req.GridSize, req.From, req.To, req.Radius)
	if name != "" {
		header = name + ": " + header
	}
	fmt.Println(header)
	fmt.Println()
	fmt.Println(render.Panels(res.Panels, outputStyle(), terminalWidth()))

	if flagCompare {
		if err := printComparison(req); err != nil {
			return err
		}
	}

	if flagPNGDir != "" {
		if err := writePanelPNGs(flagPNGDir, name, res); err != nil {
			return err
		}
	}

	if store != nil {
		id, err := store.SaveDraw(storage.RecordFromResult(res, source))
		if err != nil {
			logger.Warn("could not record draw", "error", err)
		} else {
			logger.Debug("draw recorded", "id", id)
		}
	}
	return nil
}

func outputStyle() render.Style {
	if flagPlainGlyphs {
		style := render.PlainStyle()
		style.Axes = true
		return style
	}
	return render.Style{
		Marked: appConfig.Render.Marked,
		Empty:  appConfig.Render.Empty,
		Axes:   true,
	}
}

// terminalWidth returns stdout's width, or 0 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}

func printComparison(req draw.Request) error {
	comparisons, err := draw.Compare(req, appConfig.Options())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Compared with Bresenham:")
	fmt.Printf("  %-10s  %-6s  %-24s  %s\n", "Algorithm", "Cells", "Extra", "Missing")
	fmt.Printf("  %-10s  %-6s  %-24s  %s\n", "---------", "-----", "-----", "-------")
	for _, c := range comparisons {
		extra, missing := pointList(c.Extra), pointList(c.Missing)
		if c.Exact() {
			extra, missing = "exact", ""
		}
		fmt.Printf("  %-10s  %-6d  %-24s  %s\n", c.Algorithm.Title(), c.Marked, extra, missing)
	}
	return nil
}

func pointList(points []core.Point) string {
	if len(points) == 0 {
		return "-"
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func writePanelPNGs(dir, name string, res draw.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("png: %w", err)
	}

	opts := render.DefaultPNGOptions()
	opts.CellPixels = appConfig.Render.CellPixels

	prefix := "raster"
	if name != "" {
		prefix = strings.ReplaceAll(name, string(filepath.Separator), "_")
	}
	for _, p := range res.Panels {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, p.Mode))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("png: %w", err)
		}
		err = render.PNG(f, p.Grid, opts)
		f.Close()
		if err != nil {
			return err
		}
		logger.Info("wrote png", "path", path)
	}
	return nil
}
