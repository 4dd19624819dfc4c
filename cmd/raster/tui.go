package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raster/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive draw form",
	Long: `Open the interactive draw screen: a form with the grid size, both line
endpoints and the circle radius above four panels (Linear, DDA, Bresenham
and the midpoint circle).

Controls:
  Tab/Shift+Tab - Move between fields
  Enter         - Regenerate the grid (on Size) or draw (elsewhere)
  Ctrl+D        - Draw
  Ctrl+S        - Save a text and PNG snapshot to ~/.raster/snapshots
  Ctrl+H        - Show draw history (Enter redraws, Esc goes back)
  Ctrl+C        - Quit`,
	RunE: runTUI,
}

func runTUI(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting tui", "width", width, "height", height)
	return tui.Run(appConfig, store, width, height)
}
