package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/raster"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the rasterization algorithms",
	Long:  `Shows the line algorithms and the draw modes accepted by --mode.`,
	Run:   runAlgorithms,
}

func runAlgorithms(_ *cobra.Command, _ []string) {
	fmt.Println("Line algorithms:")
	fmt.Println()

	maxLen := 4 // "Name" header
	for _, a := range raster.Algorithms() {
		if len(a.String()) > maxLen {
			maxLen = len(a.String())
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxLen, "Name", "Title", "Description")
	fmt.Printf("  %-*s  %-10s  %s\n", maxLen, "----", "-----", "-----------")
	for _, a := range raster.Algorithms() {
		fmt.Printf("  %-*s  %-10s  %s\n", maxLen, a, a.Title(), a.Description())
	}

	fmt.Println()
	fmt.Println("Circles use Bresenham's midpoint algorithm, centered on the grid.")
	fmt.Println()
	fmt.Print("Draw modes:")
	for _, m := range draw.Modes() {
		fmt.Printf(" %s", m)
	}
	fmt.Println()
	fmt.Println()
	opts := appConfig.Options()
	fmt.Printf("Oversampling: linear x%d, dda x%d\n", opts.LinearOversample, opts.DDAOversample)
}
