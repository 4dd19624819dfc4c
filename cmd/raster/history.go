package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded draws",
	Long: `Display the most recent draws recorded by draw, tui and serve.

Examples:
  raster history
  raster history --limit 50
  raster history --stats
  raster history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of draws to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded draws")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show aggregated counts instead of draws")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	case flagHistoryStats:
		return printHistoryStats(store)
	}

	records, err := store.RecentDraws(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No draws recorded yet.")
		fmt.Println()
		fmt.Println("Run 'raster draw' or 'raster tui' to record one.")
		return nil
	}

	fmt.Printf("  %-5s  %-16s  %-9s  %-4s  %-8s  %-8s  %-3s  %-4s  %-4s  %-4s  %-4s  %s\n",
		"ID", "Date", "Mode", "Size", "From", "To", "R", "Lin", "DDA", "Bres", "Circ", "Source")
	fmt.Printf("  %-5s  %-16s  %-9s  %-4s  %-8s  %-8s  %-3s  %-4s  %-4s  %-4s  %-4s  %s\n",
		"--", "----", "----", "----", "----", "--", "-", "---", "---", "----", "----", "------")
	for _, r := range records {
		fmt.Printf("  %-5d  %-16s  %-9s  %-4d  %-8s  %-8s  %-3d  %-4d  %-4d  %-4d  %-4d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.GridSize,
			fmt.Sprintf("(%d,%d)", r.X0, r.Y0), fmt.Sprintf("(%d,%d)", r.X1, r.Y1), r.Radius,
			r.MarkedLinear, r.MarkedDDA, r.MarkedBresenham, r.MarkedCircle, r.Source)
	}
	return nil
}

func printHistoryStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Total draws: %d\n", stats.Total)
	if stats.Total == 0 {
		return nil
	}
	fmt.Printf("Last draw:   %s\n", stats.LastDraw.Format("2006-01-02 15:04"))

	fmt.Println()
	fmt.Println("By mode:")
	for _, mode := range draw.Modes() {
		if n := stats.ByMode[mode]; n > 0 {
			fmt.Printf("  %-10s  %d\n", mode, n)
		}
	}
	fmt.Println()
	fmt.Println("By source:")
	for _, source := range slices.Sorted(maps.Keys(stats.BySource)) {
		fmt.Printf("  %-16s  %d\n", source, stats.BySource[source])
	}
	return nil
}
