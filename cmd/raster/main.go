// raster draws lines and circles on a cell grid with the classic
// rasterization algorithms and shows the results side by side.
//
// Usage:
//
//	raster algorithms        - List the rasterization algorithms
//	raster draw              - Draw a request and print the panels
//	raster trace             - Print every plot call of one algorithm
//	raster tui               - Interactive draw form
//	raster serve             - Start SSH server for remote sessions
//	raster history           - Show recorded draws
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.raster/config.yaml)
//	--db <path>         - History database (default: ~/.raster/history.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raster/internal/config"
	"github.com/vovakirdan/tui-raster/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Loaded in PersistentPreRunE
	appConfig config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raster",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raster",
	Short: "Grid rasterization of lines and circles",
	Long: `raster converts line segments and circles into cells of a square grid
using four classic algorithms: Linear, DDA, Bresenham's line and
Bresenham's midpoint circle.

Available commands:
  algorithms - Show the rasterization algorithms
  draw       - Draw a request and print the grids
  trace      - Show every plot call made by one algorithm
  tui        - Interactive form with live panels
  serve      - Start SSH server for remote sessions
  history    - Show recorded draws

Examples:
  raster draw
  raster draw --x0 0 --y0 0 --x1 9 --y1 3 --compare
  raster draw --scene ./scenes/demo.yaml
  raster trace --mode dda --x1 4 --y1 2
  raster tui
  raster serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides storage.db_path)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig resolves the config file and applies the global flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger.SetLevel(level)

	appConfig = cfg
	logger.Debug("config loaded", "grid", cfg.Grid.Size, "theme", cfg.Render.Theme, "db", cfg.Storage.DBPath)
	return nil
}

// openStore opens the history database. Commands that only record
// history keep going without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}
