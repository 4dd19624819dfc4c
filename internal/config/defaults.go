package config

import (
	_ "embed"
)

//go:embed defaults/raster.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/raster.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 10,
		},
		Request: RequestConfig{
			Mode:   "all",
			X0:     2,
			Y0:     2,
			X1:     7,
			Y1:     5,
			Radius: 3,
		},
		Algorithms: AlgorithmsConfig{
			LinearOversample: 2,
			DDAOversample:    10,
		},
		Render: RenderConfig{
			Theme:      "default",
			CellPixels: 24,
			Marked:     "██",
			Empty:      "··",
		},
		Storage: StorageConfig{
			DBPath: "~/.raster/history.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
