package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/draw"
)

// YAMLScene represents the YAML structure of a scene file: a batch of
// draw requests run one after another.
type YAMLScene struct {
	Name     string        `yaml:"name"`
	GridSize int           `yaml:"grid_size"`
	Requests []YAMLRequest `yaml:"requests"`
}

// YAMLRequest is a single entry of a scene.
type YAMLRequest struct {
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode,omitempty"`
	GridSize int       `yaml:"grid_size,omitempty"` // Overrides the scene size
	From     YAMLPoint `yaml:"from"`
	To       YAMLPoint `yaml:"to"`
	Radius   int       `yaml:"radius"`
}

// YAMLPoint is a grid coordinate in YAML form.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SceneEntry is a parsed, validated scene request.
type SceneEntry struct {
	Name    string
	Request draw.Request
}

// Scene is a parsed scene ready to execute.
type Scene struct {
	Name    string
	Entries []SceneEntry
}

// ParseScene parses and validates a YAML scene.
func ParseScene(data []byte) (Scene, error) {
	var ys YAMLScene
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scene{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(ys.Requests) == 0 {
		return Scene{}, fmt.Errorf("scene %q has no requests", ys.Name)
	}

	scene := Scene{Name: ys.Name}
	for i, yr := range ys.Requests {
		mode, err := draw.ParseMode(yr.Mode)
		if err != nil {
			return Scene{}, fmt.Errorf("request %d: %w", i+1, err)
		}

		size := ys.GridSize
		if yr.GridSize > 0 {
			size = yr.GridSize
		}

		req := draw.Request{
			Mode:     mode,
			GridSize: size,
			From:     core.P(yr.From.X, yr.From.Y),
			To:       core.P(yr.To.X, yr.To.Y),
			Radius:   yr.Radius,
		}
		if err := req.Validate(); err != nil {
			return Scene{}, fmt.Errorf("request %d: %w", i+1, err)
		}

		name := yr.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		scene.Entries = append(scene.Entries, SceneEntry{Name: name, Request: req})
	}
	return scene, nil
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene %s: %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return scene, nil
}
