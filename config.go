package pcview

import (
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML viewer configuration. Zero values fall back
// to module defaults.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Camera struct {
		Target    [3]float32 `yaml:"target"`
		Range     float32    `yaml:"range"`
		Azimuth   float32    `yaml:"azimuth"`   // degrees
		Elevation float32    `yaml:"elevation"` // degrees
		Fov       float32    `yaml:"fov"`       // degrees
	} `yaml:"camera"`

	// Background is an SVG 1.1 color name, e.g. "midnightblue".
	Background string `yaml:"background"`
}

func DefaultConfig() Config {
	var c Config
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "pcview"
	c.Camera.Range = 10.0
	c.Camera.Azimuth = 45.0
	c.Camera.Elevation = 45.0
	c.Camera.Fov = 45.0
	c.Background = "black"
	return c
}

// LoadConfig reads the YAML config at path. An empty path or a missing file
// yields the defaults; a present but malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundColor resolves the configured background name to a wgpu clear
// color. Unknown names are an error so typos don't silently go black.
func (c Config) BackgroundColor() (wgpu.Color, error) {
	rgba, ok := colornames.Map[c.Background]
	if !ok {
		return wgpu.Color{}, fmt.Errorf("unknown background color %q", c.Background)
	}
	return wgpu.Color{
		R: float64(rgba.R) / 255.0,
		G: float64(rgba.G) / 255.0,
		B: float64(rgba.B) / 255.0,
		A: float64(rgba.A) / 255.0,
	}, nil
}
