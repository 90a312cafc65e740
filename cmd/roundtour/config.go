package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Config is the planner's YAML configuration.
//
//	graph: network.graphml
//	stops: data_region.csv
//	depot: Auckland Airport
//	out-dir: out
//	save-distances: false
//	regions: []            # optional subset; default: every label in order
//	render:
//	  background: akl_zoom.png
//	  extent: [174.48866, 175.001869, -37.09336, -36.69258]
//	  width: 800
//	  height: 600
type Config struct {
	Graph         string       `yaml:"graph"`
	Stops         string       `yaml:"stops"`
	Depot         string       `yaml:"depot"`
	OutDir        string       `yaml:"out-dir"`
	SaveDistances bool         `yaml:"save-distances"`
	Regions       []string     `yaml:"regions"`
	Render        RenderConfig `yaml:"render"`
}

// RenderConfig configures the per-region PNG artifact.
type RenderConfig struct {
	// Background is the reference map image; empty for a plain canvas.
	Background string `yaml:"background"`

	// Extent is [min-lng, max-lng, min-lat, max-lat], the geographic
	// extent the background covers. Empty: fit to each tour.
	Extent []float64 `yaml:"extent"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ErrBadConfig indicates a missing or inconsistent configuration value.
var ErrBadConfig = errors.New("config: invalid configuration")

// ReadConfig loads and validates the YAML configuration at path, applying
// defaults for the optional fields.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Config{
		OutDir: ".",
		Render: RenderConfig{Width: 800, Height: 600},
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.Graph == "" {
		return Config{}, fmt.Errorf("%w: graph is required", ErrBadConfig)
	}
	if cfg.Stops == "" {
		return Config{}, fmt.Errorf("%w: stops is required", ErrBadConfig)
	}
	if cfg.Depot == "" {
		return Config{}, fmt.Errorf("%w: depot is required", ErrBadConfig)
	}
	if n := len(cfg.Render.Extent); n != 0 && n != 4 {
		return Config{}, fmt.Errorf("%w: render.extent needs 4 values, got %d", ErrBadConfig, n)
	}
	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return Config{}, fmt.Errorf("%w: render size must be positive", ErrBadConfig)
	}

	return cfg, nil
}

// ExtentBound converts the configured extent into an orb.Bound.
// Callers must have checked that an extent is present.
func (rc RenderConfig) ExtentBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{rc.Extent[0], rc.Extent[2]},
		Max: orb.Point{rc.Extent[1], rc.Extent[3]},
	}
}
