// Command roundtour plans closed delivery tours over a road network.
//
// It loads a GraphML road graph and a CSV stop list, partitions the stops
// by region, builds a nearest-neighbor tour per region, and writes the
// ordered stop list, optional leg distances, and a rendered route map for
// each region into the output directory.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roundtour/roundtour/core"
	"github.com/roundtour/roundtour/graphml"
	"github.com/roundtour/roundtour/region"
	"github.com/roundtour/roundtour/render"
	"github.com/roundtour/roundtour/textio"
	"github.com/roundtour/roundtour/tour"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the planner configuration")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*configPath); err != nil {
		slog.Error("planner failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := ReadConfig(configPath)
	if err != nil {
		return err
	}

	g, err := graphml.ParseFile(cfg.Graph)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", cfg.Graph, err)
	}
	slog.Info("graph loaded", "path", cfg.Graph, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	stops, err := loadStops(cfg.Stops)
	if err != nil {
		return fmt.Errorf("load stops %s: %w", cfg.Stops, err)
	}
	slog.Info("stops loaded", "path", cfg.Stops, "count", len(stops))

	opts, err := renderOptions(cfg.Render)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutDir, err)
	}

	labels := cfg.Regions
	if len(labels) == 0 {
		labels = region.Labels(stops)
	}

	failed := 0
	for _, label := range labels {
		if err := solveRegion(g, stops, label, cfg, opts); err != nil {
			slog.Error("region failed", "region", label, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d regions failed", failed, len(labels))
	}
	return nil
}

func loadStops(path string) ([]region.Stop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return region.Load(f)
}

// solveRegion plans one region's tour and writes its artifacts.
func solveRegion(g *core.Graph, stops []region.Stop, label string, cfg Config, opts []render.Option) error {
	list, err := region.Partition(stops, label, cfg.Depot)
	if err != nil {
		return err
	}

	res, err := tour.NearestNeighbor(g, list)
	if err != nil {
		return err
	}
	slog.Info("tour built",
		"region", label,
		"stops", len(list)-1,
		"total", res.Total())

	name := fileName(label)
	if err = textio.WriteLines(filepath.Join(cfg.OutDir, "path_"+name+".txt"), res.Stops); err != nil {
		return err
	}
	if cfg.SaveDistances {
		if err = textio.WriteFloats(filepath.Join(cfg.OutDir, "distances_"+name+".txt"), res.Legs); err != nil {
			return err
		}
	}
	return render.Save(filepath.Join(cfg.OutDir, "path_"+name+".png"), g, res.Stitched(), opts...)
}

// renderOptions translates the render configuration into draw options,
// loading the background image when one is configured.
func renderOptions(rc RenderConfig) ([]render.Option, error) {
	opts := []render.Option{render.WithSize(rc.Width, rc.Height)}
	if len(rc.Extent) == 4 {
		opts = append(opts, render.WithExtent(rc.ExtentBound()))
	}
	if rc.Background != "" {
		f, err := os.Open(rc.Background)
		if err != nil {
			return nil, fmt.Errorf("background %s: %w", rc.Background, err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("background %s: %w", rc.Background, err)
		}
		opts = append(opts, render.WithBackground(img))
	}
	return opts, nil
}

// fileName makes a region label safe for use in artifact file names.
func fileName(label string) string {
	return strings.ReplaceAll(strings.TrimSpace(label), " ", "_")
}
