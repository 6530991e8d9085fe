package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"maptile/internal/config"
	"maptile/internal/feature"
	"maptile/internal/render"
	"maptile/internal/tui"
)

func main() {
	var (
		cfgPath, output, region, tile string
		width, height                 int
		preview, verbose              bool
	)

	flag.StringVar(&cfgPath, "config", "", "YAML render configuration")
	flag.StringVar(&output, "o", "", "output PNG path (overrides config)")
	flag.IntVar(&width, "width", 0, "canvas width in pixels (overrides config)")
	flag.IntVar(&height, "height", 0, "canvas height in pixels (overrides config)")
	flag.StringVar(&region, "region", "", "only render features intersecting minLon,minLat,maxLon,maxLat")
	flag.StringVar(&tile, "tile", "", "only render features intersecting slippy tile z/x/y")
	flag.BoolVar(&preview, "preview", false, "open the terminal preview instead of writing a PNG")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <features.{geojson,osm,wkt,csv,kml}>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())
	render.SetLogger(log)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Error("could not load configuration", "err", err.Error())
		os.Exit(1)
	}
	if output != "" {
		cfg.Output = output
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err.Error())
		os.Exit(1)
	}

	bound, hasBound, err := parseBound(region, tile, cfg.Region)
	if err != nil {
		log.Error("invalid region", "err", err.Error())
		os.Exit(1)
	}

	var (
		path string
		fs   []*feature.RawFeature
	)
	if flag.NArg() > 0 {
		path = flag.Arg(0)
		fs, err = feature.Load(path)
		if err != nil {
			log.Error("could not load features", "err", err.Error())
			os.Exit(1)
		}
		log.Info("features loaded", "path", path, "count", len(fs))
	} else if !preview {
		flag.Usage()
		os.Exit(2)
	}

	if hasBound {
		idx := feature.NewIndex(fs)
		fs = idx.Query(bound)
		log.Info("region selected", "bound", bound, "indexed", idx.Len(), "selected", len(fs))
	}

	if preview {
		m := tui.NewWithFeatures(cfg, path, fs)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Error("preview failed", "err", err.Error())
			os.Exit(1)
		}
		return
	}

	t := render.NewTile(render.Options{Classifier: cfg.Classifier()})
	t.AddAll(fs)
	img, err := t.Render(cfg.Width, cfg.Height)
	if err != nil {
		log.Error("could not render tile", "err", err.Error())
		os.Exit(1)
	}

	if err := writePNG(cfg.Output, img); err != nil {
		log.Error("could not write tile", "path", cfg.Output, "err", err.Error())
		os.Exit(1)
	}

	s := t.Stats()
	log.Info("tile rendered",
		"path", cfg.Output,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"features", s.Features,
		"roads", s.PerKind[render.KindRoad],
		"waterways", s.PerKind[render.KindWaterway],
		"borders", s.PerKind[render.KindBorder],
		"dropped", s.Dropped,
		"skipped", s.Skipped)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// parseBound resolves the region to render from -region, -tile or the
// configuration, in that order.
func parseBound(region, tile string, fromConfig *config.Region) (orb.Bound, bool, error) {
	if region != "" && tile != "" {
		return orb.Bound{}, false, errors.New("-region and -tile are mutually exclusive")
	}
	switch {
	case region != "":
		vals, err := parseFloats(region, ",", 4)
		if err != nil {
			return orb.Bound{}, false, fmt.Errorf("-region %q: %w", region, err)
		}
		r := config.Region{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}
		if r.MinLon >= r.MaxLon || r.MinLat >= r.MaxLat {
			return orb.Bound{}, false, fmt.Errorf("-region %q: min must be below max", region)
		}
		return r.Bound(), true, nil
	case tile != "":
		parts := strings.Split(tile, "/")
		if len(parts) != 3 {
			return orb.Bound{}, false, fmt.Errorf("-tile %q: expected z/x/y", tile)
		}
		var zxy [3]uint32
		for i, p := range parts {
			v, err := strconv.ParseUint(p, 10, 32)
			if err != nil {
				return orb.Bound{}, false, fmt.Errorf("-tile %q: %w", tile, err)
			}
			zxy[i] = uint32(v)
		}
		if n := uint32(1) << zxy[0]; zxy[0] > 31 || zxy[1] >= n || zxy[2] >= n {
			return orb.Bound{}, false, fmt.Errorf("-tile %q: out of range", tile)
		}
		return feature.TileBound(zxy[0], zxy[1], zxy[2]), true, nil
	case fromConfig != nil:
		return fromConfig.Bound(), true, nil
	}
	return orb.Bound{}, false, nil
}

func parseFloats(s, sep string, n int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
