package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v2"

	"maptile/internal/render"
)

// Config describes one tile render job.
type Config struct {
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Output       string   `yaml:"output"`
	HighwayTypes []string `yaml:"highwayTypes"`
	Boundary     Boundary `yaml:"boundary"`
	Region       *Region  `yaml:"region"`
}

// Boundary configures the boundary predicate: a feature is a boundary when
// some key starts with Key and its value starts with ValuePrefix.
type Boundary struct {
	Key         string `yaml:"key"`
	ValuePrefix string `yaml:"valuePrefix"`
}

// Region restricts rendering to features intersecting a lon/lat box.
type Region struct {
	MinLon float64 `yaml:"minLon"`
	MinLat float64 `yaml:"minLat"`
	MaxLon float64 `yaml:"maxLon"`
	MaxLat float64 `yaml:"maxLat"`
}

// Bound converts r to an orb.Bound.
func (r Region) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinLon, r.MinLat},
		Max: orb.Point{r.MaxLon, r.MaxLat},
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:        800,
		Height:       600,
		Output:       "tile.png",
		HighwayTypes: append([]string(nil), render.DefaultHighwayTypes...),
		Boundary:     Boundary{Key: "boundary", ValuePrefix: "administrative"},
	}
}

// Load decodes YAML from r on top of Default and validates the result.
func Load(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile loads the configuration file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d: %w", c.Width, c.Height, render.ErrInvalidSize)
	}
	for _, t := range c.HighwayTypes {
		if t == "" {
			return errors.New("highwayTypes: empty prefix matches every highway")
		}
	}
	if c.Boundary.Key == "" {
		return errors.New("boundary.key must be set")
	}
	if r := c.Region; r != nil && (r.MinLon >= r.MaxLon || r.MinLat >= r.MaxLat) {
		return fmt.Errorf("region [%g %g %g %g]: min must be below max", r.MinLon, r.MinLat, r.MaxLon, r.MaxLat)
	}
	return nil
}

// Classifier builds the feature classifier described by c.
func (c Config) Classifier() render.Classifier {
	return render.Classifier{
		HighwayTypes: c.HighwayTypes,
		IsBoundary:   render.TagPrefixBoundary(c.Boundary.Key, c.Boundary.ValuePrefix),
	}
}
