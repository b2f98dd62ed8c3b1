package svgeom

import (
	"fmt"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the quality and import settings. It is passed by value and never mutated by the
// package. Files are read with LoadConfig and environment variables with the prefix SVGEOM_ can
// override any field, such as SVGEOM_VERTEX_PER_METER.
type Config struct {
	// VertexPerMeter is the quality knob from which the flattening and simplification tolerance is derived.
	VertexPerMeter float64 `toml:"vertex_per_meter" envconfig:"VERTEX_PER_METER"`

	// Antialiasing is copied onto the produced layers, no fringe geometry is generated.
	Antialiasing bool `toml:"antialiasing" envconfig:"ANTIALIASING"`

	FillRule FillRule `toml:"fill_rule" envconfig:"FILL_RULE"`

	// MaxSubdivisions is the subdivision budget for each adaptively flattened curve.
	MaxSubdivisions int `toml:"max_subdivisions" envconfig:"MAX_SUBDIVISIONS"`

	QuadTreeCapacity int `toml:"quadtree_capacity" envconfig:"QUADTREE_CAPACITY"`

	// Extent is the quadtree root as minX, minY, maxX, maxY.
	Extent []float64 `toml:"extent" envconfig:"EXTENT"`

	// Workers bounds the number of shapes processed in parallel, zero or less uses GOMAXPROCS.
	Workers int `toml:"workers" envconfig:"WORKERS"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		VertexPerMeter:   10000.0,
		Antialiasing:     false,
		FillRule:         NonZero,
		MaxSubdivisions:  DefaultMaxSubdivisions,
		QuadTreeCapacity: 1,
		Extent:           []float64{-1e6, -1e6, 1e6, 1e6},
		Workers:          0,
	}
}

// LoadConfig reads a TOML file on top of the defaults and validates the result.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv returns a copy of the config with the fields overridden by SVGEOM_* environment variables.
func (c Config) FromEnv() (Config, error) {
	c.Extent = append([]float64{}, c.Extent...)
	if err := envconfig.Process("SVGEOM", &c); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate returns an error wrapping ErrInvalidConfig if any setting is out of range.
func (c Config) Validate() error {
	if math.IsNaN(c.VertexPerMeter) || math.IsInf(c.VertexPerMeter, 0) || c.VertexPerMeter < 0.0 {
		return fmt.Errorf("%w: vertex_per_meter must be a non-negative number, got %v", ErrInvalidConfig, c.VertexPerMeter)
	} else if c.FillRule != NonZero && c.FillRule != EvenOdd {
		return fmt.Errorf("%w: unknown fill rule %d", ErrInvalidConfig, c.FillRule)
	} else if c.MaxSubdivisions < 0 {
		return fmt.Errorf("%w: max_subdivisions must be non-negative, got %d", ErrInvalidConfig, c.MaxSubdivisions)
	} else if c.QuadTreeCapacity < 0 {
		return fmt.Errorf("%w: quadtree_capacity must be non-negative, got %d", ErrInvalidConfig, c.QuadTreeCapacity)
	} else if len(c.Extent) != 4 {
		return fmt.Errorf("%w: extent must have four values, got %d", ErrInvalidConfig, len(c.Extent))
	} else if !(c.Extent[0] < c.Extent[2]) || !(c.Extent[1] < c.Extent[3]) {
		return fmt.Errorf("%w: extent min must lie below max, got %v", ErrInvalidConfig, c.Extent)
	}
	return nil
}

// Bounds returns the extent as bounds.
func (c Config) Bounds() Bounds {
	if len(c.Extent) != 4 {
		return InfiniteInverse()
	}
	return NewBounds(Point{c.Extent[0], c.Extent[1]}, Point{c.Extent[2], c.Extent[3]})
}

// VerticesPerUnit returns 1000/VertexPerMeter, or zero when VertexPerMeter is not positive.
func (c Config) VerticesPerUnit() float64 {
	if c.VertexPerMeter <= 0.0 {
		return 0.0
	}
	return 1000.0 / c.VertexPerMeter
}

// RoundQuality returns the tolerance used for flattening and simplification. It shrinks as
// VertexPerMeter grows.
func (c Config) RoundQuality() float64 {
	return c.VerticesPerUnit() * 0.5
}
