package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid canvas config")

// Params holds the interactive tunables.
type Params struct {
	Threshold     float64 `toml:"threshold"`
	ThresholdRate float64 `toml:"threshold_rate"`

	Radius         float64 `toml:"radius"`
	MinRadius      float64 `toml:"min_radius"`
	MaxRadius      float64 `toml:"max_radius"`
	RadiusStepUp   float64 `toml:"radius_step_up"`
	RadiusStepDown float64 `toml:"radius_step_down"`

	FillTime  float64 `toml:"fill_time"`
	EraseTime float64 `toml:"erase_time"`
}

// Config controls the canvas dimensions and tunables.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Tile   int `toml:"tile"`

	Seed int64 `toml:"seed"`

	Params Params `toml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Tile:   10,
		Seed:   1337,
		Params: Params{
			Threshold:      0.5,
			ThresholdRate:  0.5,
			Radius:         30,
			MinRadius:      10,
			MaxRadius:      120,
			RadiusStepUp:   1.1,
			RadiusStepDown: 0.9,
			FillTime:       1.0,
			EraseTime:      0.1,
		},
	}
}

// GridSize returns the number of samples across and down.
func (c Config) GridSize() (int, int) {
	if c.Tile <= 0 {
		return c.Width, c.Height
	}
	return c.Width / c.Tile, c.Height / c.Tile
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	p := c.Params
	if key, ok := p.nonFinite(); ok {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, key)
	}
	switch {
	case c.Tile <= 0:
		return fmt.Errorf("%w: tile must be positive, got %d", ErrInvalidConfig, c.Tile)
	case c.Width < 2*c.Tile || c.Height < 2*c.Tile:
		return fmt.Errorf("%w: %dx%d area holds fewer than 2x2 tiles of %d", ErrInvalidConfig, c.Width, c.Height, c.Tile)
	case p.Threshold < 0 || p.Threshold > 1:
		return fmt.Errorf("%w: threshold %g outside [0,1]", ErrInvalidConfig, p.Threshold)
	case p.ThresholdRate < 0:
		return fmt.Errorf("%w: threshold_rate must not be negative", ErrInvalidConfig)
	case p.MinRadius <= 0 || p.MaxRadius < p.MinRadius:
		return fmt.Errorf("%w: radius band [%g,%g] is empty", ErrInvalidConfig, p.MinRadius, p.MaxRadius)
	case p.RadiusStepUp <= 1 || p.RadiusStepDown <= 0 || p.RadiusStepDown >= 1:
		return fmt.Errorf("%w: radius steps %g/%g must grow and shrink", ErrInvalidConfig, p.RadiusStepUp, p.RadiusStepDown)
	case p.FillTime <= 0 || p.EraseTime <= 0:
		return fmt.Errorf("%w: fill_time and erase_time must be positive", ErrInvalidConfig)
	}
	return nil
}

// nonFinite returns the key of the first NaN or infinite tunable.
func (p Params) nonFinite() (string, bool) {
	values := []struct {
		key string
		v   float64
	}{
		{"threshold", p.Threshold},
		{"threshold_rate", p.ThresholdRate},
		{"radius", p.Radius},
		{"min_radius", p.MinRadius},
		{"max_radius", p.MaxRadius},
		{"radius_step_up", p.RadiusStepUp},
		{"radius_step_down", p.RadiusStepDown},
		{"fill_time", p.FillTime},
		{"erase_time", p.EraseTime},
	}
	for _, kv := range values {
		if !finite(kv.v) {
			return kv.key, true
		}
	}
	return "", false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays string overrides onto c. Unparsable values are ignored.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tile = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floats := map[string]*float64{
		"threshold":        &c.Params.Threshold,
		"threshold_rate":   &c.Params.ThresholdRate,
		"radius":           &c.Params.Radius,
		"min_radius":       &c.Params.MinRadius,
		"max_radius":       &c.Params.MaxRadius,
		"radius_step_up":   &c.Params.RadiusStepUp,
		"radius_step_down": &c.Params.RadiusStepDown,
		"fill_time":        &c.Params.FillTime,
		"erase_time":       &c.Params.EraseTime,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	if c.Params.MaxRadius < c.Params.MinRadius {
		c.Params.MaxRadius = c.Params.MinRadius
	}
}

// LoadFile reads a TOML tunables file on top of the defaults. Unknown keys are
// rejected.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read canvas config: %w", err)
	}
	return Decode(data)
}

// Decode parses TOML on top of the defaults and validates the result.
func Decode(data []byte) (Config, error) {
	c := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode canvas config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
