package app

import (
	"flag"
	"fmt"
	"strings"

	"marching-squares/internal/canvas"
)

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Later pairs win.
func (l KeyValues) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	Tile       int
	TPS        int
	Seed       int64
	HUDWidth   int
	Verbose    bool
	Set        KeyValues

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := canvas.DefaultConfig()
	return &Config{Width: d.Width, Height: d.Height, Tile: d.Tile, TPS: 60, Seed: d.Seed, HUDWidth: 280}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional TOML tunables file")
	fs.IntVar(&c.Width, "width", c.Width, "field area width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "field area height in pixels")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile side in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scatter")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels, 0 to hide")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
	fs.Var(&c.Set, "set", "tunable override in key=value form (repeatable)")
}

// Canvas resolves the canvas configuration: the TOML file (or defaults), then
// any explicitly set flags, then -set overrides.
func (c *Config) Canvas() (canvas.Config, error) {
	cfg := canvas.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := canvas.LoadFile(c.ConfigPath)
		if err != nil {
			return canvas.Config{}, err
		}
		cfg = loaded
	}

	overrides := map[string]string{}
	explicit := func(name, key string, value any) {
		if c.fs == nil {
			return
		}
		c.fs.Visit(func(f *flag.Flag) {
			if f.Name == name {
				overrides[key] = fmt.Sprint(value)
			}
		})
	}
	explicit("width", "width", c.Width)
	explicit("height", "height", c.Height)
	explicit("tile", "tile", c.Tile)
	explicit("seed", "seed", c.Seed)
	for k, v := range c.Set.Map() {
		overrides[k] = v
	}
	canvas.ApplyMap(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return canvas.Config{}, err
	}
	return cfg, nil
}
