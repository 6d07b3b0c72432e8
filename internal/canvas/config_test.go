package canvas

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	w, h := cfg.GridSize()
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)
	assert.Less(t, cfg.Params.EraseTime, cfg.Params.FillTime)
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"width":      "320",
		"tile":       "8",
		"threshold":  "0.3",
		"max_radius": "5",
		"min_radius": "20",
		"fill_time":  "junk",
	})
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 8, cfg.Tile)
	assert.Equal(t, 0.3, cfg.Params.Threshold)
	assert.Equal(t, 20.0, cfg.Params.MaxRadius, "max radius follows min radius")
	assert.Equal(t, DefaultConfig().Params.FillTime, cfg.Params.FillTime, "unparsable values are ignored")

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"tile":      func(c *Config) { c.Tile = 0 },
		"area":      func(c *Config) { c.Width = 5 },
		"threshold": func(c *Config) { c.Params.Threshold = 1.5 },
		"radius":    func(c *Config) { c.Params.MaxRadius = 1 },
		"steps":     func(c *Config) { c.Params.RadiusStepDown = 1.2 },
		"times":     func(c *Config) { c.Params.EraseTime = 0 },
		"nan fill":  func(c *Config) { c.Params.FillTime = math.NaN() },
		"nan thr":   func(c *Config) { c.Params.Threshold = math.NaN() },
		"inf max":   func(c *Config) { c.Params.MaxRadius = math.Inf(1) },
		"inf rate":  func(c *Config) { c.Params.ThresholdRate = math.Inf(-1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.toml")
	data := []byte(`
width = 400
height = 300
tile = 5

[params]
threshold = 0.25
radius = 40
erase_time = 0.05
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 5, cfg.Tile)
	assert.Equal(t, 0.25, cfg.Params.Threshold)
	assert.Equal(t, 40.0, cfg.Params.Radius)
	assert.Equal(t, 0.05, cfg.Params.EraseTime)
	assert.Equal(t, DefaultConfig().Params.FillTime, cfg.Params.FillTime, "unset keys keep defaults")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("bogus = 1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Decode([]byte("[params]\nthreshold = 3.0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNonFiniteValuesRejected(t *testing.T) {
	for _, doc := range []string{
		"[params]\nfill_time = nan\n",
		"[params]\nthreshold = nan\n",
		"[params]\nmax_radius = inf\n",
		"[params]\nerase_time = -inf\n",
	} {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidConfig, "toml %q", doc)
	}

	for key, value := range map[string]string{
		"threshold":  "NaN",
		"max_radius": "Inf",
		"fill_time":  "+Inf",
		"radius":     "nan",
	} {
		cfg := FromMap(map[string]string{key: value})
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%s=%s", key, value)
	}
}
