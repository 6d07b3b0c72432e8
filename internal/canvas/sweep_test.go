package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marching-squares/internal/core"
)

func TestThresholdSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.Params.Radius = 40
	s := New(cfg)
	s.SetMode(core.ModeGrid)
	s.SetThreshold(0.3)

	s.PaintStroke(4, 4, 15, 15, 30, 0.2)
	require.Positive(t, s.Field().At(10, 10))

	results := s.ThresholdSweep(4)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.InDelta(t, float64(i+1)/5, r.Threshold, 1e-12)
		assert.GreaterOrEqual(t, r.MeanShift, 0.0)
		assert.LessOrEqual(t, r.MeanShift, r.MaxShift)
		assert.LessOrEqual(t, r.MaxShift, s.Tile()/2+1e-9, "interpolation moves endpoints at most half a tile along the edge")
	}
	assert.Positive(t, results[0].Segments)

	assert.Equal(t, core.ModeGrid, s.Mode(), "sweep restores the mode")
	assert.Equal(t, 0.3, s.Threshold(), "sweep restores the threshold")
	assert.Nil(t, s.ThresholdSweep(0))
}
