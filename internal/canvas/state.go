package canvas

import (
	"fmt"
	"math"

	"marching-squares/internal/brush"
	"marching-squares/internal/contour"
	"marching-squares/internal/core"
)

// State owns everything the frame loop mutates: the field, the brush kernel
// and time constants, the tessellator and the display mode. It is not safe
// for concurrent use; the host calls it from a single loop.
type State struct {
	cfg  Config
	tile float64

	field  *core.Field
	kernel *brush.Kernel
	brush  brush.Params
	tess   *contour.Tessellator
	mode   core.Mode
}

// New builds a State from cfg. Invalid radius bands and tiles are repaired the
// same way the kernel repairs them; call Config.Validate first to reject them.
func New(cfg Config) *State {
	w, h := cfg.GridSize()
	tile := float64(cfg.Tile)
	if tile <= 0 {
		tile = 1
	}
	p := cfg.Params
	s := &State{
		cfg:    cfg,
		tile:   tile,
		field:  core.NewField(w, h),
		kernel: brush.NewKernel(tile, p.MinRadius, p.MaxRadius),
		brush:  brush.Params{FillTime: p.FillTime, EraseTime: p.EraseTime},
		tess:   contour.NewTessellator(tile, clamp01(p.Threshold)),
		mode:   core.ModeContour,
	}
	s.cfg.Params.Radius = s.kernel.Rebuild(p.Radius)
	return s
}

// Config returns the configuration with the live tunables folded in.
func (s *State) Config() Config {
	c := s.cfg
	c.Params.Threshold = s.tess.Threshold()
	c.Params.Radius = s.kernel.Radius()
	c.Params.FillTime = s.brush.FillTime
	c.Params.EraseTime = s.brush.EraseTime
	return c
}

// Field exposes the sample grid.
func (s *State) Field() *core.Field { return s.field }

// Size reports the grid dimensions.
func (s *State) Size() core.Size { return s.field.Size() }

// Tile returns the side of one cell in pixels.
func (s *State) Tile() float64 { return s.tile }

// Mode returns the display mode.
func (s *State) Mode() core.Mode { return s.mode }

// SetMode switches the display mode.
func (s *State) SetMode(m core.Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	Logger().Debug("display mode changed", "mode", m.String())
}

// Threshold returns the iso value.
func (s *State) Threshold() float64 { return s.tess.Threshold() }

// SetThreshold clamps v to [0, 1] and applies it.
func (s *State) SetThreshold(v float64) {
	v = clamp01(v)
	if v == s.tess.Threshold() {
		return
	}
	s.tess.SetThreshold(v)
	Logger().Debug("threshold changed", "threshold", v)
}

// AdjustThreshold moves the threshold up (direction > 0) or down at the
// configured rate per second.
func (s *State) AdjustThreshold(direction int, dt float64) {
	if direction == 0 || dt <= 0 {
		return
	}
	step := s.cfg.Params.ThresholdRate * dt
	if direction < 0 {
		step = -step
	}
	s.SetThreshold(s.tess.Threshold() + step)
}

// Radius returns the effective brush radius in pixels.
func (s *State) Radius() float64 { return s.kernel.Radius() }

// SetRadius clamps v to the radius band and rebuilds the kernel.
func (s *State) SetRadius(v float64) {
	before := s.kernel.Radius()
	after := s.kernel.Rebuild(v)
	if after != before {
		Logger().Debug("brush radius changed", "radius", after, "reach", s.kernel.Reach())
	}
}

// ScaleRadius applies notches of scroll: each positive notch multiplies the
// radius by the up step, each negative notch by the down step.
func (s *State) ScaleRadius(notches float64) {
	if notches == 0 {
		return
	}
	factor := math.Pow(s.cfg.Params.RadiusStepUp, notches)
	if notches < 0 {
		factor = math.Pow(s.cfg.Params.RadiusStepDown, -notches)
	}
	s.SetRadius(s.kernel.Radius() * factor)
}

// BrushParams returns the fill and erase time constants.
func (s *State) BrushParams() brush.Params { return s.brush }

// Paint applies the brush centred on grid coordinate (cx, cy) for dt seconds.
func (s *State) Paint(cx, cy int, m brush.Mode, dt float64) bool {
	return brush.Apply(s.field, s.kernel, s.brush, cx, cy, m, dt)
}

// PaintPixel converts a pixel position to the nearest sample and paints there.
func (s *State) PaintPixel(px, py int, m brush.Mode, dt float64) bool {
	cx, cy := brush.GridCoord(px, py, s.tile)
	return s.Paint(cx, cy, m, dt)
}

// BrushCentre returns the pixel position of the sample PaintPixel would
// centre the brush on, matching where that sample is drawn.
func (s *State) BrushCentre(px, py int) (float64, float64) {
	cx, cy := brush.GridCoord(px, py, s.tile)
	return (float64(cx) + 0.5) * s.tile, (float64(cy) + 0.5) * s.tile
}

// Clear zeroes the field.
func (s *State) Clear() {
	s.field.Clear()
	Logger().Info("field cleared")
}

// Scatter stamps count full-strength brush marks at positions drawn from seed.
func (s *State) Scatter(seed int64, count int) {
	rng := core.NewRNG(seed)
	for i := 0; i < count; i++ {
		cx := rng.IntN(s.field.W)
		cy := rng.IntN(s.field.H)
		brush.Stamp(s.field, s.kernel, cx, cy, brush.Add)
	}
	Logger().Info("field scattered", "seed", seed, "count", count)
}

// Dirty reports whether the next Contour call will rebuild.
func (s *State) Dirty() bool {
	return s.tess.Interpolating() != s.mode.Interpolates() || s.tess.Dirty(s.field)
}

// Contour returns the iso-contour for the current mode. In grid mode the
// midpoint contour is returned.
func (s *State) Contour() *contour.Contour {
	s.tess.SetInterpolate(s.mode.Interpolates())
	before := s.tess.Rebuilds()
	c := s.tess.Contour(s.field)
	if s.tess.Rebuilds() != before {
		Logger().Debug("contour rebuilt",
			"segments", c.Len(),
			"threshold", s.tess.Threshold(),
			"interpolate", s.tess.Interpolating())
	}
	return c
}

// Rebuilds counts tessellation passes so far.
func (s *State) Rebuilds() int { return s.tess.Rebuilds() }

// Status returns the plain-text status line shown by the host.
func (s *State) Status() string {
	return fmt.Sprintf("mode: %s  threshold: %.2f  radius: %.0f", s.mode, s.tess.Threshold(), s.kernel.Radius())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
