package canvas

import (
	"math"
	"slices"

	"marching-squares/internal/brush"
	"marching-squares/internal/core"
)

// SweepResult summarises the contour at one threshold.
type SweepResult struct {
	Threshold float64
	Segments  int
	// mean distance in pixels between interpolated and midpoint endpoints
	MeanShift float64
	MaxShift  float64
}

// PaintStroke drags an Add brush in a straight line from (x0, y0) to (x1, y1)
// in grid coordinates over the given number of frames of dt seconds.
func (s *State) PaintStroke(x0, y0, x1, y1 int, frames int, dt float64) {
	if frames <= 0 {
		return
	}
	for i := 0; i < frames; i++ {
		t := 0.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}
		cx := int(math.Round(float64(x0) + t*float64(x1-x0)))
		cy := int(math.Round(float64(y0) + t*float64(y1-y0)))
		s.Paint(cx, cy, brush.Add, dt)
	}
}

// ThresholdSweep tessellates the current field at steps evenly spaced
// thresholds strictly inside (0, 1) and compares interpolated endpoints with
// the midpoint ones. The state's threshold and mode are restored afterwards.
func (s *State) ThresholdSweep(steps int) []SweepResult {
	if steps <= 0 {
		return nil
	}
	prevThreshold := s.Threshold()
	prevMode := s.Mode()
	defer func() {
		s.SetThreshold(prevThreshold)
		s.SetMode(prevMode)
	}()

	results := make([]SweepResult, 0, steps)
	for i := 1; i <= steps; i++ {
		th := float64(i) / float64(steps+1)
		s.SetThreshold(th)

		s.SetMode(core.ModeContour)
		mid := slices.Clone(s.Contour().Segments)
		s.SetMode(core.ModeInterpolatingContour)
		lin := s.Contour().Segments

		res := SweepResult{Threshold: th, Segments: len(lin)}
		var total float64
		for j := range lin {
			a := math.Hypot(lin[j].A.X-mid[j].A.X, lin[j].A.Y-mid[j].A.Y)
			b := math.Hypot(lin[j].B.X-mid[j].B.X, lin[j].B.Y-mid[j].B.Y)
			total += a + b
			res.MaxShift = math.Max(res.MaxShift, math.Max(a, b))
		}
		if len(lin) > 0 {
			res.MeanShift = total / float64(2*len(lin))
		}
		results = append(results, res)
	}
	return results
}
