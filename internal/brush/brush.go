package brush

import (
	"math"

	"marching-squares/internal/core"
)

// Mode selects the value the brush blends towards.
type Mode int

const (
	// Add pulls samples towards 1.
	Add Mode = iota
	// Remove pulls samples towards 0.
	Remove
)

// String names the mode for status output.
func (m Mode) String() string {
	if m == Remove {
		return "remove"
	}
	return "add"
}

// Target returns the value samples converge to.
func (m Mode) Target() float64 {
	if m == Remove {
		return 0
	}
	return 1
}

// Params holds the brush time constants in seconds. Erasing is typically an
// order of magnitude faster than filling.
type Params struct {
	FillTime  float64
	EraseTime float64
}

// DefaultParams returns the standard time constants.
func DefaultParams() Params {
	return Params{FillTime: 1.0, EraseTime: 0.1}
}

// TimeConstant returns the time constant for mode.
func (p Params) TimeConstant(m Mode) float64 {
	if m == Remove {
		return p.EraseTime
	}
	return p.FillTime
}

// Apply blends the neighbourhood of (cx, cy) towards the mode's target. The
// blend weight is dt/timeConstant scaled by the kernel weight and clamped to
// [0, 1]. Destinations outside the field's cell region are skipped. It reports
// whether any sample was written.
func Apply(f *core.Field, k *Kernel, p Params, cx, cy int, m Mode, dt float64) bool {
	tc := p.TimeConstant(m)
	if dt <= 0 || tc <= 0 {
		return false
	}
	strength := dt / tc
	target := m.Target()
	r := k.Reach()
	touched := false
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			x, y := cx+j, cy+i
			if !f.InCellRegion(x, y) {
				continue
			}
			lambda := clamp(strength*k.At(i, j), 0, 1)
			if lambda == 0 {
				continue
			}
			v := f.At(x, y)
			f.Set(x, y, v+lambda*(target-v))
			touched = true
		}
	}
	return touched
}

// Stamp writes the mode's target directly wherever the kernel weight is
// positive, ignoring time.
func Stamp(f *core.Field, k *Kernel, cx, cy int, m Mode) bool {
	r := k.Reach()
	target := m.Target()
	touched := false
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			x, y := cx+j, cy+i
			if !f.InCellRegion(x, y) || k.At(i, j) <= 0 {
				continue
			}
			f.Set(x, y, target)
			touched = true
		}
	}
	return touched
}

// GridCoord converts a pixel position to the nearest sample coordinate.
func GridCoord(px, py int, tile float64) (int, int) {
	if tile <= 0 {
		tile = 1
	}
	return int(math.Round(float64(px) / tile)), int(math.Round(float64(py) / tile))
}
