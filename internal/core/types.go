package core

// Size describes the dimensions of a sample grid.
type Size struct {
	W int
	H int
}

// Mode selects how the host presents the field.
type Mode int

const (
	// ModeGrid draws one dot per sample, shaded by value.
	ModeGrid Mode = iota
	// ModeContour draws the iso-contour through edge midpoints.
	ModeContour
	// ModeInterpolatingContour draws the iso-contour with linear edge interpolation.
	ModeInterpolatingContour
)

// Modes lists every display mode in presentation order.
func Modes() []Mode {
	return []Mode{ModeGrid, ModeContour, ModeInterpolatingContour}
}

// String returns the label shown on the status line.
func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeContour:
		return "contour"
	case ModeInterpolatingContour:
		return "interpolating contour"
	default:
		return "unknown"
	}
}

// Interpolates reports whether the mode wants sub-cell edge interpolation.
func (m Mode) Interpolates() bool { return m == ModeInterpolatingContour }

// Contoured reports whether the mode draws segments rather than samples.
func (m Mode) Contoured() bool { return m == ModeContour || m == ModeInterpolatingContour }
