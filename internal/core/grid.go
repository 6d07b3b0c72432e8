package core

import "fmt"

// Field stores a 2D grid of scalar samples in row-major order. Samples are
// conceptually in [0, 1] and start at zero.
type Field struct {
	W, H int
	data []float64
	gen  uint64
}

// NewField allocates a zeroed field with the given dimensions.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// FieldForArea derives the grid dimensions from a display area and a tile side.
func FieldForArea(width, height, tile int) *Field {
	if tile <= 0 {
		tile = 1
	}
	return NewField(width/tile, height/tile)
}

// Size returns the grid dimensions.
func (f *Field) Size() Size { return Size{W: f.W, H: f.H} }

// Values exposes the backing slice for read-only display use. Writing through
// it bypasses the generation counter.
func (f *Field) Values() []float64 { return f.data }

// InBounds reports whether (x, y) addresses a sample.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

// InCellRegion reports whether (x, y) is the top-left sample of a full 2x2
// cell. The last row and column are excluded.
func (f *Field) InCellRegion(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W-1 && y < f.H-1
}

// At returns the sample at (x, y). It panics outside the grid.
func (f *Field) At(x, y int) float64 {
	return f.data[f.index(x, y)]
}

// Set stores v at (x, y) and advances the generation. It panics outside the
// grid.
func (f *Field) Set(x, y int, v float64) {
	f.data[f.index(x, y)] = v
	f.gen++
}

// Generation changes on every mutation. Consumers holding derived data compare
// it against the value they last built from.
func (f *Field) Generation() uint64 { return f.gen }

// Clear fills the field with zeros.
func (f *Field) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
	f.gen++
}

func (f *Field) index(x, y int) int {
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("core: sample (%d,%d) outside %dx%d field", x, y, f.W, f.H))
	}
	return y*f.W + x
}
