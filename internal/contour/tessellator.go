package contour

import "marching-squares/internal/core"

// Point is a position in field space: cell (x, y) spans
// [x*tile, (x+1)*tile] horizontally and likewise vertically.
type Point struct {
	X, Y float64
}

// Segment is one piece of the iso-contour.
type Segment struct {
	A, B Point
}

// Contour is the output of one tessellation pass. Segments are grouped by cell
// in row-major (y, x) order.
type Contour struct {
	Segments []Segment

	// cells across and down; one less than the field in each direction
	cw, ch int
	start  []int
	count  []uint8
}

// Cell returns the segments emitted by the cell whose top-left sample is
// (x, y). Cells on the last row or column of the field never emit segments.
func (c *Contour) Cell(x, y int) []Segment {
	if x < 0 || y < 0 || x >= c.cw || y >= c.ch {
		return nil
	}
	i := y*c.cw + x
	return c.Segments[c.start[i] : c.start[i]+int(c.count[i])]
}

// Len returns the number of segments.
func (c *Contour) Len() int { return len(c.Segments) }

// Tessellator extracts the iso-contour of a field with marching squares and
// caches the result until the field, the threshold, or the interpolation flag
// changes.
type Tessellator struct {
	tile        float64
	threshold   float64
	interpolate bool

	dirty bool
	field *core.Field
	gen   uint64

	cache    Contour
	rebuilds int
}

// NewTessellator returns a tessellator that starts dirty.
func NewTessellator(tile, threshold float64) *Tessellator {
	if tile <= 0 {
		tile = 1
	}
	return &Tessellator{tile: tile, threshold: threshold, dirty: true}
}

// Threshold returns the current iso value.
func (t *Tessellator) Threshold() float64 { return t.threshold }

// SetThreshold changes the iso value, invalidating the cache when it differs.
func (t *Tessellator) SetThreshold(v float64) {
	if v == t.threshold {
		return
	}
	t.threshold = v
	t.dirty = true
}

// Interpolating reports whether endpoints are linearly interpolated.
func (t *Tessellator) Interpolating() bool { return t.interpolate }

// SetInterpolate switches between midpoint and linear endpoints.
func (t *Tessellator) SetInterpolate(on bool) {
	if on == t.interpolate {
		return
	}
	t.interpolate = on
	t.dirty = true
}

// Invalidate forces the next Contour call to rebuild.
func (t *Tessellator) Invalidate() { t.dirty = true }

// Dirty reports whether the cache is stale with respect to f.
func (t *Tessellator) Dirty(f *core.Field) bool {
	return t.dirty || t.field != f || t.gen != f.Generation()
}

// Rebuilds counts full tessellation passes.
func (t *Tessellator) Rebuilds() int { return t.rebuilds }

// Contour returns the iso-contour of f, rebuilding it only when dirty. The
// returned value is owned by the tessellator and stays valid until the next
// rebuild.
func (t *Tessellator) Contour(f *core.Field) *Contour {
	if t.Dirty(f) {
		t.rebuild(f)
	}
	return &t.cache
}

func (t *Tessellator) rebuild(f *core.Field) {
	cw, ch := f.W-1, f.H-1
	if cw < 0 {
		cw = 0
	}
	if ch < 0 {
		ch = 0
	}
	cells := cw * ch
	c := &t.cache
	c.cw, c.ch = cw, ch
	c.Segments = c.Segments[:0]
	if cap(c.start) < cells {
		c.start = make([]int, cells)
		c.count = make([]uint8, cells)
	}
	c.start = c.start[:cells]
	c.count = c.count[:cells]

	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			tl := f.At(x, y)
			tr := f.At(x+1, y)
			br := f.At(x+1, y+1)
			bl := f.At(x, y+1)
			idx := CaseIndex(tl >= t.threshold, tr >= t.threshold, br >= t.threshold, bl >= t.threshold)
			edges := Edges(idx)

			i := y*cw + x
			c.start[i] = len(c.Segments)
			c.count[i] = uint8(len(edges) / 2)
			for e := 0; e+1 < len(edges); e += 2 {
				c.Segments = append(c.Segments, Segment{
					A: t.edgePoint(edges[e], x, y, tl, tr, br, bl),
					B: t.edgePoint(edges[e+1], x, y, tl, tr, br, bl),
				})
			}
		}
	}

	t.field = f
	t.gen = f.Generation()
	t.dirty = false
	t.rebuilds++
}

func (t *Tessellator) edgePoint(e Edge, x, y int, tl, tr, br, bl float64) Point {
	ox := float64(x) * t.tile
	oy := float64(y) * t.tile
	switch e {
	case EdgeTop:
		return Point{X: ox + t.param(tl, tr)*t.tile, Y: oy}
	case EdgeRight:
		return Point{X: ox + t.tile, Y: oy + t.param(tr, br)*t.tile}
	case EdgeBottom:
		return Point{X: ox + t.param(bl, br)*t.tile, Y: oy + t.tile}
	case EdgeLeft:
		return Point{X: ox, Y: oy + t.param(tl, bl)*t.tile}
	default:
		panic("contour: unknown edge")
	}
}

func (t *Tessellator) param(f0, f1 float64) float64 {
	if !t.interpolate {
		return 0.5
	}
	return Interpolate(f0, f1, t.threshold)
}

// Interpolate solves f0 + s*(f1-f0) = threshold for s, clamped to [0, 1].
// Equal corner values yield the midpoint.
func Interpolate(f0, f1, threshold float64) float64 {
	d := f1 - f0
	if d == 0 {
		return 0.5
	}
	s := (threshold - f0) / d
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
