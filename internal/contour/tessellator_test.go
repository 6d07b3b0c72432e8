package contour

import (
	"math"
	"slices"
	"testing"

	"marching-squares/internal/core"
)

// cellField builds a 2x2 field holding a single cell.
func cellField(tl, tr, br, bl float64) *core.Field {
	f := core.NewField(2, 2)
	f.Set(0, 0, tl)
	f.Set(1, 0, tr)
	f.Set(1, 1, br)
	f.Set(0, 1, bl)
	return f
}

func TestCaseTableTotality(t *testing.T) {
	for bits := 0; bits < 16; bits++ {
		tl := bits&8 != 0
		tr := bits&4 != 0
		br := bits&2 != 0
		bl := bits&1 != 0
		idx := CaseIndex(tl, tr, br, bl)
		if idx != bits {
			t.Fatalf("CaseIndex(%v,%v,%v,%v) = %d, expected %d", tl, tr, br, bl, idx, bits)
		}
		edges := Edges(idx)
		if len(edges)%2 != 0 || len(edges) > 4 {
			t.Fatalf("case %d has malformed edge list %v", idx, edges)
		}
		for _, e := range edges {
			if e > EdgeLeft {
				t.Fatalf("case %d references unknown edge %d", idx, e)
			}
		}
	}
	if len(Edges(0)) != 0 || len(Edges(15)) != 0 {
		t.Fatal("uniform cells must not emit edges")
	}
	if !slices.Equal(Edges(5), []Edge{EdgeTop, EdgeLeft, EdgeRight, EdgeBottom}) {
		t.Fatalf("saddle 5 resolution changed: %v", Edges(5))
	}
	if !slices.Equal(Edges(10), []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}) {
		t.Fatalf("saddle 10 resolution changed: %v", Edges(10))
	}
}

func TestEdgesPanicsOnImpossibleCase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for case 16")
		}
	}()
	Edges(16)
}

func TestUniformCellsEmitNothing(t *testing.T) {
	zero := cellField(0, 0, 0, 0)
	one := cellField(1, 1, 1, 1)
	for _, interp := range []bool{false, true} {
		for _, th := range []float64{0.001, 0.25, 0.5, 0.99, 1} {
			tess := NewTessellator(10, th)
			tess.SetInterpolate(interp)
			if n := tess.Contour(zero).Len(); n != 0 {
				t.Fatalf("zero cell at threshold %f emitted %d segments", th, n)
			}
		}
		for _, th := range []float64{0, 0.25, 0.5, 0.999} {
			tess := NewTessellator(10, th)
			tess.SetInterpolate(interp)
			if n := tess.Contour(one).Len(); n != 0 {
				t.Fatalf("full cell at threshold %f emitted %d segments", th, n)
			}
		}
	}
}

func TestLinearModeExactness(t *testing.T) {
	f := cellField(0, 1, 1, 0)
	tess := NewTessellator(10, 0.5)
	tess.SetInterpolate(true)

	segs := tess.Contour(f).Segments
	if len(segs) != 1 {
		t.Fatalf("expected one segment, got %d", len(segs))
	}
	// case 6: top edge to bottom edge
	if segs[0].A != (Point{X: 5, Y: 0}) {
		t.Fatalf("top crossing at %v, expected edge midpoint", segs[0].A)
	}
	if segs[0].B != (Point{X: 5, Y: 10}) {
		t.Fatalf("bottom crossing at %v, expected edge midpoint", segs[0].B)
	}

	tess.SetThreshold(0.25)
	segs = tess.Contour(f).Segments
	if segs[0].A != (Point{X: 2.5, Y: 0}) {
		t.Fatalf("top crossing at %v, expected t=0.25", segs[0].A)
	}
}

func TestInterpolateGuardsDegenerateEdge(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		s := Interpolate(v, v, 0.5)
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 || s > 1 {
			t.Fatalf("Interpolate(%f,%f) = %f", v, v, s)
		}
	}
	if s := Interpolate(0, 1, 2); s != 1 {
		t.Fatalf("expected clamp to 1, got %f", s)
	}
	if s := Interpolate(0, 1, -1); s != 0 {
		t.Fatalf("expected clamp to 0, got %f", s)
	}
}

func TestMidpointModeIgnoresValues(t *testing.T) {
	a := cellField(0, 0.9, 0.9, 0)
	b := cellField(0, 0.6, 0.6, 0)
	ta := NewTessellator(10, 0.5)
	tb := NewTessellator(10, 0.5)
	if !slices.Equal(ta.Contour(a).Segments, tb.Contour(b).Segments) {
		t.Fatal("midpoint mode should only depend on the case index")
	}
}

func TestTessellationIdempotent(t *testing.T) {
	f := core.NewField(16, 12)
	core.FillUniform(core.NewRNG(3), f)
	tess := NewTessellator(10, 0.5)
	tess.SetInterpolate(true)

	first := slices.Clone(tess.Contour(f).Segments)
	rebuilds := tess.Rebuilds()
	second := tess.Contour(f).Segments
	if !slices.Equal(first, second) {
		t.Fatal("repeated tessellation without mutation changed the output")
	}
	if tess.Rebuilds() != rebuilds {
		t.Fatal("clean cache must not rebuild")
	}
}

func TestDirtyTriggersRebuild(t *testing.T) {
	f := core.NewField(4, 4)
	tess := NewTessellator(10, 0.5)
	if n := tess.Contour(f).Len(); n != 0 {
		t.Fatalf("empty field emitted %d segments", n)
	}
	if tess.Dirty(f) {
		t.Fatal("tessellator should be clean after a build")
	}

	f.Set(1, 1, 1)
	if !tess.Dirty(f) {
		t.Fatal("Set must dirty the cache")
	}
	if tess.Contour(f).Len() == 0 {
		t.Fatal("rebuild must reflect the new sample")
	}

	n := tess.Rebuilds()
	tess.SetThreshold(0.5)
	if tess.Dirty(f) {
		t.Fatal("setting the same threshold must not dirty the cache")
	}
	tess.SetThreshold(0.9)
	tess.Contour(f)
	if tess.Rebuilds() != n+1 {
		t.Fatal("threshold change must trigger exactly one rebuild")
	}

	other := core.NewField(4, 4)
	if !tess.Dirty(other) {
		t.Fatal("a different field must be treated as dirty")
	}
}

func TestEndToEndSingleSample(t *testing.T) {
	f := core.NewField(4, 4)
	tess := NewTessellator(10, 0.5)
	if tess.Contour(f).Len() != 0 {
		t.Fatal("all-zero field must produce no segments")
	}

	f.Set(1, 1, 1)
	c := tess.Contour(f)

	cell := c.Cell(0, 0)
	if len(cell) != 1 {
		t.Fatalf("cell (0,0) emitted %d segments, expected 1", len(cell))
	}
	// case 2: right edge midpoint to bottom edge midpoint
	want := Segment{A: Point{X: 10, Y: 5}, B: Point{X: 5, Y: 10}}
	if cell[0] != want {
		t.Fatalf("cell (0,0) segment = %v, expected %v", cell[0], want)
	}

	// the neighbouring cells around (1,1) each cut one corner
	for _, xy := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		if n := len(c.Cell(xy[0], xy[1])); n != 1 {
			t.Fatalf("cell %v emitted %d segments, expected 1", xy, n)
		}
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 segments in total, got %d", c.Len())
	}
	if c.Cell(2, 2) != nil && len(c.Cell(2, 2)) != 0 {
		t.Fatal("cell (2,2) is untouched")
	}
	if c.Cell(3, 0) != nil {
		t.Fatal("last column holds no cells")
	}
}

func TestSegmentsOrderedByCell(t *testing.T) {
	f := core.NewField(6, 6)
	f.Set(1, 1, 1)
	f.Set(4, 3, 1)
	tess := NewTessellator(1, 0.5)
	c := tess.Contour(f)

	var flat []Segment
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			flat = append(flat, c.Cell(x, y)...)
		}
	}
	if !slices.Equal(flat, c.Segments) {
		t.Fatal("segments must be grouped by cell in row-major order")
	}
}

func TestSaddleEmitsTwoSegments(t *testing.T) {
	// top-right and bottom-left set: case 5
	f := cellField(0, 1, 0, 1)
	tess := NewTessellator(10, 0.5)
	segs := tess.Contour(f).Segments
	if len(segs) != 2 {
		t.Fatalf("saddle emitted %d segments, expected 2", len(segs))
	}
	if segs[0] != (Segment{A: Point{X: 5, Y: 0}, B: Point{X: 0, Y: 5}}) {
		t.Fatalf("unexpected first saddle segment %v", segs[0])
	}
	if segs[1] != (Segment{A: Point{X: 10, Y: 5}, B: Point{X: 5, Y: 10}}) {
		t.Fatalf("unexpected second saddle segment %v", segs[1])
	}
}
