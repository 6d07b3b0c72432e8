//go:build ebiten

package render

import (
	"image/color"

	"marching-squares/internal/contour"
	"marching-squares/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws field samples and contour segments. Samples sit at tile
// centres, so segments are shifted by half a tile to line up with them.
type Painter struct {
	tile float64

	DotRadius float32
	LineWidth float32
	LineColor color.Color

	underlay *ebiten.Image
	buf      []byte
	w, h     int
}

// NewPainter returns a painter for a field of w*h samples.
func NewPainter(w, h int, tile float64) *Painter {
	return &Painter{
		tile:      tile,
		DotRadius: 2,
		LineWidth: 1,
		LineColor: color.Black,
		underlay:  ebiten.NewImage(w, h),
		buf:       make([]byte, 4*w*h),
		w:         w,
		h:         h,
	}
}

// DrawSamples draws one shaded dot per sample.
func (p *Painter) DrawSamples(dst *ebiten.Image, f *core.Field) {
	half := p.tile / 2
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			cx := float32(float64(x)*p.tile + half)
			cy := float32(float64(y)*p.tile + half)
			vector.DrawFilledCircle(dst, cx, cy, p.DotRadius, RampColor(f.At(x, y)), false)
		}
	}
}

// DrawUnderlay blits the field as a translucent grey image scaled to tiles.
func (p *Painter) DrawUnderlay(dst *ebiten.Image, f *core.Field, alpha uint8) {
	if f.W != p.w || f.H != p.h {
		return
	}
	fillRampRGBA(p.buf, f.Values(), alpha)
	p.underlay.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.tile, p.tile)
	dst.DrawImage(p.underlay, op)
}

// DrawSegments strokes every segment.
func (p *Painter) DrawSegments(dst *ebiten.Image, segs []contour.Segment) {
	half := p.tile / 2
	for _, s := range segs {
		vector.StrokeLine(dst,
			float32(s.A.X+half), float32(s.A.Y+half),
			float32(s.B.X+half), float32(s.B.Y+half),
			p.LineWidth, p.LineColor, false)
	}
}

// DrawBrush outlines the brush footprint centred on (x, y) in pixels.
func (p *Painter) DrawBrush(dst *ebiten.Image, x, y, radius float64, col color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(radius), 1, col, false)
}
