//go:build ebiten

package app

import (
	"image/color"

	"marching-squares/internal/brush"
	"marching-squares/internal/canvas"
	"marching-squares/internal/core"
	"marching-squares/internal/render"
	"marching-squares/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	scatterCount  = 12
	underlayAlpha = 96
)

// Game adapts a canvas to the ebiten.Game interface. Each Update runs input
// intake, brush, then tessellation; Draw only reads the cached contour.
type Game struct {
	state   *canvas.State
	painter *render.Painter
	hud     *ui.HUD
	clock   *core.FrameClock

	fieldW, fieldH int
	seed           int64
	showField      bool

	cursorX, cursorY int
}

// New constructs a Game for the provided canvas.
func New(state *canvas.State, hudWidth int, seed int64) *Game {
	size := state.Size()
	tile := state.Tile()
	fieldW := int(float64(size.W) * tile)
	fieldH := int(float64(size.H) * tile)
	return &Game{
		state:   state,
		painter: render.NewPainter(size.W, size.H, tile),
		hud:     ui.NewHUD(state, hudWidth, fieldH),
		clock:   core.NewFrameClock(0),
		fieldW:  fieldW,
		fieldH:  fieldH,
		seed:    seed,
	}
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	return g.fieldW + g.hud.Width(), g.fieldH
}

// Update handles per-frame input, painting and contour extraction.
func (g *Game) Update() error {
	dt := g.clock.Seconds()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.state.SetMode(core.ModeGrid)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.state.SetMode(core.ModeContour)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.state.SetMode(core.ModeInterpolatingContour)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showField = !g.showField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.state.Scatter(g.seed, scatterCount)
		g.seed++
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.state.AdjustThreshold(1, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.state.AdjustThreshold(-1, dt)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.state.ScaleRadius(wy)
	}

	overPanel := g.hud.Update(g.fieldW)
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	if !overPanel {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.state.PaintPixel(g.cursorX, g.cursorY, brush.Add, dt)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			g.state.PaintPixel(g.cursorX, g.cursorY, brush.Remove, dt)
		}
	}

	if g.state.Mode().Contoured() {
		g.state.Contour()
	}
	return nil
}

// Draw renders the field or its contour, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	field := g.state.Field()
	if g.state.Mode().Contoured() {
		if g.showField {
			g.painter.DrawUnderlay(screen, field, underlayAlpha)
		}
		g.painter.DrawSegments(screen, g.state.Contour().Segments)
	} else {
		g.painter.DrawSamples(screen, field)
	}
	if g.cursorX < g.fieldW {
		bx, by := g.state.BrushCentre(g.cursorX, g.cursorY)
		g.painter.DrawBrush(screen, bx, by, g.state.Radius(), color.RGBA{R: 200, G: 60, B: 60, A: 255})
	}
	g.hud.Draw(screen, g.fieldW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
