package seedbed

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Scene colors ---

var (
	skyColor      = color.RGBA{0x87, 0xb5, 0xe5, 0xff}
	cloudColor    = color.RGBA{0xf2, 0xf6, 0xfb, 0xff}
	soilColor     = color.RGBA{0x6b, 0x4a, 0x32, 0xff}
	soilLineColor = color.RGBA{0x5a, 0x3d, 0x28, 0xff}
	grassColor    = color.RGBA{0x4f, 0x8a, 0x3d, 0xff}
	stemColor     = color.RGBA{0x3a, 0x6e, 0x2e, 0xff}
	leafColor     = color.RGBA{0x57, 0x93, 0x41, 0xff}
	ringColor     = color.RGBA{0xff, 0xf3, 0xc4, 0xc0}
)

const (
	soilFraction = 0.42 // bottom share of the screen that is soil
	soilGridStep = 48.0
)

// Renderer draws a session's garden procedurally with filled vector
// shapes. It keeps no per-plant state; everything is derived from the
// garden, the live preview, and a clock used for idle motion.
type Renderer struct {
	Width  int
	Height int

	clock float64
}

// NewRenderer creates a renderer for the given logical screen size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Advance moves the renderer's idle-motion clock by dt seconds.
func (r *Renderer) Advance(dt float64) {
	r.clock += dt
}

// Draw renders the whole scene: backdrop, every plant at its live
// previewed transform, and a pulsing ring around the tended plant.
func (r *Renderer) Draw(dst *ebiten.Image, s *Session) {
	r.drawBackdrop(dst)

	g := s.Garden()
	pv := s.Preview()
	for _, p := range g.Plants() {
		pos, rot, scale := pv.Rendered(g, p)
		drawPlant(dst, p, pos, rot, scale)
	}

	if p := g.TendedPlant(); p != nil {
		pos, _, scale := pv.Rendered(g, p)
		pulse := 1 + 0.06*math.Sin(r.clock*4)
		radius := float32(plantHitRadius * scale * pulse)
		vector.StrokeCircle(dst, float32(pos.X), float32(pos.Y), radius, 2, ringColor, true)
	}
}

func (r *Renderer) drawBackdrop(dst *ebiten.Image) {
	w := float32(r.Width)
	h := float32(r.Height)
	soilTop := h * float32(1-soilFraction)

	vector.DrawFilledRect(dst, 0, 0, w, soilTop, skyColor, false)
	vector.DrawFilledRect(dst, 0, soilTop, w, h-soilTop, soilColor, false)
	vector.DrawFilledRect(dst, 0, soilTop-4, w, 8, grassColor, true)

	// Clouds drift and wrap.
	for i := 0; i < 3; i++ {
		cx := math.Mod(r.clock*12+float64(i)*float64(r.Width)/3, float64(r.Width)+160) - 80
		cy := 50 + 36*float64(i)
		drawCloud(dst, float32(cx), float32(cy))
	}

	// Furrow grid on the soil.
	for x := float32(soilGridStep); x < w; x += soilGridStep {
		vector.StrokeLine(dst, x, soilTop+8, x, h, 1, soilLineColor, false)
	}
	for y := soilTop + soilGridStep; y < h; y += soilGridStep {
		vector.StrokeLine(dst, 0, y, w, y, 1, soilLineColor, false)
	}
}

func drawCloud(dst *ebiten.Image, cx, cy float32) {
	vector.DrawFilledCircle(dst, cx-20, cy, 14, cloudColor, true)
	vector.DrawFilledCircle(dst, cx, cy-6, 18, cloudColor, true)
	vector.DrawFilledCircle(dst, cx+22, cy, 13, cloudColor, true)
}

// drawPlant renders one plant at an already-resolved transform. The
// geometry is authored in local units around the plant origin and pushed
// through the same affine the hit test and preview agree on.
func drawPlant(dst *ebiten.Image, p *Plant, pos Vec2, rotation, scale float64) {
	tr := plantTransform(pos, rotation, scale)
	switch p.Kind {
	case KindFlower:
		drawFlower(dst, tr, scale, p.Color)
	default:
		drawSprout(dst, tr, scale, p.Color)
	}
}

func drawSprout(dst *ebiten.Image, tr [6]float64, scale float64, clr Color) {
	strokeLocal(dst, tr, 0, 16, 0, -4, 3*scale, stemColor)
	fillCircleLocal(dst, tr, -7, 4, 5, scale, leafColor)
	fillCircleLocal(dst, tr, 7, 0, 5, scale, leafColor)
	fillCircleLocal(dst, tr, 0, -10, 7, scale, clr.toRGBA())
}

func drawFlower(dst *ebiten.Image, tr [6]float64, scale float64, clr Color) {
	strokeLocal(dst, tr, 0, 26, 0, 6, 3*scale, stemColor)
	fillCircleLocal(dst, tr, -9, 16, 5, scale, leafColor)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		fillCircleLocal(dst, tr, math.Cos(a)*11, math.Sin(a)*11, 7, scale, clr.toRGBA())
	}
	fillCircleLocal(dst, tr, 0, 0, 6, scale, lighten(clr, 0.45).toRGBA())
}

// fillCircleLocal fills a circle given in plant-local coordinates.
// Circles stay circles under this pipeline, so only the center goes
// through the affine and the radius scales uniformly.
func fillCircleLocal(dst *ebiten.Image, tr [6]float64, lx, ly, lr, scale float64, clr color.Color) {
	x, y := transformPoint(tr, lx, ly)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(lr*scale), clr, true)
}

func strokeLocal(dst *ebiten.Image, tr [6]float64, x0, y0, x1, y1, width float64, clr color.Color) {
	ax, ay := transformPoint(tr, x0, y0)
	bx, by := transformPoint(tr, x1, y1)
	vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), clr, true)
}

// lighten blends a color toward white by t in [0, 1].
func lighten(c Color, t float64) Color {
	return Color{
		R: c.R + (1-c.R)*t,
		G: c.G + (1-c.G)*t,
		B: c.B + (1-c.B)*t,
		A: c.A,
	}
}
