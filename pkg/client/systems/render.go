package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"survivor/pkg/items"
	"survivor/pkg/shared/config"
	"survivor/pkg/sim"
)

var (
	backgroundColor = color.RGBA{R: 20, G: 24, B: 32, A: 255}
	playerColor     = colornames.Dodgerblue
	gemColor        = colornames.Cyan
	shotColor       = colornames.Gold
	boneColor       = colornames.Whitesmoke
	auraColor       = color.NRGBA{R: 120, G: 200, B: 255, A: 90}
	slashColor      = colornames.White
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, w *sim.World) {
	screen.Fill(backgroundColor)

	for _, g := range w.Gems() {
		vector.DrawFilledCircle(screen, float32(g.X), float32(g.Y), float32(g.Radius), gemColor, true)
	}

	for _, e := range w.Enemies() {
		b := e.GetBody()
		if b.Dead {
			continue
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), e.Definition().Color, true)
	}

	for _, b := range w.BoneProjectiles() {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), boneColor, true)
	}
	for _, p := range w.Projectiles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), shotColor, true)
	}

	p := w.Player()
	if orbit, ok := p.Weapon(items.OrbitGuardian); ok {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(orbit.Stats().Radius), 2, auraColor, true)
	}

	for _, fx := range w.Effects() {
		drawSlash(screen, fx)
	}

	// Blink while invincible
	if p.Invincible == 0 || (p.Invincible/4)%2 == 1 {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), playerColor, true)
	}
}

// drawSlash strokes the arc as a short polyline, fading with the effect's life.
func drawSlash(screen *ebiten.Image, fx *sim.SlashEffect) {
	const segments = 12
	alpha := float64(fx.Life) / float64(fx.MaxLife)
	c := color.NRGBA{R: slashColor.R, G: slashColor.G, B: slashColor.B, A: uint8(255 * alpha)}

	start := fx.Angle - config.SlashHalfWidth
	step := 2 * config.SlashHalfWidth / segments
	px, py := fx.X+math.Cos(start)*fx.Range, fx.Y+math.Sin(start)*fx.Range
	for i := 1; i <= segments; i++ {
		a := start + step*float64(i)
		x, y := fx.X+math.Cos(a)*fx.Range, fx.Y+math.Sin(a)*fx.Range
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 3, c, true)
		px, py = x, y
	}
}
