package sim

import "survivor/pkg/shared/config"

// SlashEffect is the visible trace of an arc slash. It follows the player
// and never collides.
type SlashEffect struct {
	X, Y    float64
	Angle   float64
	Range   float64
	Life    int
	MaxLife int
	Dead    bool
}

func newSlashEffect(x, y, angle, reach float64) *SlashEffect {
	return &SlashEffect{
		X:       x,
		Y:       y,
		Angle:   angle,
		Range:   reach,
		Life:    config.SlashEffectLife,
		MaxLife: config.SlashEffectLife,
	}
}

func (fx *SlashEffect) Alive() bool { return !fx.Dead }

func (fx *SlashEffect) Update(w *World) {
	fx.X, fx.Y = w.player.X, w.player.Y
	fx.Life--
	if fx.Life <= 0 {
		fx.Dead = true
	}
}
