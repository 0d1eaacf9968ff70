package sim

import (
	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

type XpGem struct {
	components.Body
	Value int
}

func newXpGem(x, y float64, value int) *XpGem {
	return &XpGem{
		Body:  components.Body{X: x, Y: y, Radius: config.GemRadius},
		Value: value,
	}
}

// Update drifts the gem toward a nearby player and hands over its XP on
// contact. Both checks use the distance from before the drift.
func (g *XpGem) Update(w *World) {
	p := w.player
	dist := g.DistanceTo(&p.Body)

	if dist < config.GemMagnetRange {
		g.X += (p.X - g.X) * config.GemMagnetLerp
		g.Y += (p.Y - g.Y) * config.GemMagnetLerp
	}

	if dist < p.Radius+config.GemPickupPadding {
		g.Dead = true
		p.GainXP(w, float64(g.Value))
	}
}
