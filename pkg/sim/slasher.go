package sim

import (
	"math"

	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

// ArcSlasher cuts wide arcs to the sides of the player. Level 1 alternates
// right and left, level 2 cuts both, level 3 and above add up and down.
type ArcSlasher struct {
	weaponBase
	flip bool
}

func (a *ArcSlasher) Update(w *World) {
	a.tick(w, a.fire)
}

// Arcs returns the headings of the next activation and advances the side
// toggle for level 1.
func (a *ArcSlasher) Arcs() []float64 {
	switch {
	case a.level >= 3:
		return []float64{0, math.Pi, math.Pi / 2, -math.Pi / 2}
	case a.level == 2:
		return []float64{0, math.Pi}
	}
	angle := 0.0
	if a.flip {
		angle = math.Pi
	}
	a.flip = !a.flip
	return []float64{angle}
}

func (a *ArcSlasher) fire(w *World) bool {
	p := w.player
	for _, arc := range a.Arcs() {
		for _, e := range w.enemies {
			b := e.GetBody()
			if !b.Alive() {
				continue
			}
			if p.DistanceTo(b) >= a.stats.Range {
				continue
			}
			diff := components.NormalizeAngle(components.Angle(p.X, p.Y, b.X, b.Y) - arc)
			if math.Abs(diff) < config.SlashHalfWidth {
				e.TakeDamage(w, a.stats.Damage)
			}
		}
		w.effects = append(w.effects, newSlashEffect(p.X, p.Y, arc, a.stats.Range))
	}
	return true
}
