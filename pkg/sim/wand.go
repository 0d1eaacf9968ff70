package sim

import (
	"math"

	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

// MagicWand shoots a fan of projectiles at the nearest enemy.
type MagicWand struct {
	weaponBase
}

func (m *MagicWand) Update(w *World) {
	m.tick(w, m.fire)
}

func (m *MagicWand) fire(w *World) bool {
	p := w.player
	target := NearestEnemy(w.enemies, p.X, p.Y)
	if target == nil {
		return false
	}

	tb := target.GetBody()
	angle := components.Angle(p.X, p.Y, tb.X, tb.Y)
	vx := math.Cos(angle) * m.stats.ProjectileSpeed
	vy := math.Sin(angle) * m.stats.ProjectileSpeed

	for _, pos := range FanPositions(p.X, p.Y, angle, m.stats.ProjectileCount) {
		w.projectiles = append(w.projectiles,
			newProjectile(pos.X, pos.Y, vx, vy, m.stats.ProjectileRadius, m.stats.Damage))
	}
	return true
}

// FanPositions lays out count spawn points behind (x, y) for a volley
// heading along angle. The first shot starts at the owner, the rest fall
// back in rows that alternate right and left.
func FanPositions(x, y, angle float64, count int) []components.Point {
	fx, fy := math.Cos(angle), math.Sin(angle)
	rx, ry := math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2)

	points := make([]components.Point, 0, count)
	for i := 0; i < count; i++ {
		row := float64((i + 1) / 2)
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		back := row * config.ProjectileFanSpacing
		lateral := back * side
		points = append(points, components.Point{
			X: x - fx*back + rx*lateral,
			Y: y - fy*back + ry*lateral,
		})
	}
	return points
}
