package sim

import "survivor/pkg/shared/components"

// NearestEnemy returns the closest living enemy to (x, y), or nil. Ties go
// to the enemy that comes first.
func NearestEnemy(enemies []Enemy, x, y float64) Enemy {
	var nearest Enemy
	best := 0.0
	for _, e := range enemies {
		b := e.GetBody()
		if !b.Alive() {
			continue
		}
		d := components.Distance(x, y, b.X, b.Y)
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	}
	return nearest
}

// Read-only views for renderers. Callers must not modify the returned
// slices; they are reused between ticks.

func (w *World) Player() *Player { return w.player }

func (w *World) Enemies() []Enemy { return w.enemies }

func (w *World) Projectiles() []*Projectile { return w.projectiles }

func (w *World) BoneProjectiles() []*BoneProjectile { return w.bones }

func (w *World) Gems() []*XpGem { return w.gems }

func (w *World) Effects() []*SlashEffect { return w.effects }
