package sim

import (
	"math"

	"survivor/pkg/characters"
	"survivor/pkg/shared/components"
)

// Projectile is a player shot. It damages every enemy it overlaps on the
// frame it connects, then goes away.
type Projectile struct {
	components.Body
	VX, VY float64
	Damage float64
}

func newProjectile(x, y, vx, vy, radius, damage float64) *Projectile {
	return &Projectile{
		Body:   components.Body{X: x, Y: y, Radius: radius},
		VX:     vx,
		VY:     vy,
		Damage: damage,
	}
}

func (p *Projectile) Update(w *World) {
	p.X += p.VX
	p.Y += p.VY

	for _, e := range w.enemies {
		b := e.GetBody()
		if !b.Alive() || !p.Overlaps(b) {
			continue
		}
		e.TakeDamage(w, p.Damage)
		p.Dead = true
	}

	if outside(w, &p.Body) {
		p.Dead = true
	}
}

// BoneProjectile is thrown by skeletons at the player.
type BoneProjectile struct {
	components.Body
	VX, VY float64
	Damage int
}

func newBoneProjectile(x, y, angle float64, def characters.CharacterDefinition) *BoneProjectile {
	return &BoneProjectile{
		Body:   components.Body{X: x, Y: y, Radius: def.ProjectileSize},
		VX:     math.Cos(angle) * def.ProjectileSpeed,
		VY:     math.Sin(angle) * def.ProjectileSpeed,
		Damage: def.ProjectileDmg,
	}
}

func (b *BoneProjectile) Update(w *World) {
	b.X += b.VX
	b.Y += b.VY

	if b.Overlaps(&w.player.Body) {
		w.player.TakeDamage(w, b.Damage)
		b.Dead = true
		return
	}

	if outside(w, &b.Body) {
		b.Dead = true
	}
}

// outside reports whether a centre left the arena. No margin.
func outside(w *World, b *components.Body) bool {
	return b.X < 0 || b.X > w.width || b.Y < 0 || b.Y > w.height
}
