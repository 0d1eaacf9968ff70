package sim

import (
	"math"

	"survivor/pkg/characters"
	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

// Enemy is implemented by every hostile variant.
type Enemy interface {
	Kind() characters.EnemyKind
	Definition() characters.CharacterDefinition
	GetBody() *components.Body
	HP() float64
	Update(w *World)
	TakeDamage(w *World, amount float64)
}

type enemyBase struct {
	components.Body
	def   characters.CharacterDefinition
	hp    float64
	speed float64
}

func newEnemyBase(w *World, kind characters.EnemyKind, x, y float64) enemyBase {
	def := characters.MustGet(kind)
	speed := def.Speed
	if def.SpeedJitter > 0 {
		speed += w.rng.Float64() * def.SpeedJitter
	}
	return enemyBase{
		Body:  components.Body{X: x, Y: y, Radius: def.Radius},
		def:   def,
		hp:    def.MaxHealth,
		speed: speed,
	}
}

func (e *enemyBase) Kind() characters.EnemyKind { return e.def.Kind }

func (e *enemyBase) GetBody() *components.Body { return &e.Body }

func (e *enemyBase) HP() float64 { return e.hp }

func (e *enemyBase) Speed() float64 { return e.speed }

func (e *enemyBase) Definition() characters.CharacterDefinition { return e.def }

// TakeDamage kills the enemy once and drops its gem. Later hits are no-ops.
func (e *enemyBase) TakeDamage(w *World, amount float64) {
	if e.Dead {
		return
	}
	e.hp -= amount
	if e.hp <= 0 {
		e.hp = 0
		e.Dead = true
		w.kills++
		w.gems = append(w.gems, newXpGem(e.X, e.Y, e.def.XPValue))
	}
}

// touch deals contact damage when dist is inside both radii.
func (e *enemyBase) touch(w *World, dist float64) {
	if dist < e.Radius+w.player.Radius {
		w.player.TakeDamage(w, e.def.ContactDamage)
	}
}

func (e *enemyBase) moveToward(x, y, speed float64) {
	dx, dy := components.Direction(e.X, e.Y, x, y)
	e.X += dx * speed
	e.Y += dy * speed
}

// Zombie homes on the player and shoves itself out of crowds.
type Zombie struct {
	enemyBase
}

func (z *Zombie) Update(w *World) {
	p := w.player
	dist := z.DistanceTo(&p.Body)

	for _, other := range w.enemies {
		ob := other.GetBody()
		if ob == &z.Body || !ob.Alive() || !z.Overlaps(ob) {
			continue
		}
		dx, dy := components.Direction(ob.X, ob.Y, z.X, z.Y)
		z.X += dx * config.EnemyRepulsion
		z.Y += dy * config.EnemyRepulsion
	}

	z.moveToward(p.X, p.Y, z.speed)
	z.touch(w, dist)
}

// Bat flies along the heading it spawned with.
type Bat struct {
	enemyBase
	VX, VY float64
}

func (b *Bat) Update(w *World) {
	b.X += b.VX
	b.Y += b.VY

	m := config.BatCullMargin
	if b.X < -m || b.X > w.width+m || b.Y < -m || b.Y > w.height+m {
		b.Dead = true
		return
	}

	b.touch(w, b.DistanceTo(&w.player.Body))
}

// Skeleton keeps its preferred range and throws bones on a timer.
type Skeleton struct {
	enemyBase
	ShootTimer int
}

func (s *Skeleton) Update(w *World) {
	p := w.player
	dist := s.DistanceTo(&p.Body)

	switch {
	case dist > s.def.PreferredRange:
		s.moveToward(p.X, p.Y, s.speed)
	case dist < s.def.PreferredRange-s.def.RetreatBand:
		s.moveToward(p.X, p.Y, -s.speed*config.SkeletonBackstep)
	}

	if s.ShootTimer <= 0 {
		angle := components.Angle(s.X, s.Y, p.X, p.Y)
		w.bones = append(w.bones, newBoneProjectile(s.X, s.Y, angle, s.def))
		s.ShootTimer = s.def.ShootInterval
	} else {
		s.ShootTimer--
	}

	s.touch(w, dist)
}

// SpawnEnemy places a new enemy of the given kind. Bats aim at the player.
func (w *World) SpawnEnemy(kind characters.EnemyKind, x, y float64) Enemy {
	if kind == characters.Bat {
		return w.SpawnBatWithAngle(x, y, components.Angle(x, y, w.player.X, w.player.Y))
	}

	var e Enemy
	switch kind {
	case characters.Skeleton:
		e = &Skeleton{enemyBase: newEnemyBase(w, kind, x, y)}
	default:
		e = &Zombie{enemyBase: newEnemyBase(w, characters.Zombie, x, y)}
	}
	w.enemies = append(w.enemies, e)
	return e
}

// SpawnBatWithAngle places a bat flying along a fixed heading.
func (w *World) SpawnBatWithAngle(x, y, angle float64) Enemy {
	b := &Bat{enemyBase: newEnemyBase(w, characters.Bat, x, y)}
	b.VX = math.Cos(angle) * b.speed
	b.VY = math.Sin(angle) * b.speed
	w.enemies = append(w.enemies, b)
	return b
}
