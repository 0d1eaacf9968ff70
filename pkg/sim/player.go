package sim

import (
	"math"

	"survivor/pkg/items"
	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

type Player struct {
	components.Body
	Speed         float64
	HP, MaxHP     int
	Level         int
	XP            float64
	XPToNextLevel float64
	Invincible    int // frames left
	Weapons       []Weapon
}

func newPlayer(x, y float64) *Player {
	return &Player{
		Body:          components.Body{X: x, Y: y, Radius: config.PlayerRadius},
		Speed:         config.PlayerSpeed,
		HP:            config.PlayerMaxHealth,
		MaxHP:         config.PlayerMaxHealth,
		Level:         1,
		XPToNextLevel: config.XPFirstLevel,
	}
}

// Update moves the player, resolves enemy overlap, keeps it on screen and
// ticks its weapons in acquisition order.
func (p *Player) Update(w *World) {
	if p.Invincible > 0 {
		p.Invincible--
	}

	// Movement, diagonals not normalized
	in := w.input
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}

	// Soft push away from every overlapping enemy
	for _, e := range w.enemies {
		b := e.GetBody()
		if !b.Alive() || !p.Overlaps(b) {
			continue
		}
		dx, dy := components.Direction(b.X, b.Y, p.X, p.Y)
		p.X += dx * config.PlayerPushStrength
		p.Y += dy * config.PlayerPushStrength
	}

	p.X = components.Clamp(p.X, p.Radius, w.width-p.Radius)
	p.Y = components.Clamp(p.Y, p.Radius, w.height-p.Radius)

	for _, wp := range p.Weapons {
		wp.Update(w)
	}
}

// TakeDamage is ignored while invincible or once the run is over.
func (p *Player) TakeDamage(w *World, amount int) {
	if p.Invincible > 0 || w.over {
		return
	}
	p.HP -= amount
	p.Invincible = config.InvincibilityFrames
	if p.HP <= 0 {
		p.HP = 0
		w.endGame()
	}
}

// GainXP adds experience and queues one upgrade offer per level gained.
func (p *Player) GainXP(w *World, amount float64) {
	p.XP += amount
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = math.Floor(p.XPToNextLevel * config.XPGrowth)

		w.log.Info().
			Int("level", p.Level).
			Float64("next", p.XPToNextLevel).
			Msg("Level up")
		w.queueLevelUp()
	}
}

// Weapon returns the owned weapon of the given kind.
func (p *Player) Weapon(kind items.WeaponKind) (Weapon, bool) {
	for _, wp := range p.Weapons {
		if wp.Kind() == kind {
			return wp, true
		}
	}
	return nil, false
}

// AddOrUpgradeWeapon levels an owned weapon, or adds a fresh level-1 one.
func (p *Player) AddOrUpgradeWeapon(kind items.WeaponKind) error {
	if wp, ok := p.Weapon(kind); ok {
		wp.Upgrade()
		return nil
	}
	wp, err := newWeapon(kind)
	if err != nil {
		return err
	}
	p.Weapons = append(p.Weapons, wp)
	return nil
}
