package sim

import (
	"github.com/pkg/errors"

	"survivor/pkg/items"
)

// ErrUnknownWeapon is returned for kinds with no registered definition.
var ErrUnknownWeapon = errors.New("unknown weapon kind")

// Weapon is implemented by every player weapon. A player owns at most one
// weapon per kind.
type Weapon interface {
	Kind() items.WeaponKind
	Level() int
	Stats() items.WeaponStats
	Update(w *World)
	Upgrade()

	// fire activates the weapon once, ignoring the cooldown. It reports
	// whether anything happened.
	fire(w *World) bool
}

type weaponBase struct {
	kind     items.WeaponKind
	level    int
	stats    items.WeaponStats
	growth   items.WeaponStats
	cooldown int
}

func (b *weaponBase) Kind() items.WeaponKind { return b.kind }

func (b *weaponBase) Level() int { return b.level }

func (b *weaponBase) Stats() items.WeaponStats { return b.stats }

// Cooldown is the number of ticks until the next activation.
func (b *weaponBase) Cooldown() int { return b.cooldown }

func (b *weaponBase) Upgrade() {
	b.level++
	b.stats.Add(b.growth)
}

// tick counts the cooldown down, or fires and restarts it. A weapon that
// had nothing to fire at stays ready.
func (b *weaponBase) tick(w *World, fire func(*World) bool) {
	if b.cooldown > 0 {
		b.cooldown--
		return
	}
	if fire(w) {
		b.cooldown = b.stats.Cooldown
	}
}

func newWeapon(kind items.WeaponKind) (Weapon, error) {
	def, ok := items.ForWeapon(kind)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownWeapon, "kind %d", int(kind))
	}
	base := weaponBase{
		kind:   kind,
		level:  1,
		stats:  def.WeaponStats,
		growth: def.Growth,
	}

	switch kind {
	case items.MagicWand:
		return &MagicWand{weaponBase: base}, nil
	case items.OrbitGuardian:
		return &OrbitGuardian{weaponBase: base}, nil
	case items.ArcSlasher:
		return &ArcSlasher{weaponBase: base}, nil
	}
	return nil, errors.Wrapf(ErrUnknownWeapon, "kind %s", kind)
}
