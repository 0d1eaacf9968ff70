package items

import "fmt"

type ItemType int

const (
	ItemTypeWeapon ItemType = iota
	ItemTypeConsumable
)

// WeaponKind tags the closed set of weapons a player can own.
type WeaponKind int

const (
	MagicWand WeaponKind = iota + 1
	OrbitGuardian
	ArcSlasher
)

func (k WeaponKind) String() string {
	switch k {
	case MagicWand:
		return "magic_wand"
	case OrbitGuardian:
		return "orbit_guardian"
	case ArcSlasher:
		return "arc_slasher"
	}
	return fmt.Sprintf("WeaponKind(%d)", int(k))
}

// WeaponStats are the tunables of a weapon. The same shape describes the
// level-1 values and the additive growth applied per upgrade.
type WeaponStats struct {
	Damage           float64
	Cooldown         int     // ticks between activations, 0 = every tick
	Radius           float64 // aura radius
	Range            float64 // slash reach
	ProjectileCount  int
	ProjectileSpeed  float64
	ProjectileRadius float64
}

// Add applies growth in place.
func (s *WeaponStats) Add(growth WeaponStats) {
	s.Damage += growth.Damage
	s.Cooldown += growth.Cooldown
	s.Radius += growth.Radius
	s.Range += growth.Range
	s.ProjectileCount += growth.ProjectileCount
	s.ProjectileSpeed += growth.ProjectileSpeed
	s.ProjectileRadius += growth.ProjectileRadius
}

// ConsumableEffect describes an instant upgrade.
type ConsumableEffect struct {
	HealFraction float64 // of max health
	SpeedBonus   float64
}

// ItemDefinition represents the static data for an upgrade choice.
type ItemDefinition struct {
	ID          string // Unique string ID e.g. "magic_wand"
	Name        string
	Type        ItemType
	Description string

	// Weapon data (ItemTypeWeapon)
	Weapon      WeaponKind
	WeaponStats WeaponStats // level 1
	Growth      WeaponStats // per upgrade

	// Consumable data (ItemTypeConsumable)
	Effect ConsumableEffect
}

var Registry = make(map[string]ItemDefinition)

// UpgradePool lists every upgrade a level-up offer can draw from, in order.
var UpgradePool = []string{
	IDMagicWand,
	IDOrbitGuardian,
	IDArcSlasher,
	IDHealthPotion,
	IDSwiftBoots,
}

func Register(item ItemDefinition) {
	if _, exists := Registry[item.ID]; exists {
		panic("Duplicate item ID: " + item.ID)
	}
	Registry[item.ID] = item
}

func Get(id string) (ItemDefinition, bool) {
	item, ok := Registry[id]
	return item, ok
}

// ForWeapon finds the definition backing a weapon kind.
func ForWeapon(kind WeaponKind) (ItemDefinition, bool) {
	for _, item := range Registry {
		if item.Type == ItemTypeWeapon && item.Weapon == kind {
			return item, true
		}
	}
	return ItemDefinition{}, false
}
