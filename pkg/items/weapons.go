package items

const (
	IDMagicWand     = "magic_wand"
	IDOrbitGuardian = "orbit_guardian"
	IDArcSlasher    = "arc_slasher"
)

func init() {
	// Homing bolts at the nearest enemy
	Register(ItemDefinition{
		ID:          IDMagicWand,
		Name:        "Magic Wand",
		Type:        ItemTypeWeapon,
		Description: "Fires at the nearest enemy. Upgrade: +1 projectile, +5 damage.",
		Weapon:      MagicWand,
		WeaponStats: WeaponStats{
			Damage:           12,
			Cooldown:         90,
			ProjectileCount:  1,
			ProjectileSpeed:  4,
			ProjectileRadius: 6,
		},
		Growth: WeaponStats{
			Damage:          5,
			ProjectileCount: 1,
		},
	})

	// Damage aura
	Register(ItemDefinition{
		ID:          IDOrbitGuardian,
		Name:        "Orbit Guardian",
		Type:        ItemTypeWeapon,
		Description: "Burns everything inside the aura. Upgrade: +radius, +damage.",
		Weapon:      OrbitGuardian,
		WeaponStats: WeaponStats{
			Damage: 0.5,
			Radius: 80,
		},
		Growth: WeaponStats{
			Damage: 0.2,
			Radius: 20,
		},
	})

	// Side slashes
	Register(ItemDefinition{
		ID:          IDArcSlasher,
		Name:        "Arc Slasher",
		Type:        ItemTypeWeapon,
		Description: "Slashes to the sides. Upgrade: more simultaneous directions.",
		Weapon:      ArcSlasher,
		WeaponStats: WeaponStats{
			Damage:   40,
			Cooldown: 60,
			Range:    100,
		},
		Growth: WeaponStats{
			Damage: 10,
			Range:  10,
		},
	})
}
