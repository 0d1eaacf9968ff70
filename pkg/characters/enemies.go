package characters

import "image/color"

func init() {
	// Zombie (Green): slow homing swarm filler
	Register(CharacterDefinition{
		Kind:          Zombie,
		Name:          "Zombie",
		Description:   "Shambles straight at you and shoves its neighbours aside.",
		Color:         color.RGBA{R: 46, G: 204, B: 113, A: 255},
		Radius:        12,
		MaxHealth:     30,
		Speed:         0.8,
		SpeedJitter:   0.4,
		XPValue:       10,
		ContactDamage: 10,
	})

	// Bat (Purple): fixed heading, never retargets
	Register(CharacterDefinition{
		Kind:          Bat,
		Name:          "Bat",
		Description:   "Dives along one line and leaves the screen.",
		Color:         color.RGBA{R: 142, G: 68, B: 173, A: 255},
		Radius:        10,
		MaxHealth:     15,
		Speed:         3,
		XPValue:       20,
		ContactDamage: 10,
	})

	// Skeleton (Grey): keeps its distance and throws bones
	Register(CharacterDefinition{
		Kind:            Skeleton,
		Name:            "Skeleton",
		Description:     "Holds range and lobs bones every four seconds.",
		Color:           color.RGBA{R: 189, G: 195, B: 199, A: 255},
		Radius:          14,
		MaxHealth:       20,
		Speed:           1.0,
		XPValue:         30,
		ContactDamage:   5,
		PreferredRange:  250,
		RetreatBand:     50,
		ShootInterval:   240,
		ProjectileSpeed: 2.5,
		ProjectileSize:  5,
		ProjectileDmg:   15,
	})
}
