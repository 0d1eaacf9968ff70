package characters

import (
	"fmt"
	"image/color"
)

// EnemyKind tags the closed set of enemy variants.
type EnemyKind int

const (
	Zombie EnemyKind = iota + 1
	Bat
	Skeleton
)

func (k EnemyKind) String() string {
	switch k {
	case Zombie:
		return "zombie"
	case Bat:
		return "bat"
	case Skeleton:
		return "skeleton"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// CharacterDefinition represents the static configuration for an enemy kind.
// This acts as a Blueprint/Prefab for spawning entities.
type CharacterDefinition struct {
	Kind        EnemyKind
	Name        string
	Description string

	// Visuals
	Color  color.RGBA
	Radius float64

	// Stats
	MaxHealth     float64
	Speed         float64 // per tick
	SpeedJitter   float64 // random extra speed in [0, SpeedJitter), fixed at spawn
	XPValue       int
	ContactDamage int // per tick of contact, subject to invincibility

	// Ranged behaviour (zero for melee kinds)
	PreferredRange  float64
	RetreatBand     float64 // retreat when closer than PreferredRange-RetreatBand
	ShootInterval   int     // ticks
	ProjectileSpeed float64
	ProjectileSize  float64
	ProjectileDmg   int
}

var Registry = make(map[EnemyKind]CharacterDefinition)

func Register(char CharacterDefinition) {
	if _, exists := Registry[char.Kind]; exists {
		panic("Duplicate character kind: " + char.Kind.String())
	}
	Registry[char.Kind] = char
}

func Get(kind EnemyKind) (CharacterDefinition, bool) {
	c, ok := Registry[kind]
	return c, ok
}

// MustGet is Get for kinds registered in this package.
func MustGet(kind EnemyKind) CharacterDefinition {
	c, ok := Registry[kind]
	if !ok {
		panic("Unknown character kind: " + kind.String())
	}
	return c
}
