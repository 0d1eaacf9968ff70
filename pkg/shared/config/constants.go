package config

import "math"

const (
	// Screen Dimensions (initial window; the simulation follows resizes)
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Simulation clock. Every speed below is per tick.
	TicksPerSecond = 60

	// Player
	PlayerRadius        = 15.0
	PlayerSpeed         = 2.0
	PlayerMaxHealth     = 100
	InvincibilityFrames = 30
	PlayerPushStrength  = 1.5 // soft push per overlapping enemy per tick

	// Progression
	XPFirstLevel = 50.0
	XPGrowth     = 1.3

	// Enemies
	EnemyRepulsion = 0.5 // one-sided zombie separation per tick
	BatCullMargin  = 200.0

	// Pickups
	GemRadius        = 5.0
	GemMagnetRange   = 100.0
	GemMagnetLerp    = 0.15
	GemPickupPadding = 10.0

	// Effects
	SlashEffectLife = 10
	SlashHalfWidth  = math.Pi / 3

	// Keybinding actions
	ActionUp     = "Up"
	ActionDown   = "Down"
	ActionLeft   = "Left"
	ActionRight  = "Right"
	ActionPick1  = "Pick1"
	ActionPick2  = "Pick2"
	ActionPick3  = "Pick3"
	ActionRetry  = "Retry"
	ActionDebug  = "Debug"
	EnvPrefix    = "SURVIVOR_"
	DefaultTitle = "Survivor"
)

// Weapons
const (
	ProjectileFanSpacing = 12.0 // distance between fan rows of the magic wand
)

// Spawning (durations in milliseconds of game clock)
const (
	SpawnEdgeOffset  = 40.0
	HordeEdgeOffset  = 50.0
	HordeJitter      = 80.0
	SwarmEdgeOffset  = 50.0
	SwarmJitter      = 100.0
	SwarmIntervalMs  = 12000
	SwarmMinElapsed  = 15.0
	FirstSpawnMs     = 1000
	FirstHordeMs     = 10000
	FirstSwarmMs     = 15000
	SkeletonBackstep = 0.5 // retreat speed factor
)
