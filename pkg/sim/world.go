// Package sim is the fixed-tick survival simulation: one World per run,
// advanced by Step and observed through read-only views.
package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"survivor/pkg/items"
	"survivor/pkg/shared/components"
	"survivor/pkg/shared/config"
)

// Options configures a new World. The zero value is a default run.
type Options struct {
	Width, Height float64 // defaults to the configured screen size

	// Rand overrides the random source. When nil a source is seeded from
	// Seed, or from the wall clock when Seed is 0.
	Rand *rand.Rand
	Seed int64

	Logger *zerolog.Logger // defaults to a no-op logger

	// StartingWeapons defaults to a single magic wand when nil. A non-nil
	// empty slice starts the run unarmed.
	StartingWeapons []items.WeaponKind

	DisableDirector bool
}

// World holds every entity of a single run. It is not safe for concurrent use.
type World struct {
	id            uuid.UUID
	width, height float64
	rng           *rand.Rand
	log           zerolog.Logger

	player      *Player
	enemies     []Enemy
	projectiles []*Projectile
	bones       []*BoneProjectile
	gems        []*XpGem
	effects     []*SlashEffect

	director        *Director
	directorEnabled bool
	input           components.InputComponent

	ticks  int64
	kills  int
	paused bool
	over   bool

	gameOver        GameOverEvent
	pendingLevelUps int
	offer           *Offer
	onLevelUp       []func(Offer)
	onGameOver      []func(GameOverEvent)

	systems []System
}

func NewWorld(opts Options) (*World, error) {
	w := &World{
		id:              uuid.New(),
		width:           opts.Width,
		height:          opts.Height,
		rng:             opts.Rand,
		directorEnabled: !opts.DisableDirector,
		director:        newDirector(),
	}
	if w.width <= 0 {
		w.width = config.ScreenWidth
	}
	if w.height <= 0 {
		w.height = config.ScreenHeight
	}

	seed := opts.Seed
	if w.rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		w.rng = rand.New(rand.NewSource(seed))
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	w.log = logger.With().Str("run", w.id.String()).Logger()

	w.player = newPlayer(w.width/2, w.height/2)
	starting := opts.StartingWeapons
	if starting == nil {
		starting = []items.WeaponKind{items.MagicWand}
	}
	for _, kind := range starting {
		if err := w.player.AddOrUpgradeWeapon(kind); err != nil {
			return nil, err
		}
	}

	w.systems = defaultSystems()

	w.log.Info().
		Int64("seed", seed).
		Float64("width", w.width).
		Float64("height", w.height).
		Msg("Run started")
	return w, nil
}

// Step advances the simulation by one tick. It does nothing while an
// upgrade offer is pending or after the game is over.
func (w *World) Step() {
	if w.over || w.paused {
		return
	}
	w.ticks++
	for _, s := range w.systems {
		s.Update(w)
		if w.over {
			return
		}
	}
}

func (w *World) ID() uuid.UUID { return w.id }

func (w *World) Ticks() int64 { return w.ticks }

// Clock is the game time, derived from the tick count alone.
func (w *World) Clock() time.Duration {
	return time.Duration(w.ticks * int64(time.Second) / config.TicksPerSecond)
}

func (w *World) ElapsedSeconds() float64 {
	return w.Clock().Seconds()
}

func (w *World) Kills() int { return w.kills }

func (w *World) Paused() bool { return w.paused }

func (w *World) Over() bool { return w.over }

func (w *World) Rand() *rand.Rand { return w.rng }

func (w *World) Bounds() (float64, float64) {
	return w.width, w.height
}

// SetBounds resizes the arena. Non-positive sizes are ignored.
func (w *World) SetBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
}

func (w *World) SetInput(in components.InputComponent) {
	w.input = in
}

func (w *World) Director() *Director { return w.director }

// Logger returns the run-scoped logger.
func (w *World) Logger() *zerolog.Logger { return &w.log }

func (w *World) endGame() {
	if w.over {
		return
	}
	w.over = true
	w.gameOver = GameOverEvent{
		RunID:   w.id,
		Elapsed: w.Clock(),
		Level:   w.player.Level,
		Kills:   w.kills,
	}
	w.log.Info().
		Dur("elapsed", w.gameOver.Elapsed).
		Int("level", w.gameOver.Level).
		Int("kills", w.gameOver.Kills).
		Msg("Game over")
	for _, fn := range w.onGameOver {
		fn(w.gameOver)
	}
}

// compact keeps the live entries of s in order and zeroes the tail.
func compact[T any](s []T, alive func(T) bool) []T {
	kept := s[:0]
	for _, v := range s {
		if alive(v) {
			kept = append(kept, v)
		}
	}
	clear(s[len(kept):])
	return kept
}
