// Package server drives a simulation without a window, for soak runs and
// balancing.
package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"survivor/pkg/shared/components"
	"survivor/pkg/sim"
)

// Autopilot decides the held directions for a tick.
type Autopilot func(tick int64) components.InputComponent

type RunnerOptions struct {
	TickRate  int   // ticks per second, 0 runs as fast as possible
	MaxTicks  int64 // 0 runs until game over
	Autopilot Autopilot
	Logger    *zerolog.Logger
}

// RunStats summarizes a finished run.
type RunStats struct {
	Ticks       int64
	Offers      int
	PeakEnemies int
	Kills       int
	Level       int
	Elapsed     time.Duration
	Over        bool
}

type Runner struct {
	world *sim.World
	opts  RunnerOptions
	log   zerolog.Logger
	stats RunStats
}

func NewRunner(world *sim.World, opts RunnerOptions) *Runner {
	if opts.Autopilot == nil {
		opts.Autopilot = CircleStrafe
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	r := &Runner{
		world: world,
		opts:  opts,
		log:   logger.With().Str("component", "runner").Logger(),
	}

	world.OnLevelUp(func(sim.Offer) { r.stats.Offers++ })
	world.AddSystem(sim.SystemFunc(func(w *sim.World) {
		if n := len(w.Enemies()); n > r.stats.PeakEnemies {
			r.stats.PeakEnemies = n
		}
	}))
	return r
}

// Run steps the world until game over, the tick limit, or ctx is done.
func (r *Runner) Run(ctx context.Context) RunStats {
	var tick <-chan time.Time
	if r.opts.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	r.log.Info().Int("tick_rate", r.opts.TickRate).Int64("max_ticks", r.opts.MaxTicks).Msg("Runner started")

	for !r.done() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.finish("cancelled")
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return r.finish("cancelled")
		}
		r.step()
	}

	if r.world.Over() {
		return r.finish("game over")
	}
	return r.finish("tick limit")
}

func (r *Runner) done() bool {
	if r.world.Over() {
		return true
	}
	return r.opts.MaxTicks > 0 && r.world.Ticks() >= r.opts.MaxTicks
}

func (r *Runner) step() {
	if _, ok := r.world.PendingOffer(); ok {
		if err := r.world.Choose(0); err != nil {
			r.log.Error().Err(err).Msg("Auto-pick failed")
		}
	}
	r.world.SetInput(r.opts.Autopilot(r.world.Ticks()))
	r.world.Step()
}

func (r *Runner) finish(reason string) RunStats {
	hud := r.world.HUD()
	r.stats.Ticks = r.world.Ticks()
	r.stats.Kills = hud.Kills
	r.stats.Level = hud.Level
	r.stats.Elapsed = r.world.Clock()
	r.stats.Over = hud.Over

	r.log.Info().
		Str("reason", reason).
		Int64("ticks", r.stats.Ticks).
		Dur("elapsed", r.stats.Elapsed).
		Int("kills", r.stats.Kills).
		Int("level", r.stats.Level).
		Int("offers", r.stats.Offers).
		Int("peak_enemies", r.stats.PeakEnemies).
		Msg("Run finished")
	return r.stats
}

// strafe is the compass walked by CircleStrafe, clockwise from east.
var strafe = []components.InputComponent{
	{Right: true},
	{Right: true, Down: true},
	{Down: true},
	{Down: true, Left: true},
	{Left: true},
	{Left: true, Up: true},
	{Up: true},
	{Up: true, Right: true},
}

// CircleStrafe walks a rough circle, turning every 90 ticks.
func CircleStrafe(tick int64) components.InputComponent {
	return strafe[(tick/90)%int64(len(strafe))]
}

// Idle never moves.
func Idle(int64) components.InputComponent {
	return components.InputComponent{}
}
