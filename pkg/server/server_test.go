package server

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivor/pkg/shared/components"
	"survivor/pkg/sim"
)

func newWorld(t *testing.T, opts sim.Options) *sim.World {
	t.Helper()
	opts.Rand = rand.New(rand.NewSource(5))
	w, err := sim.NewWorld(opts)
	require.NoError(t, err)
	return w
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	w := newWorld(t, sim.Options{DisableDirector: true})
	stats := NewRunner(w, RunnerOptions{MaxTicks: 120}).Run(context.Background())

	assert.Equal(t, int64(120), stats.Ticks)
	assert.False(t, stats.Over)
	assert.Equal(t, 2.0, stats.Elapsed.Seconds())
}

func TestRunHonoursCancelledContext(t *testing.T) {
	w := newWorld(t, sim.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats := NewRunner(w, RunnerOptions{MaxTicks: 1000}).Run(ctx)
	assert.Zero(t, stats.Ticks)
}

func TestRunThrottled(t *testing.T) {
	w := newWorld(t, sim.Options{DisableDirector: true})
	stats := NewRunner(w, RunnerOptions{TickRate: 1000, MaxTicks: 5}).Run(context.Background())
	assert.Equal(t, int64(5), stats.Ticks)
}

func TestRunAutoPicksOffers(t *testing.T) {
	w := newWorld(t, sim.Options{DisableDirector: true})
	w.Player().GainXP(w, 115)
	require.True(t, w.Paused())

	stats := NewRunner(w, RunnerOptions{MaxTicks: 10}).Run(context.Background())

	assert.False(t, w.Paused())
	assert.Equal(t, int64(10), stats.Ticks)
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, 1, stats.Offers, "the runner only sees offers presented after it attached")
}

func TestRunTracksPeakEnemies(t *testing.T) {
	w := newWorld(t, sim.Options{DisableDirector: true})
	w.SpawnBatSwarm(8)

	stats := NewRunner(w, RunnerOptions{MaxTicks: 1, Autopilot: Idle}).Run(context.Background())
	assert.Equal(t, 8, stats.PeakEnemies)
}

func TestRunEndsOnGameOver(t *testing.T) {
	w := newWorld(t, sim.Options{DisableDirector: true, StartingWeapons: nil})
	p := w.Player()
	p.HP = 1
	w.SpawnBatWithAngle(p.X+20, p.Y, 0)

	stats := NewRunner(w, RunnerOptions{MaxTicks: 100, Autopilot: Idle}).Run(context.Background())
	assert.True(t, stats.Over)
	assert.Equal(t, int64(1), stats.Ticks)
}

func TestCircleStrafe(t *testing.T) {
	assert.Equal(t, components.InputComponent{Right: true}, CircleStrafe(0))
	assert.Equal(t, components.InputComponent{Right: true}, CircleStrafe(89))
	assert.Equal(t, components.InputComponent{Right: true, Down: true}, CircleStrafe(90))
	assert.Equal(t, components.InputComponent{Right: true}, CircleStrafe(8*90))
}
