package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivor/pkg/characters"
	"survivor/pkg/items"
)

// newTestWorld builds a quiet 1280x720 arena with the player centred at
// (640, 360), no director and only the given weapons.
func newTestWorld(t *testing.T, weapons ...items.WeaponKind) *World {
	t.Helper()
	if weapons == nil {
		weapons = []items.WeaponKind{}
	}
	w, err := NewWorld(Options{
		Width:           1280,
		Height:          720,
		Rand:            rand.New(rand.NewSource(1)),
		StartingWeapons: weapons,
		DisableDirector: true,
	})
	require.NoError(t, err)
	return w
}

func TestNewWorldDefaults(t *testing.T) {
	w, err := NewWorld(Options{Seed: 7})
	require.NoError(t, err)

	width, height := w.Bounds()
	assert.Equal(t, 1280.0, width)
	assert.Equal(t, 720.0, height)

	p := w.Player()
	assert.Equal(t, 640.0, p.X)
	assert.Equal(t, 360.0, p.Y)
	assert.Equal(t, 100, p.HP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 50.0, p.XPToNextLevel)

	require.Len(t, p.Weapons, 1)
	assert.Equal(t, items.MagicWand, p.Weapons[0].Kind())
	assert.Equal(t, 1, p.Weapons[0].Level())

	assert.Zero(t, w.Clock())
	assert.NotEqual(t, w.ID().String(), "")
}

func TestNewWorldRejectsUnknownWeapon(t *testing.T) {
	_, err := NewWorld(Options{StartingWeapons: []items.WeaponKind{items.WeaponKind(9)}})
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

func TestStepAdvancesClock(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 60; i++ {
		w.Step()
	}
	assert.Equal(t, int64(60), w.Ticks())
	assert.Equal(t, time.Second, w.Clock())
	assert.InDelta(t, 1.0, w.HUD().ElapsedSeconds, 1e-9)
}

func TestPausedWorldDoesNotTick(t *testing.T) {
	w := newTestWorld(t)
	w.Step()

	w.Player().GainXP(w, 50)
	require.True(t, w.Paused())

	w.Step()
	w.Step()
	assert.Equal(t, int64(1), w.Ticks(), "the clock freezes while an offer is pending")
}

func TestGameOverSkipsRemainingPhases(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	p.HP = 5

	w.SpawnEnemy(characters.Zombie, p.X+20, p.Y)
	shot := newProjectile(100, 100, 4, 0, 6, 12)
	w.projectiles = append(w.projectiles, shot)

	var events []GameOverEvent
	w.OnGameOver(func(ev GameOverEvent) { events = append(events, ev) })

	w.Step()

	require.True(t, w.Over())
	assert.Equal(t, 0, w.HUD().HP)
	assert.Equal(t, 100.0, shot.X, "projectile phase must not run after the player died")

	ev, over := w.GameOver()
	require.True(t, over)
	assert.Equal(t, w.ID(), ev.RunID)
	assert.Equal(t, 1, ev.Level)
	require.Len(t, events, 1)
	assert.Equal(t, ev, events[0])

	w.Step()
	assert.Equal(t, int64(1), w.Ticks())
	assert.Len(t, events, 1)
}

func TestCompactionRemovesDeadEnemies(t *testing.T) {
	w := newTestWorld(t)
	e := w.SpawnEnemy(characters.Zombie, 100, 100)
	e.TakeDamage(w, 100)

	require.Len(t, w.Enemies(), 1, "dead entities linger until their sweep")
	w.Step()

	assert.Empty(t, w.Enemies())
	assert.Equal(t, 1, w.Kills())
	assert.Len(t, w.Gems(), 1)
}

func TestSetBounds(t *testing.T) {
	w := newTestWorld(t)

	w.SetBounds(0, 300)
	width, _ := w.Bounds()
	assert.Equal(t, 1280.0, width)

	w.SetBounds(400, 300)
	w.Step()

	p := w.Player()
	assert.Equal(t, 385.0, p.X)
	assert.Equal(t, 285.0, p.Y)
}

func TestAddSystemRunsAfterBuiltins(t *testing.T) {
	w := newTestWorld(t)
	var seen []int64
	w.AddSystem(SystemFunc(func(w *World) { seen = append(seen, w.Ticks()) }))

	w.Step()
	w.Step()
	w.Step()
	assert.Equal(t, []int64{1, 2, 3}, seen)
}

func TestCompactKeepsOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	out := compact(in, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, out)
	assert.Equal(t, []int{2, 4, 6, 0, 0, 0}, in, "tail is cleared")
}
