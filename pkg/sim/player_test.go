package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivor/pkg/characters"
	"survivor/pkg/items"
	"survivor/pkg/shared/components"
)

func TestInvincibilityWindow(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	p.TakeDamage(w, 10)
	require.Equal(t, 90, p.HP)
	require.Equal(t, 30, p.Invincible)

	for i := 1; i <= 29; i++ {
		w.Step()
		p.TakeDamage(w, 10)
		require.Equal(t, 90, p.HP, "blocked on frame %d", i)
	}

	w.Step()
	p.TakeDamage(w, 10)
	assert.Equal(t, 80, p.HP)
}

func TestPlayerDeathClampsHP(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	p.HP = 5

	p.TakeDamage(w, 10)
	assert.Equal(t, 0, p.HP)
	assert.True(t, w.Over())

	p.Invincible = 0
	p.TakeDamage(w, 10)
	assert.Equal(t, 0, p.HP, "damage after death is ignored")
}

func TestPlayerPush(t *testing.T) {
	t.Run("single overlap", func(t *testing.T) {
		w := newTestWorld(t)
		p := w.Player()
		w.SpawnEnemy(characters.Zombie, p.X+20, p.Y)

		p.Update(w)
		assert.InDelta(t, 638.5, p.X, 1e-9)
		assert.InDelta(t, 360.0, p.Y, 1e-9)
	})

	t.Run("pushes compound", func(t *testing.T) {
		w := newTestWorld(t)
		p := w.Player()
		w.SpawnEnemy(characters.Zombie, p.X+20, p.Y)
		w.SpawnEnemy(characters.Zombie, p.X+20, p.Y)

		p.Update(w)
		assert.InDelta(t, 637.0, p.X, 1e-9)
	})

	t.Run("coincident enemy is a no-op", func(t *testing.T) {
		w := newTestWorld(t)
		p := w.Player()
		w.SpawnEnemy(characters.Zombie, p.X, p.Y)

		p.Update(w)
		assert.Equal(t, 640.0, p.X)
		assert.Equal(t, 360.0, p.Y)
	})

	t.Run("dead enemies do not push", func(t *testing.T) {
		w := newTestWorld(t)
		p := w.Player()
		e := w.SpawnEnemy(characters.Zombie, p.X+20, p.Y)
		e.GetBody().Dead = true

		p.Update(w)
		assert.Equal(t, 640.0, p.X)
	})
}

func TestPlayerClamp(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	p.X, p.Y = 5, 5
	p.Update(w)
	assert.Equal(t, 15.0, p.X)
	assert.Equal(t, 15.0, p.Y)

	p.X, p.Y = 2000, 2000
	p.Update(w)
	assert.Equal(t, 1265.0, p.X)
	assert.Equal(t, 705.0, p.Y)
}

func TestDiagonalIsNotNormalized(t *testing.T) {
	w := newTestWorld(t)
	w.SetInput(components.InputComponent{Up: true, Right: true})

	w.Step()
	p := w.Player()
	assert.Equal(t, 642.0, p.X)
	assert.Equal(t, 358.0, p.Y)
}

func TestXPRollover(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	p.GainXP(w, 60)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 10.0, p.XP)
	assert.Equal(t, 65.0, p.XPToNextLevel)

	offer, ok := w.PendingOffer()
	require.True(t, ok)
	assert.Equal(t, 2, offer.Level)
}

func TestXPMultipleLevels(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	p.GainXP(w, 115)
	assert.Equal(t, 3, p.Level)
	assert.Zero(t, p.XP)
	assert.Equal(t, 84.0, p.XPToNextLevel)
	assert.Equal(t, 2, w.pendingLevelUps)

	offer, ok := w.PendingOffer()
	require.True(t, ok)
	assert.Equal(t, 2, offer.Level, "offers are presented in order")
}

func TestWeaponUniqueness(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	require.NoError(t, p.AddOrUpgradeWeapon(items.OrbitGuardian))
	require.NoError(t, p.AddOrUpgradeWeapon(items.ArcSlasher))
	require.NoError(t, p.AddOrUpgradeWeapon(items.OrbitGuardian))

	require.Len(t, p.Weapons, 2)
	assert.Equal(t, items.OrbitGuardian, p.Weapons[0].Kind())
	assert.Equal(t, 2, p.Weapons[0].Level())
	assert.Equal(t, 1, p.Weapons[1].Level())

	assert.ErrorIs(t, p.AddOrUpgradeWeapon(items.WeaponKind(0)), ErrUnknownWeapon)
}
