package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivor/pkg/characters"
	"survivor/pkg/items"
)

func newDirectedWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(Options{
		Width:           1280,
		Height:          720,
		Rand:            rand.New(rand.NewSource(3)),
		StartingWeapons: []items.WeaponKind{},
	})
	require.NoError(t, err)
	return w
}

func TestRegularSpawnInterval(t *testing.T) {
	cases := []struct {
		elapsed float64
		want    time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{30, 2000 * time.Millisecond},
		{45, 1000 * time.Millisecond},
		{60, 1000 * time.Millisecond},
		{65, 500 * time.Millisecond},
		{121, 200 * time.Millisecond},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RegularSpawnInterval(c.elapsed), "elapsed %v", c.elapsed)
	}
}

func TestHordeParams(t *testing.T) {
	cases := []struct {
		elapsed  float64
		size     int
		interval time.Duration
	}{
		{5, 3, 8 * time.Second},
		{31, 5, 6 * time.Second},
		{61, 8, 5 * time.Second},
	}
	for _, c := range cases {
		size, interval := HordeParams(c.elapsed)
		assert.Equal(t, c.size, size, "elapsed %v", c.elapsed)
		assert.Equal(t, c.interval, interval, "elapsed %v", c.elapsed)
	}

	assert.Equal(t, 8, SwarmSize(60))
	assert.Equal(t, 15, SwarmSize(61))
}

func TestSelectEnemyKind(t *testing.T) {
	cases := []struct {
		name    string
		elapsed float64
		roll    float64
		want    characters.EnemyKind
	}{
		{"early is all zombies", 10, 0.0, characters.Zombie},
		{"bats after 30s", 45, 0.1, characters.Bat},
		{"mostly zombies after 30s", 45, 0.5, characters.Zombie},
		{"skeletons after 60s", 65, 0.1, characters.Skeleton},
		{"bats after 60s", 65, 0.3, characters.Bat},
		{"zombies after 60s", 65, 0.9, characters.Zombie},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SelectEnemyKind(c.elapsed, c.roll))
		})
	}
}

func TestFirstSpawnAfterOneSecond(t *testing.T) {
	w := newDirectedWorld(t)

	for i := 0; i < 60; i++ {
		w.Step()
	}
	assert.Empty(t, w.Enemies(), "the clock must be strictly past the first spawn time")

	w.Step()
	require.Len(t, w.Enemies(), 1)
	assert.Equal(t, characters.Zombie, w.Enemies()[0].Kind())
	assert.Equal(t, w.Clock()+2*time.Second, w.Director().NextSpawn)
}

func TestRegularSpawnsOutsideAnEdge(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 40; i++ {
		b := w.spawnAtEdge(characters.Zombie).GetBody()
		outX := b.X == -40 || b.X == 1320
		outY := b.Y == -40 || b.Y == 760
		assert.True(t, outX || outY, "spawned at (%v, %v)", b.X, b.Y)
	}
}

func TestHordeCadence(t *testing.T) {
	w := newDirectedWorld(t)
	d := w.Director()
	d.NextSpawn = time.Hour
	d.NextSwarm = time.Hour

	for i := 0; i < 600; i++ {
		w.Step()
	}
	require.Empty(t, w.Enemies())

	w.Step()
	require.Len(t, w.Enemies(), 3)
	for _, e := range w.Enemies() {
		b := e.GetBody()
		assert.Equal(t, characters.Zombie, e.Kind())
		left := math.Abs(b.X+50) <= 45
		right := math.Abs(b.X-1330) <= 45
		assert.True(t, left || right, "horde member at x=%v", b.X)
	}
	assert.Equal(t, w.Clock()+8*time.Second, d.NextHorde)
}

func TestSwarmWaitsForFifteenSeconds(t *testing.T) {
	w := newDirectedWorld(t)
	d := w.Director()
	d.NextSpawn = time.Hour
	d.NextHorde = time.Hour
	d.NextSwarm = 0

	w.Step()
	assert.Empty(t, w.Enemies())
	assert.Equal(t, w.Clock()+12*time.Second, d.NextSwarm)
}

func TestBatSwarmSharesHeading(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnBatSwarm(8)

	require.Len(t, w.Enemies(), 8)
	first := w.Enemies()[0].(*Bat)
	assert.InDelta(t, 3.0, math.Hypot(first.VX, first.VY), 1e-9)
	for _, e := range w.Enemies() {
		bat := e.(*Bat)
		assert.Equal(t, first.VX, bat.VX)
		assert.Equal(t, first.VY, bat.VY)
	}
}
