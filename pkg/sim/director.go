package sim

import (
	"math"
	"time"

	"survivor/pkg/characters"
	"survivor/pkg/shared/config"
)

// Director paces enemy spawns on the game clock. A cadence fires on the
// first tick whose clock is strictly past its next time.
type Director struct {
	NextSpawn time.Duration
	NextHorde time.Duration
	NextSwarm time.Duration
}

func newDirector() *Director {
	return &Director{
		NextSpawn: config.FirstSpawnMs * time.Millisecond,
		NextHorde: config.FirstHordeMs * time.Millisecond,
		NextSwarm: config.FirstSwarmMs * time.Millisecond,
	}
}

func (d *Director) Update(w *World) {
	now := w.Clock()
	elapsed := now.Seconds()

	if now > d.NextSpawn {
		w.spawnAtEdge(SelectEnemyKind(elapsed, w.rng.Float64()))
		d.NextSpawn = now + RegularSpawnInterval(elapsed)
	}

	if now > d.NextHorde {
		size, interval := HordeParams(elapsed)
		w.SpawnHorde(size)
		d.NextHorde = now + interval
	}

	if now > d.NextSwarm {
		if elapsed > config.SwarmMinElapsed {
			w.SpawnBatSwarm(SwarmSize(elapsed))
		}
		d.NextSwarm = now + config.SwarmIntervalMs*time.Millisecond
	}
}

// RegularSpawnInterval is the gap between single spawns after elapsed seconds.
func RegularSpawnInterval(elapsed float64) time.Duration {
	switch {
	case elapsed > 120:
		return 200 * time.Millisecond
	case elapsed > 60:
		return 500 * time.Millisecond
	case elapsed > 30:
		return 1000 * time.Millisecond
	}
	return 2000 * time.Millisecond
}

// HordeParams returns the horde size and the gap to the next horde.
func HordeParams(elapsed float64) (int, time.Duration) {
	switch {
	case elapsed > 60:
		return 8, 5000 * time.Millisecond
	case elapsed > 30:
		return 5, 6000 * time.Millisecond
	}
	return 3, 8000 * time.Millisecond
}

func SwarmSize(elapsed float64) int {
	if elapsed > 60 {
		return 15
	}
	return 8
}

// SelectEnemyKind maps a uniform roll in [0, 1) to a kind for the current
// stage of the run.
func SelectEnemyKind(elapsed, roll float64) characters.EnemyKind {
	switch {
	case elapsed < 30:
		return characters.Zombie
	case elapsed < 60:
		if roll < 0.2 {
			return characters.Bat
		}
		return characters.Zombie
	}
	switch {
	case roll < 0.2:
		return characters.Skeleton
	case roll < 0.4:
		return characters.Bat
	}
	return characters.Zombie
}

// spawnAtEdge drops one enemy just outside a random screen edge.
func (w *World) spawnAtEdge(kind characters.EnemyKind) Enemy {
	off := config.SpawnEdgeOffset
	var x, y float64
	switch w.rng.Intn(4) {
	case 0: // top
		x, y = w.rng.Float64()*w.width, -off
	case 1: // right
		x, y = w.width+off, w.rng.Float64()*w.height
	case 2: // bottom
		x, y = w.rng.Float64()*w.width, w.height+off
	default: // left
		x, y = -off, w.rng.Float64()*w.height
	}
	return w.SpawnEnemy(kind, x, y)
}

// SpawnHorde drops a cluster of size enemies off the left or right side.
func (w *World) SpawnHorde(size int) {
	cx := -config.HordeEdgeOffset
	if w.rng.Float64() < 0.5 {
		cx = w.width + config.HordeEdgeOffset
	}
	cy := w.rng.Float64() * w.height
	elapsed := w.ElapsedSeconds()

	for i := 0; i < size; i++ {
		kind := SelectEnemyKind(elapsed, w.rng.Float64())
		x := cx + (w.rng.Float64()-0.5)*config.HordeJitter
		y := cy + (w.rng.Float64()-0.5)*config.HordeJitter
		w.SpawnEnemy(kind, x, y)
	}

	w.log.Debug().Int("size", size).Float64("x", cx).Float64("y", cy).Msg("Horde spawned")
}

// SpawnBatSwarm sends size bats across the screen from a random edge, all
// sharing one heading.
func (w *World) SpawnBatSwarm(size int) {
	off := config.SwarmEdgeOffset
	var x, y, angle float64
	switch w.rng.Intn(4) {
	case 0: // top, heading down
		x, y, angle = w.rng.Float64()*w.width, -off, math.Pi/2
	case 1: // right, heading left
		x, y, angle = w.width+off, w.rng.Float64()*w.height, math.Pi
	case 2: // bottom, heading up
		x, y, angle = w.rng.Float64()*w.width, w.height+off, -math.Pi/2
	default: // left, heading right
		x, y, angle = -off, w.rng.Float64()*w.height, 0
	}

	for i := 0; i < size; i++ {
		jx := (w.rng.Float64() - 0.5) * config.SwarmJitter
		jy := (w.rng.Float64() - 0.5) * config.SwarmJitter
		w.SpawnBatWithAngle(x+jx, y+jy, angle)
	}

	w.log.Debug().Int("size", size).Float64("angle", angle).Msg("Bat swarm spawned")
}
