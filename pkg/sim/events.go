package sim

import (
	"time"

	"github.com/google/uuid"
)

// HUD is the snapshot a host needs to draw the status bar.
type HUD struct {
	HP, MaxHP      int
	XP             float64
	XPToNextLevel  float64
	Level          int
	Kills          int
	ElapsedSeconds float64
	Paused         bool
	Over           bool
}

func (w *World) HUD() HUD {
	p := w.player
	return HUD{
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		XP:             p.XP,
		XPToNextLevel:  p.XPToNextLevel,
		Level:          p.Level,
		Kills:          w.kills,
		ElapsedSeconds: w.ElapsedSeconds(),
		Paused:         w.paused,
		Over:           w.over,
	}
}

// GameOverEvent is emitted once when the player dies.
type GameOverEvent struct {
	RunID   uuid.UUID
	Elapsed time.Duration
	Level   int
	Kills   int
}

// GameOver returns the final event once the run has ended.
func (w *World) GameOver() (GameOverEvent, bool) {
	return w.gameOver, w.over
}

func (w *World) OnGameOver(fn func(GameOverEvent)) {
	w.onGameOver = append(w.onGameOver, fn)
}
