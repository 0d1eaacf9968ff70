package sim

// System is one phase of a tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// AddSystem appends a phase that runs after the built-in ones.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

func defaultSystems() []System {
	return []System{
		SystemFunc(updateDirector),
		SystemFunc(updatePickups),
		SystemFunc(updatePlayer),
		SystemFunc(updateEnemies),
		SystemFunc(updateBones),
		SystemFunc(updateParticles),
	}
}

func updateDirector(w *World) {
	if w.directorEnabled {
		w.director.Update(w)
	}
}

func updatePickups(w *World) {
	for _, g := range w.gems {
		if g.Alive() {
			g.Update(w)
		}
	}
	w.gems = compact(w.gems, func(g *XpGem) bool { return g.Alive() })
}

func updatePlayer(w *World) {
	w.player.Update(w)
}

func updateEnemies(w *World) {
	for _, e := range w.enemies {
		if !e.GetBody().Alive() {
			continue
		}
		e.Update(w)
		if w.over {
			return
		}
	}
	w.enemies = compact(w.enemies, func(e Enemy) bool { return e.GetBody().Alive() })
}

func updateBones(w *World) {
	for _, b := range w.bones {
		if !b.Alive() {
			continue
		}
		b.Update(w)
		if w.over {
			return
		}
	}
	w.bones = compact(w.bones, func(b *BoneProjectile) bool { return b.Alive() })
}

// Player projectiles, then slash effects.
func updateParticles(w *World) {
	for _, p := range w.projectiles {
		if p.Alive() {
			p.Update(w)
		}
	}
	w.projectiles = compact(w.projectiles, func(p *Projectile) bool { return p.Alive() })

	for _, fx := range w.effects {
		if fx.Alive() {
			fx.Update(w)
		}
	}
	w.effects = compact(w.effects, func(fx *SlashEffect) bool { return fx.Alive() })
}
