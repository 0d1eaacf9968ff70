package sim

// OrbitGuardian chips every enemy inside its aura each tick.
type OrbitGuardian struct {
	weaponBase
}

func (o *OrbitGuardian) Update(w *World) {
	o.tick(w, o.fire)
}

func (o *OrbitGuardian) fire(w *World) bool {
	p := w.player
	for _, e := range w.enemies {
		b := e.GetBody()
		if !b.Alive() {
			continue
		}
		if p.DistanceTo(b) < o.stats.Radius+b.Radius {
			e.TakeDamage(w, o.stats.Damage)
		}
	}
	return true
}
