package components

// Body is the circular footprint every simulated entity carries.
type Body struct {
	X, Y   float64
	Radius float64
	Dead   bool // Marked for removal at the owning collection's next sweep
}

func (b *Body) Alive() bool {
	return !b.Dead
}

// Overlaps reports whether two bodies intersect.
func (b *Body) Overlaps(o *Body) bool {
	return CheckCollision(b.X, b.Y, b.Radius, o.X, o.Y, o.Radius)
}

// DistanceTo measures centre-to-centre distance.
func (b *Body) DistanceTo(o *Body) float64 {
	return Distance(b.X, b.Y, o.X, o.Y)
}

// InputComponent holds the current directional input state for the player
type InputComponent struct {
	Up, Down, Left, Right bool
}

// Point is a plain 2D coordinate
type Point struct {
	X, Y float64
}
