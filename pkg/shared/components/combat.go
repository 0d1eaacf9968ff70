package components

import "math"

// Simple Collision Check (Circle/Circle). Touching circles do not collide.
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	distSq := dx*dx + dy*dy
	radiusSum := r1 + r2
	return distSq < radiusSum*radiusSum
}

// Distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Calculate direction vector. Coincident points yield (0, 0).
func Direction(x1, y1, x2, y2 float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	mag := math.Sqrt(dx*dx + dy*dy)
	if mag == 0 {
		return 0, 0
	}
	return dx / mag, dy / mag
}

// Angle returns the heading from (x1, y1) towards (x2, y2) in radians.
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// NormalizeAngle wraps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
