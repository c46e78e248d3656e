package seedbed

import "math"

// plantTransform computes the affine matrix that maps a plant's local
// geometry (origin at the stem base, Y up rendered as -Y) to scene space.
// Returns [a, b, c, d, tx, ty].
//
// Composition order: Scale -> Rotate -> Translate(pos).
func plantTransform(pos Vec2, rotation, scale float64) [6]float64 {
	sin, cos := math.Sincos(rotation)
	return [6]float64{
		cos * scale, sin * scale,
		-sin * scale, cos * scale,
		pos.X, pos.Y,
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// normalizeAngle wraps an angle into [0, 2π). Committed plant rotations
// always live in this range; live twist deltas are left unwrapped.
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
