package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Integrate advances a falling body one tick: position moves by the current
// velocity, then gravity is added to the velocity.
func Integrate(y, velY, gravity float64) (newY, newVelY float64) {
	return y + velY, velY + gravity
}

// FacingSign returns 1 when facing right and -1 otherwise.
func FacingSign(facingRight bool) float64 {
	if facingRight {
		return 1
	}
	return -1
}
