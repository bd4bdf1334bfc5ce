package gamemath

// WalkDelta returns the horizontal movement for one frame of walking.
// Holding toward the facing direction walks forward, holding away walks
// backward at the slower speed. With neither or both held there is no movement.
func WalkDelta(facingLeft, leftHeld, rightHeld bool, forwardSpeed, backwardSpeed float64) float64 {
	if leftHeld == rightHeld {
		return 0
	}
	if leftHeld {
		if facingLeft {
			return -forwardSpeed
		}
		return -backwardSpeed
	}
	if facingLeft {
		return backwardSpeed
	}
	return forwardSpeed
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FacesLeft reports whether a fighter centred at x should face an opponent at
// opponentX. Standing on the same spot counts as being to the right.
func FacesLeft(x, opponentX float64) bool {
	return x >= opponentX
}
