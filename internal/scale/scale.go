// Package scale maps brightness values between the hardware's absolute
// range [0, hwMax] and a mode's range [0, span] (100 for percent mode, a
// caller-chosen N for step mode, hwMax itself for absolute mode, where both
// mappings collapse to the identity).
//
// The mapping is round(v / from * to) with round-half-away-from-zero on the
// exact rational, computed in integer arithmetic so the result does not
// depend on platform float behavior. For span < hwMax the mapping is lossy:
// a mode value covers up to ceil(hwMax/span) hardware units.
package scale

// ToMode converts an absolute hardware value to the mode's scale.
// hwMax must be > 0; callers validate the hardware range first.
func ToMode(hwMax, span, hwVal uint32) uint32 {
	return rescale(hwVal, hwMax, span)
}

// ToHardware converts a mode value back to the hardware's absolute scale.
// span must be > 0; callers validate step spans first.
func ToHardware(hwMax, span, modeVal uint32) uint32 {
	return rescale(modeVal, span, hwMax)
}

func rescale(v, from, to uint32) uint32 {
	r := roundDiv(uint64(v)*uint64(to), uint64(from))
	// Inputs above their scale cannot escape the target scale.
	if r > uint64(to) {
		return to
	}
	return uint32(r)
}

// roundDiv divides num by den rounding half away from zero. Both operands
// are non-negative, so that is round-half-up. Computed via quotient and
// remainder to avoid overflowing 2*num.
func roundDiv(num, den uint64) uint64 {
	q := num / den
	if (num%den)*2 >= den {
		q++
	}
	return q
}

// ClampShift applies a signed delta to a mode value and saturates the result
// at [0, span]. The arithmetic is done in int64 so even deltas near the full
// uint32 range cannot wrap.
func ClampShift(cur uint32, delta int64, span uint32) uint32 {
	v := int64(cur) + delta
	if v < 0 {
		return 0
	}
	if v > int64(span) {
		return span
	}
	return uint32(v)
}
