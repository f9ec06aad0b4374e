package utils

import (
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PercentFloor returns floor(n * pct / 100) for non-negative inputs
func PercentFloor(n, pct int) int {
	return n * pct / 100
}

// PercentCeil returns ceil(n * pct / 100) for non-negative inputs
func PercentCeil(n, pct int) int {
	return (n*pct + 99) / 100
}
