package utils

// Roller draws skill-check rolls from math/rand. It satisfies domain.Roller;
// tests substitute a deterministic implementation.
type Roller struct{}

// NewRoller creates a roller backed by the global math/rand source
func NewRoller() Roller {
	return Roller{}
}

// NumberPercent returns a value in [1, 100]
func (Roller) NumberPercent() int {
	return RandomInt(1, 100)
}

// NumberRange returns a value in [lo, hi]; lo when the range is inverted
func (Roller) NumberRange(lo, hi int) int {
	return RandomInt(lo, hi)
}
