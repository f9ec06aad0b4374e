package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomInt(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
	assert.Equal(t, 5, RandomInt(5, 5))
	assert.Equal(t, 9, RandomInt(9, 2), "inverted range returns min")
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		expected int
	}{
		{"below", -4, 0},
		{"inside", 42, 42},
		{"above", 150, 100},
		{"lower edge", 0, 0},
		{"upper edge", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, 0, 100))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, PercentFloor(3, 25))
	assert.Equal(t, 1, PercentFloor(4, 25))
	assert.Equal(t, 1, PercentCeil(3, 25))
	assert.Equal(t, 3, PercentCeil(4, 75))
	assert.Equal(t, 4, PercentCeil(4, 100))
	assert.Equal(t, 0, PercentCeil(0, 100))
}

func TestRoller_Ranges(t *testing.T) {
	r := NewRoller()
	for i := 0; i < 500; i++ {
		p := r.NumberPercent()
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 100)

		n := r.NumberRange(0, 25)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 25)
	}
}
