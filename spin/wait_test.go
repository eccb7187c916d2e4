package spin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackoffYields(t *testing.T) {
	tests := []struct {
		max, spins int
		expected   int
	}{
		{0, 0, 1},
		{0, 1, 1},
		{0, 2, 2},
		{0, 3, 4},
		{0, 5, 16},
		{0, 6, 16},
		{0, math.MaxInt, 16},
		{4, 10, 4},
		{10, 5, 10},
		{1, 3, 1},
		{-1, 8, 16},
	}

	for _, tt := range tests {
		result := Backoff{Max: tt.max}.yields(tt.spins)
		assert.Equal(t, tt.expected, result, "Backoff{Max: %d}.yields(%d) = %d; want %d", tt.max, tt.spins, result, tt.expected)
	}
}

func TestAdaptiveShouldYield(t *testing.T) {
	tests := []struct {
		spinsBeforeYield, spins int
		expected                bool
	}{
		{0, 1, false},
		{0, 15, false},
		{0, 16, true},
		{0, 32, true},
		{2, 1, false},
		{2, 2, true},
		{2, 3, false},
		{1, 7, true},
	}

	for _, tt := range tests {
		result := Adaptive{Spins: tt.spinsBeforeYield}.shouldYield(tt.spins)
		assert.Equal(t, tt.expected, result, "Adaptive{Spins: %d}.shouldYield(%d)", tt.spinsBeforeYield, tt.spins)
	}
}

func TestStrategiesPauseReturns(t *testing.T) {
	for _, s := range []Strategy{Spin{}, Yield{}, Backoff{Max: 2}, Adaptive{Spins: 1}} {
		assert.NotPanics(t, func() {
			for spins := 1; spins <= 8; spins++ {
				s.Pause(spins)
			}
		}, "%T", s)
	}
}
