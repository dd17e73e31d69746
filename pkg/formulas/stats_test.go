package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"empty slice", []float64{}, 0},
		{"single value", []float64{5.0}, 5.0},
		{"multiple values", []float64{1.0, 2.0, 3.0, 4.0}, 2.5},
		{"negative values", []float64{-10.0, 10.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.data), 1e-9)
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 6.5, Sum([]float64{1.5, 2.0, 3.0}), 1e-9)
	assert.InDelta(t, -50.0, Sum([]float64{100.0, -150.0}), 1e-9)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"no rounding needed", 1.25, 1.25},
		{"rounds up", 66.666, 66.67},
		{"rounds down", 33.333, 33.33},
		{"negative", -12.345, -12.35},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.value), 1e-9)
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.InDelta(t, 50.0, Percentage(1, 2), 1e-9)
	assert.InDelta(t, 66.67, Percentage(2, 3), 1e-9)
}
