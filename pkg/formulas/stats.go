// Package formulas provides the shared numeric helpers used by the
// analytics aggregations.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Sum calculates the sum of a slice of float64 values
func Sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}

// Round2 rounds a value to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage returns part/total*100 rounded to 2 decimal places, or 0
// when total is zero.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}
