// Package money holds decimal-safe helpers for price arithmetic.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v to the given number of decimal places, half away from zero.
// Rounding happens on the shortest decimal representation of v, so 47.6 stays
// 47.6 even when the float sits just below it.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Round2 is Round with two decimal places, the precision used for prices,
// percentages and scores.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// PercentChange returns (to - from) / from * 100. from must be non-zero.
func PercentChange(from, to float64) float64 {
	return (to - from) / from * 100
}
