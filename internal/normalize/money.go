package normalize

import "math"

// Cents converts a float64 dollar amount to int64 cents.
// Uses math.Round to avoid truncation bias; all downstream money math is
// exact integer arithmetic on cents.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
