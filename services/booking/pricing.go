package booking

import "github.com/shopspring/decimal"

// CalculateSessionPrice returns hourlyRate × duration rounded to piasters.
func CalculateSessionPrice(hourlyRate, durationHours float64) float64 {
	return decimal.NewFromFloat(hourlyRate).
		Mul(decimal.NewFromFloat(durationHours)).
		Round(2).
		InexactFloat64()
}
