package utils

import "github.com/shopspring/decimal"

// RoundTo rounds value to the given number of decimal places, rounding a
// trailing 5 away from zero. Stored currency amounts go through this so the
// database never carries float artifacts like 107.34999999999999.
func RoundTo(value float64, places int32) float64 {
	out, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return out
}

// RoundCurrency rounds to exactly two decimal places.
func RoundCurrency(value float64) float64 {
	return RoundTo(value, 2)
}

// RoundRate rounds percentage rates to one decimal place.
func RoundRate(value float64) float64 {
	return RoundTo(value, 1)
}
