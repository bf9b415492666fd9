package helpers

import (
	"fmt"
	"math"
)

// RoundPrice rounds a monetary amount to two decimal places. Every
// derived cart total goes through this so the incremental and
// recomputed strategies cannot drift apart.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPrice renders a price with two decimals. Invalid values render
// as "0.00" instead of failing.
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", price)
}

// FormatPriceWithCurrency prefixes the formatted price with a currency
// symbol, "$" by default.
func FormatPriceWithCurrency(price float64, currency string) string {
	if currency == "" {
		currency = "$"
	}
	return currency + FormatPrice(price)
}
