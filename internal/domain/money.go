package domain

import "github.com/shopspring/decimal"

// FormatUSD renders an amount in cents as dollars with two decimals,
// e.g. 65000 -> "$650.00".
func FormatUSD(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
