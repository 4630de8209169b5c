package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a decimal amount as US dollars with grouping,
// e.g. "$1,234,567.89".
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// FormatPercent renders a float rate of 0.0725 as "7.25%".
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate * 100).StringFixed(2) + "%"
}
