package output

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/india-tax-engine/pkg/money"
)

// FormatCurrency renders an amount with the rupee sign and Indian digit
// grouping, e.g. 1234567.5 -> ₹12,34,567.50.
func FormatCurrency(d decimal.Decimal) string {
	return money.FromDecimal(d).Format()
}

// FormatPercentage renders a fractional rate as a percentage with two decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
