package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as a currency amount with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "¥" + amount.StringFixed(2) }

// FormatPercentage formats a decimal rate (0.05) as a percentage (5.00%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
