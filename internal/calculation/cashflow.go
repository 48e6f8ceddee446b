package calculation

import (
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// monthlyIncome computes a single month's income: the historical baseline
// plus every future income item contributing that month. Income is held
// constant in nominal terms.
func monthlyIncome(month time.Time, baseline decimal.Decimal, items []domain.FutureCashItem) decimal.Decimal {
	total := baseline
	for i := range items {
		if items[i].ContributesIn(month) {
			total = total.Add(items[i].Amount)
		}
	}
	return total
}

// monthlyExpense computes a single month's expense. The baseline and every
// contributing future expense item are multiplied by the cumulative
// inflation factor for the number of months elapsed since simulation start
// (month 0 has factor 1).
func monthlyExpense(month time.Time, baseline decimal.Decimal, items []domain.FutureCashItem, inflationRate decimal.Decimal, monthsElapsed int) decimal.Decimal {
	factor := inflationFactor(inflationRate, monthsElapsed)
	total := baseline.Mul(factor)
	for i := range items {
		if items[i].ContributesIn(month) {
			total = total.Add(items[i].Amount.Mul(factor))
		}
	}
	return total
}

// inflationFactor returns (1 + annualRate/12)^monthsElapsed.
func inflationFactor(annualRate decimal.Decimal, monthsElapsed int) decimal.Decimal {
	if monthsElapsed <= 0 || annualRate.IsZero() {
		return one
	}
	monthly := one.Add(annualRate.Div(twelve))
	return monthly.Pow(decimal.NewFromInt(int64(monthsElapsed)))
}
