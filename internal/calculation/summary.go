package calculation

import (
	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// summarize reduces the monthly series to headline figures in a single
// pass. Max and min are seeded with the pre-simulation initial total so
// the starting snapshot brackets the series. TotalLifeEventCost counts
// only the cost side of event nets; event income (negative nets) flows
// through cash but is not reported as cost.
func summarize(rows []domain.MonthlyRow, initialTotal decimal.Decimal) domain.Summary {
	summary := domain.Summary{
		MaxBalance: initialTotal,
		MinBalance: initialTotal,
	}

	for _, row := range rows {
		if row.TotalBalance.GreaterThan(summary.MaxBalance) {
			summary.MaxBalance = row.TotalBalance
		}
		if row.TotalBalance.LessThan(summary.MinBalance) {
			summary.MinBalance = row.TotalBalance
		}
		if row.TotalBalance.IsNegative() {
			summary.InsolventMonths = append(summary.InsolventMonths, row.Date)
		}

		summary.TotalIncome = summary.TotalIncome.Add(row.Income)
		summary.TotalExpense = summary.TotalExpense.Add(row.Expense)
		if row.LifeEventNet.IsPositive() {
			summary.TotalLifeEventCost = summary.TotalLifeEventCost.Add(row.LifeEventNet)
		}
	}

	if len(rows) > 0 {
		summary.FinalBalance = rows[len(rows)-1].TotalBalance
	}
	return summary
}
