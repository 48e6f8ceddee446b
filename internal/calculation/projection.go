package calculation

import (
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/lifeplan/household-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// applyReturns produces the balances after one month of compounding:
// every category's opening balance grows by its annual rate divided by 12.
// Categories are independent at this step; flows and transfers come later
// in the monthly sequence, so compounding acts only on the opening
// balance.
func applyReturns(balances domain.CategoryBalances, returns domain.ExpectedReturns) domain.CategoryBalances {
	var next domain.CategoryBalances
	for _, c := range domain.Categories() {
		monthly := one.Add(returns.Rate(c).Div(twelve))
		next.Add(c, balances.Get(c).Mul(monthly))
	}
	return next
}

// project drives the monthly sequence across the full horizon, threading
// the per-category balance state forward one month at a time. The order
// inside each iteration is fixed: returns, income, expense, life events,
// net cash flow, withdrawal transfer, cash absorbs the net flow, record.
func (pe *ProjectionEngine) project(startDate time.Time, initial domain.CategoryBalances, settings *domain.SimulationSettings, events []domain.LifeEvent, baseIncome, baseExpense decimal.Decimal) []domain.MonthlyRow {
	rows := make([]domain.MonthlyRow, 0, ProjectionMonths)
	balances := initial
	month := startDate

	for i := 0; i < ProjectionMonths; i++ {
		balances = applyReturns(balances, settings.ExpectedReturns)

		income := monthlyIncome(month, baseIncome, settings.FutureIncome)
		expense := monthlyExpense(month, baseExpense, settings.FutureExpense, settings.InflationRate, i)
		eventNet := lifeEventNet(month, events)

		netCashFlow := income.Sub(expense).Sub(eventNet)

		withdrawal := applyWithdrawal(month, settings.Withdrawal, &balances)

		// Cash absorbs the entire net flow; other categories move only
		// through returns and the withdrawal transfer.
		balances.Cash = balances.Cash.Add(netCashFlow)

		rows = append(rows, domain.MonthlyRow{
			Date:         month,
			TotalBalance: balances.Total(),
			Balances:     balances,
			Income:       income,
			Expense:      expense,
			LifeEventNet: eventNet,
			NetCashFlow:  netCashFlow,
			Withdrawal:   withdrawal,
		})

		month = dateutil.AddMonths(month, 1)
	}

	return rows
}
