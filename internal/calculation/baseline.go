package calculation

import (
	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// baselineIncome returns the mean amount across all historical income
// transactions, used as the flat monthly income baseline. Empty history
// yields zero.
func baselineIncome(incomes []domain.Income) decimal.Decimal {
	if len(incomes) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, in := range incomes {
		total = total.Add(in.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(incomes))))
}

// baselineExpense returns the mean amount across all historical expense
// transactions. Unlike the income baseline this figure is grown by
// inflation as the projection advances.
func baselineExpense(expenses []domain.Expense) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, ex := range expenses {
		total = total.Add(ex.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(expenses))))
}
