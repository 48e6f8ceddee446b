package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBalances holds one balance per asset category. It is a value
// type: copying it copies every balance, so per-month projection state can
// be threaded forward without any sharing between iterations or runs.
type CategoryBalances struct {
	Cash       decimal.Decimal `json:"cash"`
	Investment decimal.Decimal `json:"investment"`
	Property   decimal.Decimal `json:"property"`
	Insurance  decimal.Decimal `json:"insurance"`
	Other      decimal.Decimal `json:"other"`
}

// Get returns the balance for a category.
func (cb CategoryBalances) Get(c AssetCategory) decimal.Decimal {
	switch c {
	case CategoryCash:
		return cb.Cash
	case CategoryInvestment:
		return cb.Investment
	case CategoryProperty:
		return cb.Property
	case CategoryInsurance:
		return cb.Insurance
	case CategoryOther:
		return cb.Other
	}
	return decimal.Zero
}

// Add adds an amount to a category's balance. Amounts for categories
// outside the closed set are dropped.
func (cb *CategoryBalances) Add(c AssetCategory, amount decimal.Decimal) {
	switch c {
	case CategoryCash:
		cb.Cash = cb.Cash.Add(amount)
	case CategoryInvestment:
		cb.Investment = cb.Investment.Add(amount)
	case CategoryProperty:
		cb.Property = cb.Property.Add(amount)
	case CategoryInsurance:
		cb.Insurance = cb.Insurance.Add(amount)
	case CategoryOther:
		cb.Other = cb.Other.Add(amount)
	}
}

// Total returns the sum of all category balances.
func (cb CategoryBalances) Total() decimal.Decimal {
	return cb.Cash.Add(cb.Investment).Add(cb.Property).Add(cb.Insurance).Add(cb.Other)
}

// MonthlyRow is one simulated month of the projection, appended in order
// as the loop advances.
type MonthlyRow struct {
	Date         time.Time        `json:"date"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
	Balances     CategoryBalances `json:"balances"`
	Income       decimal.Decimal  `json:"income"`
	Expense      decimal.Decimal  `json:"expense"`
	LifeEventNet decimal.Decimal  `json:"life_event_net"`
	NetCashFlow  decimal.Decimal  `json:"net_cash_flow"`
	Withdrawal   decimal.Decimal  `json:"withdrawal"`
}

// Summary distills the monthly series into headline figures. MaxBalance
// and MinBalance are seeded with the pre-simulation initial total, so the
// starting snapshot participates in both.
type Summary struct {
	FinalBalance       decimal.Decimal `json:"final_balance"`
	MaxBalance         decimal.Decimal `json:"max_balance"`
	MinBalance         decimal.Decimal `json:"min_balance"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpense       decimal.Decimal `json:"total_expense"`
	TotalLifeEventCost decimal.Decimal `json:"total_life_event_cost"`
	InsolventMonths    []time.Time     `json:"insolvent_months"`
}

// ProjectionResult is the complete output of one scenario run.
type ProjectionResult struct {
	SettingsID   string       `json:"settings_id"`
	ScenarioName string       `json:"scenario_name"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Rows         []MonthlyRow `json:"rows"`
	Summary      Summary      `json:"summary"`
}

// IsInsolvent reports whether any simulated month went negative.
func (pr *ProjectionResult) IsInsolvent() bool {
	return len(pr.Summary.InsolventMonths) > 0
}

// ScenarioComparison holds the results of projecting several scenarios
// against the same financial snapshot, with a ranking of the outcomes.
type ScenarioComparison struct {
	Results            []ProjectionResult `json:"results"`
	BestFinalBalance   string             `json:"best_final_balance"`
	HighestMinBalance  string             `json:"highest_min_balance"`
	InsolventScenarios []string           `json:"insolvent_scenarios"`
}
