package domain

import (
	"time"

	"github.com/lifeplan/household-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CurrentSchemaVersion is the schema generation of persisted plans and
// scenario settings. Version 1 predates the insurance asset category and
// withdrawal policies; version 1 plans are upgraded on load.
const CurrentSchemaVersion = 2

// Frequency determines how often a future cash item contributes.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyAnnually
}

// FutureCashItem is a planned future income or expense stream. It is
// active for months in [StartDate, EndDate], compared at month
// granularity; a nil EndDate means it never ends.
type FutureCashItem struct {
	ID          string          `yaml:"id" json:"id"`
	StartDate   time.Time       `yaml:"start_date" json:"start_date"`
	EndDate     *time.Time      `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency   Frequency       `yaml:"frequency" json:"frequency"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// ActiveIn reports whether the item's window covers the given month.
func (f *FutureCashItem) ActiveIn(month time.Time) bool {
	if f.StartDate.IsZero() {
		return false
	}
	if month.Before(dateutil.StartOfMonth(f.StartDate)) {
		return false
	}
	if f.EndDate != nil && month.After(dateutil.StartOfMonth(*f.EndDate)) {
		return false
	}
	return true
}

// ContributesIn reports whether the item adds its amount in the given
// month: every active month for monthly items, only the anniversary month
// of StartDate for annual items.
func (f *FutureCashItem) ContributesIn(month time.Time) bool {
	if !f.ActiveIn(month) {
		return false
	}
	if f.Frequency == FrequencyAnnually {
		return month.Month() == f.StartDate.Month()
	}
	return true
}

// ExpectedReturns holds one annual nominal rate (decimal, 0.05 = 5%) per
// asset category. Rates are applied monthly as rate/12 simple compounding.
type ExpectedReturns struct {
	Cash       decimal.Decimal `yaml:"cash" json:"cash"`
	Investment decimal.Decimal `yaml:"investment" json:"investment"`
	Property   decimal.Decimal `yaml:"property" json:"property"`
	Insurance  decimal.Decimal `yaml:"insurance" json:"insurance"`
	Other      decimal.Decimal `yaml:"other" json:"other"`
}

// Rate returns the annual rate for a category.
func (er ExpectedReturns) Rate(c AssetCategory) decimal.Decimal {
	switch c {
	case CategoryCash:
		return er.Cash
	case CategoryInvestment:
		return er.Investment
	case CategoryProperty:
		return er.Property
	case CategoryInsurance:
		return er.Insurance
	case CategoryOther:
		return er.Other
	}
	return decimal.Zero
}

// WithdrawalPolicy schedules a fixed monthly transfer from the investment
// balance into cash, modeling retirement drawdown. It is a transfer, not a
// cost: it never changes the month's net cash flow.
type WithdrawalPolicy struct {
	Enabled       bool            `yaml:"enabled" json:"enabled"`
	StartDate     time.Time       `yaml:"start_date" json:"start_date"`
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
}

// SimulationSettings is one named scenario: the full set of economic
// assumptions a projection run is evaluated under. Settings are immutable
// inputs; several may be compared against the same financial history.
type SimulationSettings struct {
	ID              string            `yaml:"id" json:"id"`
	Name            string            `yaml:"name" json:"name"`
	SchemaVersion   int               `yaml:"schema_version,omitempty" json:"schema_version,omitempty"`
	ExpectedReturns ExpectedReturns   `yaml:"expected_returns" json:"expected_returns"`
	InflationRate   decimal.Decimal   `yaml:"inflation_rate" json:"inflation_rate"`
	FutureIncome    []FutureCashItem  `yaml:"future_income,omitempty" json:"future_income,omitempty"`
	FutureExpense   []FutureCashItem  `yaml:"future_expense,omitempty" json:"future_expense,omitempty"`
	Withdrawal      *WithdrawalPolicy `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty"`
}
