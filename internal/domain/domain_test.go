package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategorySet(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 5)
	for _, c := range categories {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, AssetCategory("crypto").Valid())
}

func TestCategoryBalancesValueSemantics(t *testing.T) {
	original := CategoryBalances{Cash: decimal.NewFromInt(100)}
	copied := original
	copied.Add(CategoryCash, decimal.NewFromInt(50))

	assert.True(t, original.Cash.Equal(decimal.NewFromInt(100)), "copies must not share state")
	assert.True(t, copied.Cash.Equal(decimal.NewFromInt(150)))
}

func TestCategoryBalancesTotal(t *testing.T) {
	balances := CategoryBalances{
		Cash:       decimal.NewFromInt(1),
		Investment: decimal.NewFromInt(2),
		Property:   decimal.NewFromInt(3),
		Insurance:  decimal.NewFromInt(4),
		Other:      decimal.NewFromInt(5),
	}
	assert.True(t, balances.Total().Equal(decimal.NewFromInt(15)))

	for _, c := range Categories() {
		assert.False(t, balances.Get(c).IsZero(), "Get should cover %s", c)
	}
}

func TestCategoryBalancesDropsUnknownCategory(t *testing.T) {
	var balances CategoryBalances
	balances.Add(AssetCategory("crypto"), decimal.NewFromInt(999))
	assert.True(t, balances.Total().IsZero())
}

func TestExpectedReturnsRate(t *testing.T) {
	returns := ExpectedReturns{
		Cash:       decimal.NewFromFloat(0.001),
		Investment: decimal.NewFromFloat(0.05),
	}
	assert.True(t, returns.Rate(CategoryInvestment).Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, returns.Rate(CategoryProperty).IsZero())
}

func TestFutureCashItemActivation(t *testing.T) {
	end := time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)
	item := FutureCashItem{
		StartDate: time.Date(2027, 4, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Amount:    decimal.NewFromInt(1000),
		Frequency: FrequencyMonthly,
	}

	assert.False(t, item.ActiveIn(time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, item.ActiveIn(time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)), "start month is inclusive at month granularity")
	assert.True(t, item.ActiveIn(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)), "end month is inclusive")
	assert.False(t, item.ActiveIn(time.Date(2028, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFutureCashItemAnnualAnniversary(t *testing.T) {
	item := FutureCashItem{
		StartDate: time.Date(2027, 4, 10, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(500000),
		Frequency: FrequencyAnnually,
	}

	assert.True(t, item.ContributesIn(time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, item.ContributesIn(time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, item.ContributesIn(time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFutureCashItemMissingStartDate(t *testing.T) {
	item := FutureCashItem{Amount: decimal.NewFromInt(1000), Frequency: FrequencyMonthly}
	assert.False(t, item.ContributesIn(time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHouseholdMemberDefaults(t *testing.T) {
	member := HouseholdMember{
		Name:      "Taro",
		Relation:  RelationSelf,
		BirthDate: time.Date(1985, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 41, member.Age(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2050, member.RetirementDate().Year(), "retirement defaults to 65")
	assert.Equal(t, 2050, member.PensionStartDate().Year(), "pension defaults to 65")

	member.RetirementAge = 60
	assert.Equal(t, 2045, member.RetirementDate().Year())
}
