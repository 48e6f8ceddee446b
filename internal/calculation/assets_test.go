package calculation

import (
	"testing"
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCurrentBalancesLatestValuationWins(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a-1", Name: "Brokerage", Category: domain.CategoryInvestment},
	}
	history := []domain.ValuationRecord{
		{ID: "h-1", AssetID: "a-1", Date: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), Value: d(900)},
		{ID: "h-2", AssetID: "a-1", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Value: d(1200)},
		{ID: "h-3", AssetID: "a-1", Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Value: d(800)},
	}

	balances := CurrentBalances(assets, history)
	assert.True(t, balances.Investment.Equal(d(1200)), "latest valuation should win, got %s", balances.Investment)
}

func TestCurrentBalancesSumsPerCategory(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a-1", Name: "Checking", Category: domain.CategoryCash},
		{ID: "a-2", Name: "Savings", Category: domain.CategoryCash},
		{ID: "a-3", Name: "Apartment", Category: domain.CategoryProperty},
	}
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	history := []domain.ValuationRecord{
		{ID: "h-1", AssetID: "a-1", Date: date, Value: d(100)},
		{ID: "h-2", AssetID: "a-2", Date: date, Value: d(250)},
		{ID: "h-3", AssetID: "a-3", Date: date, Value: d(5000)},
	}

	balances := CurrentBalances(assets, history)
	assert.True(t, balances.Cash.Equal(d(350)))
	assert.True(t, balances.Property.Equal(d(5000)))
	assert.True(t, balances.Total().Equal(d(5350)))
}

func TestCurrentBalancesInsuranceCoverageAmount(t *testing.T) {
	coverage := d(3000000)
	assets := []domain.Asset{
		{ID: "a-1", Name: "Life policy", Category: domain.CategoryInsurance, CoverageAmount: &coverage},
	}
	// History exists but coverage takes precedence for insurance assets.
	history := []domain.ValuationRecord{
		{ID: "h-1", AssetID: "a-1", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Value: d(1)},
	}

	balances := CurrentBalances(assets, history)
	assert.True(t, balances.Insurance.Equal(coverage))
}

func TestCurrentBalancesInsuranceWithoutCoverageUsesHistory(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a-1", Name: "Whole life", Category: domain.CategoryInsurance},
	}
	history := []domain.ValuationRecord{
		{ID: "h-1", AssetID: "a-1", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Value: d(420)},
	}

	balances := CurrentBalances(assets, history)
	assert.True(t, balances.Insurance.Equal(d(420)))
}

func TestCurrentBalancesNoHistoryContributesZero(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a-1", Name: "New account", Category: domain.CategoryCash},
	}

	balances := CurrentBalances(assets, nil)
	assert.True(t, balances.Total().IsZero())
}

func TestCurrentBalancesSkipsRecordsWithoutDates(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a-1", Name: "Brokerage", Category: domain.CategoryInvestment},
	}
	history := []domain.ValuationRecord{
		{ID: "h-1", AssetID: "a-1", Value: d(999999)}, // no date
		{ID: "h-2", AssetID: "a-1", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Value: d(100)},
	}

	balances := CurrentBalances(assets, history)
	assert.True(t, balances.Investment.Equal(d(100)))
}
