package calculation

import (
	"sort"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// CurrentBalances reduces the asset list and its valuation history to the
// present per-category snapshot. Each asset is valued at its most recent
// dated valuation record; insurance assets with a coverage amount are
// valued at that amount regardless of history. Assets with neither
// contribute zero.
func CurrentBalances(assets []domain.Asset, history []domain.ValuationRecord) domain.CategoryBalances {
	var balances domain.CategoryBalances
	for i := range assets {
		balances.Add(assets[i].Category, currentValue(&assets[i], history))
	}
	return balances
}

func currentValue(asset *domain.Asset, history []domain.ValuationRecord) decimal.Decimal {
	if asset.Category == domain.CategoryInsurance && asset.CoverageAmount != nil {
		return *asset.CoverageAmount
	}

	var records []domain.ValuationRecord
	for _, r := range history {
		// Records without a usable date cannot participate in the
		// latest-value selection.
		if r.AssetID != asset.ID || r.Date.IsZero() {
			continue
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return decimal.Zero
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records[0].Value
}
