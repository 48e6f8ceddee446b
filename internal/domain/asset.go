package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory partitions household assets into the closed set of classes
// used for balance tracking and differentiated return rates. The set is
// fixed; persisted plans carry a schema version rather than extending it
// ad hoc (insurance was added in schema version 2).
type AssetCategory string

const (
	CategoryCash       AssetCategory = "cash"
	CategoryInvestment AssetCategory = "investment"
	CategoryProperty   AssetCategory = "property"
	CategoryInsurance  AssetCategory = "insurance"
	CategoryOther      AssetCategory = "other"
)

// Categories returns the full category set in display order.
func Categories() []AssetCategory {
	return []AssetCategory{
		CategoryCash,
		CategoryInvestment,
		CategoryProperty,
		CategoryInsurance,
		CategoryOther,
	}
}

// Valid reports whether the category is a member of the closed set.
func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryCash, CategoryInvestment, CategoryProperty, CategoryInsurance, CategoryOther:
		return true
	}
	return false
}

// Asset represents a single household asset. Its current value comes from
// the latest ValuationRecord, except for insurance assets with a coverage
// amount, which are valued at that amount.
type Asset struct {
	ID              string           `yaml:"id" json:"id"`
	Name            string           `yaml:"name" json:"name"`
	Category        AssetCategory    `yaml:"category" json:"category"`
	AcquisitionDate time.Time        `yaml:"acquisition_date,omitempty" json:"acquisition_date,omitempty"`
	CoverageAmount  *decimal.Decimal `yaml:"coverage_amount,omitempty" json:"coverage_amount,omitempty"`
	MonthlyPremium  *decimal.Decimal `yaml:"monthly_premium,omitempty" json:"monthly_premium,omitempty"`
	LinkedMemberID  string           `yaml:"linked_member_id,omitempty" json:"linked_member_id,omitempty"`
	Memo            string           `yaml:"memo,omitempty" json:"memo,omitempty"`
}

// ValuationRecord is a dated valuation for a single asset, typically
// recorded at month end.
type ValuationRecord struct {
	ID      string          `yaml:"id" json:"id"`
	AssetID string          `yaml:"asset_id" json:"asset_id"`
	Date    time.Time       `yaml:"date" json:"date"`
	Value   decimal.Decimal `yaml:"value" json:"value"`
}
