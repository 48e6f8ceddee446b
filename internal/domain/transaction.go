package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single historical income transaction. The projection engine
// uses the mean amount across all income transactions as its monthly
// baseline.
type Income struct {
	ID     string          `yaml:"id" json:"id"`
	Date   time.Time       `yaml:"date" json:"date"`
	Source string          `yaml:"source,omitempty" json:"source,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Memo   string          `yaml:"memo,omitempty" json:"memo,omitempty"`
}

// Expense is a single historical expense transaction, mirrored from Income
// with a category reference instead of a source.
type Expense struct {
	ID         string          `yaml:"id" json:"id"`
	Date       time.Time       `yaml:"date" json:"date"`
	CategoryID string          `yaml:"category_id,omitempty" json:"category_id,omitempty"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	Memo       string          `yaml:"memo,omitempty" json:"memo,omitempty"`
}
