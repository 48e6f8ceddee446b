package calculation

import (
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/lifeplan/household-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// applyWithdrawal moves the scheduled monthly amount from the investment
// balance into cash once the policy's start month is reached. The transfer
// is clamped to the available post-return investment balance, so it can
// deplete the investment category but never drive it negative. Returns the
// amount actually transferred.
func applyWithdrawal(month time.Time, policy *domain.WithdrawalPolicy, balances *domain.CategoryBalances) decimal.Decimal {
	if policy == nil || !policy.Enabled || policy.StartDate.IsZero() {
		return decimal.Zero
	}
	if month.Before(dateutil.StartOfMonth(policy.StartDate)) {
		return decimal.Zero
	}
	amount := decimal.Min(policy.MonthlyAmount, balances.Investment)
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	balances.Investment = balances.Investment.Sub(amount)
	balances.Cash = balances.Cash.Add(amount)
	return amount
}
