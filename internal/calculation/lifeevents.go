package calculation

import (
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/lifeplan/household-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// lifeEventNet sums the signed cash impact of all life events matching the
// simulated month: one-time events on exact year+month equality, recurring
// events over their active window. Positive values are costs, negative
// values income. Events without a usable date are skipped.
func lifeEventNet(month time.Time, events []domain.LifeEvent) decimal.Decimal {
	total := decimal.Zero
	for i := range events {
		ev := &events[i]
		if ev.Date.IsZero() {
			continue
		}
		switch ev.Type {
		case domain.EventOneTime:
			if dateutil.SameYearMonth(ev.Date, month) {
				total = total.Add(ev.Cost)
			}
		case domain.EventRecurring:
			if recurringCovers(ev, month) {
				total = total.Add(ev.MonthlyAmount)
			}
		}
	}
	return total
}

func recurringCovers(ev *domain.LifeEvent, month time.Time) bool {
	if month.Before(dateutil.StartOfMonth(ev.Date)) {
		return false
	}
	if ev.EndDate != nil && month.After(dateutil.StartOfMonth(*ev.EndDate)) {
		return false
	}
	return true
}
