package calculation

import (
	"testing"
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeSeedsWithInitialTotal(t *testing.T) {
	rows := []domain.MonthlyRow{
		{Date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), TotalBalance: d(500)},
		{Date: time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC), TotalBalance: d(700)},
	}

	// Initial total above every row: the snapshot itself is the max.
	summary := summarize(rows, d(900))
	assert.True(t, summary.MaxBalance.Equal(d(900)))
	assert.True(t, summary.MinBalance.Equal(d(500)))
	assert.True(t, summary.FinalBalance.Equal(d(700)))
}

func TestSummarizeCountsOnlyCostSideEvents(t *testing.T) {
	rows := []domain.MonthlyRow{
		{Date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), LifeEventNet: d(300)},
		{Date: time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC), LifeEventNet: d(-150)},
		{Date: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), LifeEventNet: d(200)},
	}

	summary := summarize(rows, d(0))
	assert.True(t, summary.TotalLifeEventCost.Equal(d(500)),
		"event income must not offset reported cost, got %s", summary.TotalLifeEventCost)
}

func TestSummarizeEmptySeries(t *testing.T) {
	summary := summarize(nil, d(0))
	assert.True(t, summary.FinalBalance.IsZero())
	assert.Empty(t, summary.InsolventMonths)
}
