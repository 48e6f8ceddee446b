package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/lifeplan/household-projection/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HOUSEHOLD PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")

	scenarios := append([]domain.ProjectionResult(nil), results.Results...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ScenarioName < scenarios[j].ScenarioName })

	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s (%s to %s)\n", sc.ScenarioName,
			sc.StartDate.Format("2006-01"), sc.EndDate.Format("2006-01"))
		fmt.Fprintf(&buf, "  Final=%s Max=%s Min=%s\n",
			FormatCurrency(sc.Summary.FinalBalance),
			FormatCurrency(sc.Summary.MaxBalance),
			FormatCurrency(sc.Summary.MinBalance),
		)
		fmt.Fprintf(&buf, "  TotalIncome=%s TotalExpense=%s LifeEventCost=%s\n",
			FormatCurrency(sc.Summary.TotalIncome),
			FormatCurrency(sc.Summary.TotalExpense),
			FormatCurrency(sc.Summary.TotalLifeEventCost),
		)
		if sc.IsInsolvent() {
			fmt.Fprintf(&buf, "  WARNING: balance negative in %d months, first %s\n",
				len(sc.Summary.InsolventMonths), sc.Summary.InsolventMonths[0].Format("2006-01"))
		}
		fmt.Fprintln(&buf)
	}

	if results.BestFinalBalance != "" {
		fmt.Fprintf(&buf, "Best final balance: %s\n", results.BestFinalBalance)
	}
	if results.HighestMinBalance != "" {
		fmt.Fprintf(&buf, "Highest minimum balance: %s\n", results.HighestMinBalance)
	}
	return buf.Bytes(), nil
}
