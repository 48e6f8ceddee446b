package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/lifeplan/household-projection/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartDate", "EndDate", "FinalBalance", "MaxBalance", "MinBalance", "TotalIncome", "TotalExpense", "TotalLifeEventCost", "InsolventMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ProjectionResult(nil), results.Results...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ScenarioName < scenarios[j].ScenarioName })
	for _, sc := range scenarios {
		row := []string{
			sc.ScenarioName,
			sc.StartDate.Format("2006-01"),
			sc.EndDate.Format("2006-01"),
			sc.Summary.FinalBalance.StringFixed(2),
			sc.Summary.MaxBalance.StringFixed(2),
			sc.Summary.MinBalance.StringFixed(2),
			sc.Summary.TotalIncome.StringFixed(2),
			sc.Summary.TotalExpense.StringFixed(2),
			sc.Summary.TotalLifeEventCost.StringFixed(2),
			strconv.Itoa(len(sc.Summary.InsolventMonths)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedExporter writes every monthly row of every scenario, one line
// per scenario-month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "TotalBalance", "Cash", "Investment", "Property", "Insurance", "Other", "Income", "Expense", "LifeEventNet", "NetCashFlow", "Withdrawal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Results {
		for _, row := range sc.Rows {
			record := []string{
				sc.ScenarioName,
				row.Date.Format("2006-01"),
				row.TotalBalance.StringFixed(2),
				row.Balances.Cash.StringFixed(2),
				row.Balances.Investment.StringFixed(2),
				row.Balances.Property.StringFixed(2),
				row.Balances.Insurance.StringFixed(2),
				row.Balances.Other.StringFixed(2),
				row.Income.StringFixed(2),
				row.Expense.StringFixed(2),
				row.LifeEventNet.StringFixed(2),
				row.NetCashFlow.StringFixed(2),
				row.Withdrawal.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
