package calculation

import (
	"context"
	"testing"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenariosRanking(t *testing.T) {
	engine := fixedEngine()
	input := cashOnlySnapshot(decimal.NewFromInt(1000000))

	scenarios := []domain.SimulationSettings{
		{Name: "flat"},
		{Name: "growth", ExpectedReturns: domain.ExpectedReturns{Cash: decimal.NewFromFloat(0.03)}},
	}

	comparison, err := engine.CompareScenarios(context.Background(), scenarios, input)
	require.NoError(t, err)

	require.Len(t, comparison.Results, 2)
	assert.Equal(t, "growth", comparison.BestFinalBalance)
	assert.Empty(t, comparison.InsolventScenarios)
}

func TestCompareScenariosMatchesSoloRuns(t *testing.T) {
	engine := fixedEngine()
	input := cashOnlySnapshot(decimal.NewFromInt(2000000))

	scenarios := []domain.SimulationSettings{
		{Name: "a", ExpectedReturns: domain.ExpectedReturns{Cash: decimal.NewFromFloat(0.02)}},
		{Name: "b", InflationRate: decimal.NewFromFloat(0.01)},
		{Name: "c"},
	}

	comparison, err := engine.CompareScenarios(context.Background(), scenarios, input)
	require.NoError(t, err)

	for i := range scenarios {
		solo, err := engine.RunProjection(context.Background(), &scenarios[i], input)
		require.NoError(t, err)
		got := comparison.Results[i]
		assert.Equal(t, scenarios[i].Name, got.ScenarioName)
		assert.True(t, got.Summary.FinalBalance.Equal(solo.Summary.FinalBalance),
			"scenario %q: concurrent run diverged from solo run", scenarios[i].Name)
	}
}

func TestCompareScenariosFlagsInsolvent(t *testing.T) {
	engine := fixedEngine()
	input := &ProjectionInput{
		Expenses: []domain.Expense{{Amount: decimal.NewFromInt(100000)}},
	}

	scenarios := []domain.SimulationSettings{{Name: "doomed"}}
	comparison, err := engine.CompareScenarios(context.Background(), scenarios, input)
	require.NoError(t, err)

	assert.Equal(t, []string{"doomed"}, comparison.InsolventScenarios)
}

func TestCompareScenariosLimits(t *testing.T) {
	engine := fixedEngine()

	_, err := engine.CompareScenarios(context.Background(), nil, &ProjectionInput{})
	assert.Error(t, err)

	tooMany := make([]domain.SimulationSettings, MaxCompareScenarios+1)
	for i := range tooMany {
		tooMany[i].Name = string(rune('a' + i))
	}
	_, err = engine.CompareScenarios(context.Background(), tooMany, &ProjectionInput{})
	assert.Error(t, err)
}
