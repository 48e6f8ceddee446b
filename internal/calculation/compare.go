package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/lifeplan/household-projection/internal/domain"
)

// MaxCompareScenarios caps how many scenarios one comparison evaluates.
const MaxCompareScenarios = 5

// CompareScenarios projects every scenario against the same financial
// snapshot and ranks the outcomes. Runs are independent and execute
// concurrently; none share balance state.
func (pe *ProjectionEngine) CompareScenarios(ctx context.Context, scenarios []domain.SimulationSettings, input *ProjectionInput) (*domain.ScenarioComparison, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}
	if len(scenarios) > MaxCompareScenarios {
		return nil, fmt.Errorf("comparison limited to %d scenarios, got %d", MaxCompareScenarios, len(scenarios))
	}

	results := make([]*domain.ProjectionResult, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, MaxCompareScenarios)

	for i := range scenarios {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx], errs[idx] = pe.RunProjection(ctx, &scenarios[idx], input)
		}(i)
	}
	wg.Wait()

	comparison := &domain.ScenarioComparison{}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", scenarios[i].Name, err)
		}
		comparison.Results = append(comparison.Results, *results[i])
	}

	rankScenarios(comparison)
	return comparison, nil
}

// rankScenarios fills the comparison's analysis fields from the collected
// results.
func rankScenarios(comparison *domain.ScenarioComparison) {
	if len(comparison.Results) == 0 {
		return
	}

	best := comparison.Results[0]
	highestMin := comparison.Results[0]
	for _, r := range comparison.Results[1:] {
		if r.Summary.FinalBalance.GreaterThan(best.Summary.FinalBalance) {
			best = r
		}
		if r.Summary.MinBalance.GreaterThan(highestMin.Summary.MinBalance) {
			highestMin = r
		}
	}
	comparison.BestFinalBalance = best.ScenarioName
	comparison.HighestMinBalance = highestMin.ScenarioName

	for _, r := range comparison.Results {
		if r.IsInsolvent() {
			comparison.InsolventScenarios = append(comparison.InsolventScenarios, r.ScenarioName)
		}
	}
}
