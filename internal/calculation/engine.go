package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/lifeplan/household-projection/pkg/dateutil"
)

// ProjectionMonths is the fixed simulation horizon: 30 years.
const ProjectionMonths = 360

// ProjectionInput bundles the household's financial history for a
// projection run. All collections may be empty; the engine never fails on
// legitimate empty data.
type ProjectionInput struct {
	Assets       []domain.Asset
	AssetHistory []domain.ValuationRecord
	LifeEvents   []domain.LifeEvent
	Incomes      []domain.Income
	Expenses     []domain.Expense
}

// ProjectionEngine runs deterministic month-by-month net worth
// projections. The engine holds no per-run state: every call receives its
// own inputs and returns a freshly allocated result, so concurrent runs
// need no coordination.
type ProjectionEngine struct {
	Logger Logger

	// Now supplies the simulation anchor; the projection starts at the
	// first day of the current calendar month. Overridable for tests.
	Now func() time.Time
}

// NewProjectionEngine creates a projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunProjection simulates one scenario across the full 360-month horizon
// and returns the monthly series plus its summary. The computation is
// synchronous, side-effect free and always completes; rates are accepted
// as-is (validating them belongs to the settings-editing surface).
func (pe *ProjectionEngine) RunProjection(ctx context.Context, settings *domain.SimulationSettings, input *ProjectionInput) (*domain.ProjectionResult, error) {
	if settings == nil {
		return nil, fmt.Errorf("projection requires settings")
	}
	if input == nil {
		input = &ProjectionInput{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startDate := dateutil.StartOfMonth(pe.Now())
	endDate := dateutil.AddMonths(startDate, ProjectionMonths)

	initial := CurrentBalances(input.Assets, input.AssetHistory)
	baseIncome := baselineIncome(input.Incomes)
	baseExpense := baselineExpense(input.Expenses)

	pe.Logger.Debugf("projection %q: start=%s initial=%s baseline income=%s expense=%s",
		settings.Name, startDate.Format("2006-01"), initial.Total().StringFixed(0),
		baseIncome.StringFixed(0), baseExpense.StringFixed(0))

	rows := pe.project(startDate, initial, settings, input.LifeEvents, baseIncome, baseExpense)
	summary := summarize(rows, initial.Total())

	if len(summary.InsolventMonths) > 0 {
		pe.Logger.Warnf("projection %q: balance goes negative in %d months, first %s",
			settings.Name, len(summary.InsolventMonths), summary.InsolventMonths[0].Format("2006-01"))
	}

	return &domain.ProjectionResult{
		SettingsID:   settings.ID,
		ScenarioName: settings.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		Rows:         rows,
		Summary:      summary,
	}, nil
}
