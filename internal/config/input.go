package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Plan is the on-disk representation of a household's financial data plus
// the scenarios to project it under.
type Plan struct {
	SchemaVersion int                         `yaml:"schema_version"`
	Household     Household                   `yaml:"household"`
	Assets        []domain.Asset              `yaml:"assets"`
	Valuations    []domain.ValuationRecord    `yaml:"valuations"`
	Incomes       []domain.Income             `yaml:"incomes"`
	Expenses      []domain.Expense            `yaml:"expenses"`
	LifeEvents    []domain.LifeEvent          `yaml:"life_events"`
	Scenarios     []domain.SimulationSettings `yaml:"scenarios"`
}

// Household groups member records in the plan file.
type Household struct {
	Members []domain.HouseholdMember `yaml:"members"`
}

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file, upgrades older schema
// versions and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.UpgradePlan(&plan); err != nil {
		return nil, err
	}
	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	ip.assignIDs(&plan)
	return &plan, nil
}

// UpgradePlan migrates a plan to the current schema version. Version 1
// plans predate the insurance category and withdrawal policies: their
// scenarios load with a zero insurance return and no withdrawal block,
// which the zero values already express, so upgrading only stamps the
// version. An untagged plan is treated as current.
func (ip *InputParser) UpgradePlan(plan *Plan) error {
	switch plan.SchemaVersion {
	case 0:
		plan.SchemaVersion = domain.CurrentSchemaVersion
	case 1:
		plan.SchemaVersion = domain.CurrentSchemaVersion
	case domain.CurrentSchemaVersion:
	default:
		return fmt.Errorf("unsupported schema version %d (current is %d)", plan.SchemaVersion, domain.CurrentSchemaVersion)
	}
	for i := range plan.Scenarios {
		plan.Scenarios[i].SchemaVersion = plan.SchemaVersion
	}
	return nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, asset := range plan.Assets {
		if !asset.Category.Valid() {
			return fmt.Errorf("asset %d (%s): unknown category %q", i, asset.Name, asset.Category)
		}
		if asset.CoverageAmount != nil && asset.CoverageAmount.IsNegative() {
			return fmt.Errorf("asset %d (%s): coverage amount cannot be negative", i, asset.Name)
		}
	}

	for i, ev := range plan.LifeEvents {
		if err := ip.validateLifeEvent(&ev); err != nil {
			return fmt.Errorf("life event %d (%s): %w", i, ev.Name, err)
		}
	}

	for i, scenario := range plan.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, scenario.Name, err)
		}
	}

	return nil
}

func (ip *InputParser) validateLifeEvent(ev *domain.LifeEvent) error {
	if ev.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	switch ev.Type {
	case domain.EventOneTime, domain.EventRecurring:
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	if ev.EndDate != nil && ev.EndDate.Before(ev.Date) {
		return fmt.Errorf("end date cannot be before start date")
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.SimulationSettings) error {
	if scenario.Name == "" {
		return fmt.Errorf("name is required")
	}

	// Allow deflation but cap extreme values; the engine itself accepts
	// rates as-is.
	if scenario.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || scenario.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%",
			scenario.InflationRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	for _, item := range scenario.FutureIncome {
		if err := ip.validateFutureItem(&item); err != nil {
			return fmt.Errorf("future income %q: %w", item.Description, err)
		}
	}
	for _, item := range scenario.FutureExpense {
		if err := ip.validateFutureItem(&item); err != nil {
			return fmt.Errorf("future expense %q: %w", item.Description, err)
		}
	}

	if w := scenario.Withdrawal; w != nil && w.Enabled {
		if w.StartDate.IsZero() {
			return fmt.Errorf("withdrawal start date is required when enabled")
		}
		if w.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("withdrawal monthly amount must be positive")
		}
	}

	return nil
}

func (ip *InputParser) validateFutureItem(item *domain.FutureCashItem) error {
	if item.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if !item.Frequency.Valid() {
		return fmt.Errorf("unknown frequency %q", item.Frequency)
	}
	if item.EndDate != nil && item.EndDate.Before(item.StartDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	return nil
}

// assignIDs fills in identities the plan author omitted.
func (ip *InputParser) assignIDs(plan *Plan) {
	for i := range plan.Household.Members {
		if plan.Household.Members[i].ID == "" {
			plan.Household.Members[i].ID = uuid.NewString()
		}
	}
	for i := range plan.Assets {
		if plan.Assets[i].ID == "" {
			plan.Assets[i].ID = uuid.NewString()
		}
	}
	for i := range plan.LifeEvents {
		if plan.LifeEvents[i].ID == "" {
			plan.LifeEvents[i].ID = uuid.NewString()
		}
	}
	for i := range plan.Scenarios {
		if plan.Scenarios[i].ID == "" {
			plan.Scenarios[i].ID = uuid.NewString()
		}
	}
}

// Scenario returns the named scenario, or the first one when name is
// empty.
func (p *Plan) Scenario(name string) (*domain.SimulationSettings, error) {
	if name == "" {
		return &p.Scenarios[0], nil
	}
	for i := range p.Scenarios {
		if p.Scenarios[i].Name == name {
			return &p.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found", name)
}
