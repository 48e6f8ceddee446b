package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeplan/household-projection/internal/calculation"
	"github.com/lifeplan/household-projection/internal/config"
	"github.com/lifeplan/household-projection/internal/domain"
	"github.com/lifeplan/household-projection/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile string
	verbose    bool
)

// stderrLogger implements calculation.Logger for the --verbose flag.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifeplan",
		Short: "Household net worth projection",
		Long:  "lifeplan projects a household's net worth 30 years forward from a YAML plan of assets, cash flow history, life events and scenarios.",
	}
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "plan file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, detailed-csv, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose engine logging to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	projectCmd := &cobra.Command{
		Use:   "project [scenario]",
		Short: "Project a single scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runProject(cmd.Context(), name)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario...]",
		Short: "Compare scenarios against the same financial snapshot",
		Long:  fmt.Sprintf("Compare up to %d scenarios; with no arguments, all scenarios in the plan are compared.", calculation.MaxCompareScenarios),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), args)
		},
	}

	rootCmd.AddCommand(projectCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadPlanAndEngine() (*config.Plan, *calculation.ProjectionEngine, error) {
	plan, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewProjectionEngine()
	if verbose {
		engine.SetLogger(stderrLogger{})
	}
	return plan, engine, nil
}

func runProject(ctx context.Context, scenarioName string) error {
	plan, engine, err := loadPlanAndEngine()
	if err != nil {
		return err
	}

	scenario, err := plan.Scenario(scenarioName)
	if err != nil {
		return err
	}

	result, err := engine.RunProjection(ctx, scenario, planInput(plan))
	if err != nil {
		return err
	}

	comparison := &domain.ScenarioComparison{Results: []domain.ProjectionResult{*result}}
	return emit(comparison)
}

func runCompare(ctx context.Context, names []string) error {
	plan, engine, err := loadPlanAndEngine()
	if err != nil {
		return err
	}

	scenarios := plan.Scenarios
	if len(names) > 0 {
		scenarios = nil
		for _, name := range names {
			sc, err := plan.Scenario(name)
			if err != nil {
				return err
			}
			scenarios = append(scenarios, *sc)
		}
	}

	if verbose {
		start := engine.Now()
		for _, m := range plan.Household.Members {
			fmt.Fprintf(os.Stderr, "INFO  member %s (%s): age %d at projection start\n", m.Name, m.Relation, m.Age(start))
		}
	}

	comparison, err := engine.CompareScenarios(ctx, scenarios, planInput(plan))
	if err != nil {
		return err
	}
	return emit(comparison)
}

func planInput(plan *config.Plan) *calculation.ProjectionInput {
	return &calculation.ProjectionInput{
		Assets:       plan.Assets,
		AssetHistory: plan.Valuations,
		LifeEvents:   plan.LifeEvents,
		Incomes:      plan.Incomes,
		Expenses:     plan.Expenses,
	}
}

func emit(comparison *domain.ScenarioComparison) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q", formatName)
	}
	data, err := formatter.Format(comparison)
	if err != nil {
		return err
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
