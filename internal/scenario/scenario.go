// Package scenario builds ScenarioParameters for the named what-if presets.
// Each preset is a small parameter transform layered on a base scenario
// seeded from the current ledger snapshot; none of them adds simulation
// logic of its own.
package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/domain"
)

// Default assumptions for a freshly seeded scenario.
const (
	DefaultSalaryGrowthRate = 0.03
	DefaultInflationRate    = 0.025
	DefaultExpectedReturn   = 0.07
	DefaultVolatility       = 0.15
	DefaultIncomeVolatility = 0.05
)

// defaultCategories seed the expense map when the ledger has no history.
var defaultCategories = []string{"Housing", "Food", "Transportation", "Healthcare", "Entertainment", "Other"}

// Preset mutates a base scenario into one of the named what-if shapes.
type Preset interface {
	Apply(params *domain.ScenarioParameters)
}

// Base seeds a scenario from the snapshot: salary from average monthly
// income, per-category expenses from the historical breakdown (or flat
// defaults when there is none), married-joint 2025 taxes and moderate market
// assumptions.
func Base(snapshot domain.Snapshot, horizonYears int) domain.ScenarioParameters {
	expenses := make(map[string]decimal.Decimal)
	if len(snapshot.ExpenseBreakdown) > 0 {
		for category, stats := range snapshot.ExpenseBreakdown {
			expenses[category] = decimal.NewFromFloat(stats.MonthlyAverage)
		}
	} else {
		for _, category := range defaultCategories {
			expenses[category] = decimal.NewFromInt(500)
		}
	}

	return domain.ScenarioParameters{
		Name:             "Custom Scenario",
		TimeHorizonYears: horizonYears,
		Income: domain.IncomeProjection{
			BaseAnnualSalary:      snapshot.AvgMonthlyIncome.Mul(decimal.NewFromInt(12)),
			AnnualGrowthRate:      DefaultSalaryGrowthRate,
			BonusFrequencyPerYear: 1,
			IncomeVolatility:      DefaultIncomeVolatility,
		},
		Expenses: domain.ExpenseProjection{
			BaseMonthlyExpenses: expenses,
			AnnualInflationRate: DefaultInflationRate,
		},
		Investments: domain.InvestmentProjection{
			ExpectedAnnualReturn:       DefaultExpectedReturn,
			AnnualVolatility:           DefaultVolatility,
			RebalancingFrequencyMonths: 12,
			MonthlyContributions:       map[string]decimal.Decimal{},
		},
		TaxRates:                   domain.NewMarriedJoint2025Schedule(),
		TaxAdvantagedContributions: map[string]decimal.Decimal{},
	}
}

// Custom is the identity preset.
type Custom struct{}

func (Custom) Apply(*domain.ScenarioParameters) {}

// addContribution bumps a labeled monthly contribution, creating the map
// when the scenario came without one.
func addContribution(params *domain.ScenarioParameters, label string, amount decimal.Decimal) {
	if params.Investments.MonthlyContributions == nil {
		params.Investments.MonthlyContributions = make(map[string]decimal.Decimal)
	}
	params.Investments.MonthlyContributions[label] = params.Investments.MonthlyContributions[label].Add(amount)
}

// addExpense bumps a category's baseline monthly amount.
func addExpense(params *domain.ScenarioParameters, category string, amount decimal.Decimal) {
	if params.Expenses.BaseMonthlyExpenses == nil {
		params.Expenses.BaseMonthlyExpenses = make(map[string]decimal.Decimal)
	}
	params.Expenses.BaseMonthlyExpenses[category] = params.Expenses.BaseMonthlyExpenses[category].Add(amount)
}
