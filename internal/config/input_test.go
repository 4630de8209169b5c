package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspencer/fincast/internal/domain"
)

const sampleScenario = `name: "Steady State"
timeHorizonYears: 10
income:
  baseAnnualSalary: 120000
  annualGrowthRate: 0.03
  bonusAmount: 10000
  bonusFrequencyPerYear: 2
expenses:
  baseMonthlyExpenses:
    Housing: 2500
    Food: 800
  annualInflationRate: 0.025
  seasonalMultipliers:
    Utilities:
      1: 1.4
      7: 1.2
investments:
  expectedAnnualReturn: 0.07
  annualVolatility: 0.15
taxAdvantagedContributions:
  401k: 23000
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	params, err := parser.LoadFromFile(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	assert.Equal(t, "Steady State", params.Name)
	assert.Equal(t, 10, params.TimeHorizonYears)
	assert.True(t, params.Income.BaseAnnualSalary.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, 2, params.Income.BonusFrequencyPerYear)
	assert.True(t, params.Expenses.BaseMonthlyExpenses["Housing"].Equal(decimal.NewFromInt(2500)))
	assert.InDelta(t, 1.4, params.Expenses.SeasonalMultiplier("Utilities", 1), 1e-9)
	assert.InDelta(t, 0.15, params.Investments.AnnualVolatility, 1e-9)
	assert.True(t, params.PretaxContribution().Equal(decimal.NewFromInt(23000)))

	// Omitted tax schedule falls back to the married-joint defaults.
	assert.Len(t, params.TaxRates.FederalBrackets, 7)
	assert.True(t, params.TaxRates.FICARate.Equal(decimal.NewFromFloat(0.0765)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateParameters(t *testing.T) {
	valid := func() *domain.ScenarioParameters {
		params := domain.ScenarioParameters{
			Name:             "ok",
			TimeHorizonYears: 5,
			Income: domain.IncomeProjection{
				BaseAnnualSalary:      decimal.NewFromInt(100000),
				BonusFrequencyPerYear: 4,
			},
			Expenses: domain.ExpenseProjection{
				BaseMonthlyExpenses: map[string]decimal.Decimal{"Food": decimal.NewFromInt(800)},
			},
			TaxRates: domain.NewMarriedJoint2025Schedule(),
		}
		return &params
	}

	parser := NewInputParser()
	require.NoError(t, parser.ValidateParameters(valid()))

	tests := []struct {
		name    string
		mutate  func(*domain.ScenarioParameters)
		wantErr string
	}{
		{
			name:    "zero horizon",
			mutate:  func(p *domain.ScenarioParameters) { p.TimeHorizonYears = 0 },
			wantErr: "time horizon",
		},
		{
			name:    "negative salary",
			mutate:  func(p *domain.ScenarioParameters) { p.Income.BaseAnnualSalary = decimal.NewFromInt(-1) },
			wantErr: "salary",
		},
		{
			name:    "uneven bonus frequency",
			mutate:  func(p *domain.ScenarioParameters) { p.Income.BonusFrequencyPerYear = 5 },
			wantErr: "bonus frequency",
		},
		{
			name: "negative expense",
			mutate: func(p *domain.ScenarioParameters) {
				p.Expenses.BaseMonthlyExpenses["Food"] = decimal.NewFromInt(-10)
			},
			wantErr: "must not be negative",
		},
		{
			name: "seasonal month out of range",
			mutate: func(p *domain.ScenarioParameters) {
				p.Expenses.SeasonalMultipliers = map[string]map[int]float64{"Food": {13: 1.2}}
			},
			wantErr: "seasonal month",
		},
		{
			name:    "negative volatility",
			mutate:  func(p *domain.ScenarioParameters) { p.Investments.AnnualVolatility = -0.1 },
			wantErr: "volatility",
		},
		{
			name: "descending brackets",
			mutate: func(p *domain.ScenarioParameters) {
				p.TaxRates.FederalBrackets[1].Upper = decimal.NewFromInt(1)
			},
			wantErr: "ascending",
		},
		{
			name: "rate above one",
			mutate: func(p *domain.ScenarioParameters) {
				p.TaxRates.StateFlatRate = decimal.NewFromInt(2)
			},
			wantErr: "state rate",
		},
		{
			name:    "no brackets",
			mutate:  func(p *domain.ScenarioParameters) { p.TaxRates.FederalBrackets = nil },
			wantErr: "bracket",
		},
		{
			name: "event outside horizon",
			mutate: func(p *domain.ScenarioParameters) {
				p.OneTimePurchases = []domain.OneTimeEvent{{Month: 61, Amount: decimal.NewFromInt(100), Label: "late"}}
			},
			wantErr: "outside horizon",
		},
		{
			name: "negative loan principal",
			mutate: func(p *domain.ScenarioParameters) {
				p.Loans = []domain.LoanProjection{{Principal: decimal.NewFromInt(-5)}}
			},
			wantErr: "principal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid()
			tt.mutate(params)
			err := parser.ValidateParameters(params)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writeScenario(t, "timeHorizonYears: 0\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "validation failed")
}
