// Package config loads scenario parameter files. The engines assume
// well-formed parameters, so every structural rule (ascending tax brackets,
// rates inside [0,1], a positive horizon) is enforced here, before anything
// reaches them.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jspencer/fincast/internal/domain"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenario parameters from a YAML file. A file that
// omits the tax schedule gets the married-joint 2025 defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.ScenarioParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(params.TaxRates.FederalBrackets) == 0 {
		stateRate := params.TaxRates.StateFlatRate
		params.TaxRates = domain.NewMarriedJoint2025Schedule()
		if !stateRate.IsZero() {
			params.TaxRates.StateFlatRate = stateRate
		}
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &params, nil
}

// ValidateParameters checks structural soundness of scenario parameters.
func (ip *InputParser) ValidateParameters(params *domain.ScenarioParameters) error {
	if params.TimeHorizonYears < 1 {
		return fmt.Errorf("time horizon must be at least 1 year, got %d", params.TimeHorizonYears)
	}
	if err := validateIncome(&params.Income); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	if err := validateExpenses(&params.Expenses); err != nil {
		return fmt.Errorf("expenses: %w", err)
	}
	if params.Investments.AnnualVolatility < 0 {
		return fmt.Errorf("investments: volatility must not be negative")
	}
	if err := validateTaxSchedule(&params.TaxRates); err != nil {
		return fmt.Errorf("tax rates: %w", err)
	}
	for i, loan := range params.Loans {
		if loan.Principal.IsNegative() {
			return fmt.Errorf("loan %d: principal must not be negative", i)
		}
		if loan.TermMonths < 0 {
			return fmt.Errorf("loan %d: term must not be negative", i)
		}
	}
	for i, event := range append(append([]domain.OneTimeEvent{}, params.OneTimePurchases...), params.OneTimeWindfalls...) {
		if event.Month < 1 || event.Month > params.TimeHorizonYears*12 {
			return fmt.Errorf("one-time event %d (%s): month %d outside horizon", i, event.Label, event.Month)
		}
	}
	return nil
}

func validateIncome(income *domain.IncomeProjection) error {
	if income.BaseAnnualSalary.IsNegative() {
		return fmt.Errorf("base salary must not be negative")
	}
	if income.IncomeVolatility < 0 {
		return fmt.Errorf("income volatility must not be negative")
	}
	if freq := income.BonusFrequencyPerYear; freq < 0 || (freq > 0 && 12%freq != 0) {
		return fmt.Errorf("bonus frequency must divide the year into equal intervals, got %d", freq)
	}
	return nil
}

func validateExpenses(expenses *domain.ExpenseProjection) error {
	for category, amount := range expenses.BaseMonthlyExpenses {
		if amount.IsNegative() {
			return fmt.Errorf("category %s: amount must not be negative", category)
		}
	}
	for category, months := range expenses.SeasonalMultipliers {
		for month := range months {
			if month < 1 || month > 12 {
				return fmt.Errorf("category %s: seasonal month %d outside 1..12", category, month)
			}
		}
	}
	return nil
}

func validateTaxSchedule(schedule *domain.TaxRateSchedule) error {
	if len(schedule.FederalBrackets) == 0 {
		return fmt.Errorf("at least one federal bracket is required")
	}
	prev := decimal.Zero
	for i, bracket := range schedule.FederalBrackets {
		if err := validateRate("bracket rate", bracket.Rate); err != nil {
			return err
		}
		// The final bracket is unbounded; its upper bound is not checked.
		if i < len(schedule.FederalBrackets)-1 {
			if bracket.Upper.LessThanOrEqual(prev) {
				return fmt.Errorf("bracket bounds must be strictly ascending (bracket %d)", i)
			}
			prev = bracket.Upper
		}
	}
	if err := validateRate("state rate", schedule.StateFlatRate); err != nil {
		return err
	}
	if err := validateRate("fica rate", schedule.FICARate); err != nil {
		return err
	}
	return validateRate("capital gains rate", schedule.LongTermCapitalGainsRate)
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be within [0,1], got %s", name, rate)
	}
	return nil
}
