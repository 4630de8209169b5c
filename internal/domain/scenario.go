package domain

import "github.com/shopspring/decimal"

// IncomeProjection describes how gross income evolves over the horizon.
// IncomeVolatility is a relative standard deviation and is only consumed by
// the Monte Carlo risk analyzer, never by the deterministic simulator.
type IncomeProjection struct {
	BaseAnnualSalary      decimal.Decimal `json:"baseAnnualSalary" yaml:"baseAnnualSalary"`
	AnnualGrowthRate      float64         `json:"annualGrowthRate" yaml:"annualGrowthRate"`
	BonusAmount           decimal.Decimal `json:"bonusAmount" yaml:"bonusAmount"`
	BonusFrequencyPerYear int             `json:"bonusFrequencyPerYear" yaml:"bonusFrequencyPerYear"`
	OtherAnnualIncome     decimal.Decimal `json:"otherAnnualIncome" yaml:"otherAnnualIncome"`
	IncomeVolatility      float64         `json:"incomeVolatility" yaml:"incomeVolatility"`
}

// ExpenseProjection describes baseline monthly spending by category, an
// annual inflation rate, and optional per-category seasonal multipliers
// keyed by calendar month (1..12).
type ExpenseProjection struct {
	BaseMonthlyExpenses map[string]decimal.Decimal `json:"baseMonthlyExpenses" yaml:"baseMonthlyExpenses"`
	AnnualInflationRate float64                    `json:"annualInflationRate" yaml:"annualInflationRate"`
	SeasonalMultipliers map[string]map[int]float64 `json:"seasonalMultipliers,omitempty" yaml:"seasonalMultipliers,omitempty"`
}

// SeasonalMultiplier returns the multiplier for a category in a given
// calendar month. An absent category or month means no seasonal adjustment,
// so the multiplier defaults to 1.
func (ep ExpenseProjection) SeasonalMultiplier(category string, monthOfYear int) float64 {
	months, ok := ep.SeasonalMultipliers[category]
	if !ok {
		return 1.0
	}
	mult, ok := months[monthOfYear]
	if !ok {
		return 1.0
	}
	return mult
}

// TotalBaseMonthly returns the sum of all baseline category amounts.
func (ep ExpenseProjection) TotalBaseMonthly() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range ep.BaseMonthlyExpenses {
		total = total.Add(amount)
	}
	return total
}

// InvestmentProjection describes market assumptions. AssetAllocation and
// MonthlyContributions are carried for reporting and scenario building;
// contributions move money between accounts and so do not change net worth,
// which is why the simulator does not consume them directly.
type InvestmentProjection struct {
	ExpectedAnnualReturn       float64                    `json:"expectedAnnualReturn" yaml:"expectedAnnualReturn"`
	AnnualVolatility           float64                    `json:"annualVolatility" yaml:"annualVolatility"`
	RebalancingFrequencyMonths int                        `json:"rebalancingFrequencyMonths" yaml:"rebalancingFrequencyMonths"`
	AssetAllocation            map[string]float64         `json:"assetAllocation,omitempty" yaml:"assetAllocation,omitempty"`
	MonthlyContributions       map[string]decimal.Decimal `json:"monthlyContributions,omitempty" yaml:"monthlyContributions,omitempty"`
}

// LoanProjection describes a fixed-rate amortizing loan.
type LoanProjection struct {
	Principal           decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualInterestRate  float64         `json:"annualInterestRate" yaml:"annualInterestRate"`
	TermMonths          int             `json:"termMonths" yaml:"termMonths"`
	ExtraMonthlyPayment decimal.Decimal `json:"extraMonthlyPayment" yaml:"extraMonthlyPayment"`
}

// OneTimeEvent is a single cash event at an exact month index of the
// projection (1-based; month 0 is the baseline anchor and carries no flows).
type OneTimeEvent struct {
	Month  int             `json:"month" yaml:"month"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Label  string          `json:"label" yaml:"label"`
}

// ScenarioParameters is the complete configuration for one forecast run.
// It is built once per run and treated as immutable while the simulator and
// risk analyzer consume it.
type ScenarioParameters struct {
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	TimeHorizonYears int    `json:"timeHorizonYears" yaml:"timeHorizonYears"`

	Income      IncomeProjection     `json:"income" yaml:"income"`
	Expenses    ExpenseProjection    `json:"expenses" yaml:"expenses"`
	Investments InvestmentProjection `json:"investments" yaml:"investments"`
	Loans       []LoanProjection     `json:"loans,omitempty" yaml:"loans,omitempty"`

	TaxRates TaxRateSchedule `json:"taxRates" yaml:"taxRates"`
	// Annual pre-tax contributions by account label (401k, HSA, ...).
	// Their sum reduces federal and state taxable income but never FICA.
	TaxAdvantagedContributions map[string]decimal.Decimal `json:"taxAdvantagedContributions,omitempty" yaml:"taxAdvantagedContributions,omitempty"`

	OneTimePurchases []OneTimeEvent `json:"oneTimePurchases,omitempty" yaml:"oneTimePurchases,omitempty"`
	OneTimeWindfalls []OneTimeEvent `json:"oneTimeWindfalls,omitempty" yaml:"oneTimeWindfalls,omitempty"`
}

// PretaxContribution returns the total annual tax-advantaged contribution.
func (sp ScenarioParameters) PretaxContribution() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range sp.TaxAdvantagedContributions {
		total = total.Add(amount)
	}
	return total
}
