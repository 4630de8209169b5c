package domain

import "github.com/shopspring/decimal"

// MonthlyProjectionRecord is one row of the deterministic monthly forecast.
// Month 0 is the baseline anchor: all flow fields are zero and NetWorth is
// the snapshot value unchanged.
type MonthlyProjectionRecord struct {
	Month            int             `json:"month"`
	GrossIncome      decimal.Decimal `json:"grossIncome"`
	Expenses         decimal.Decimal `json:"expenses"`
	Taxes            decimal.Decimal `json:"taxes"`
	NetCashFlow      decimal.Decimal `json:"netCashFlow"`
	InvestmentGrowth decimal.Decimal `json:"investmentGrowth"`
	OneTimeNet       decimal.Decimal `json:"oneTimeNet"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// AnnualRecord is a monthly record falling on a year boundary, annotated
// with its integer year.
type AnnualRecord struct {
	Year int `json:"year"`
	MonthlyProjectionRecord
}

// TaxYearSummary aggregates gross income and taxes over one projection year.
// EffectiveRatePct is expressed in percent.
type TaxYearSummary struct {
	Year             int             `json:"year"`
	GrossIncome      decimal.Decimal `json:"grossIncome"`
	Taxes            decimal.Decimal `json:"taxes"`
	EffectiveRatePct decimal.Decimal `json:"effectiveTaxRate"`
}

// ScenarioMetrics are the headline numbers of a forecast.
type ScenarioMetrics struct {
	FinalNetWorth         decimal.Decimal `json:"finalNetWorth"`
	TotalGrowth           decimal.Decimal `json:"totalGrowth"`
	AnnualizedReturn      float64         `json:"annualizedReturn"`
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	TotalTaxes            decimal.Decimal `json:"totalTaxes"`
	TotalInvestmentGrowth decimal.Decimal `json:"totalInvestmentGrowth"`
	AvgMonthlyCashFlow    decimal.Decimal `json:"avgMonthlyCashFlow"`
	// Set only for losing scenarios: the first year boundary at or above
	// the starting net worth, absent when no such year exists or the
	// scenario ends ahead.
	YearsToBreakEven *int `json:"yearsToBreakEven,omitempty"`
}

// RiskAnalysis is the outcome distribution of the Monte Carlo trials.
// All values describe the final net worth across trials except
// ProbabilityOfLoss (fraction of trials ending below the current net worth)
// and ValueAtRisk5 (current net worth minus the 5th percentile).
type RiskAnalysis struct {
	Mean              float64 `json:"mean"`
	Median            float64 `json:"median"`
	StdDev            float64 `json:"stdDev"`
	P5                float64 `json:"p5"`
	P25               float64 `json:"p25"`
	P75               float64 `json:"p75"`
	P95               float64 `json:"p95"`
	ProbabilityOfLoss float64 `json:"probabilityOfLoss"`
	ValueAtRisk5      float64 `json:"valueAtRisk5"`
}

// ForecastResult is the complete output of one scenario run. It is built
// once and never mutated afterward.
type ForecastResult struct {
	MonthlyProjections []MonthlyProjectionRecord `json:"monthlyProjections"`
	AnnualSummary      []AnnualRecord            `json:"annualSummary"`
	TaxSummary         []TaxYearSummary          `json:"taxSummary"`
	ScenarioMetrics    ScenarioMetrics           `json:"scenarioMetrics"`
	RiskAnalysis       *RiskAnalysis             `json:"riskAnalysis,omitempty"`
}
