package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/domain"
)

// ComputeTax maps gross income and realized investment gains to a full tax
// breakdown under the given schedule.
//
// Pre-tax contributions reduce federal and state taxable income but not
// FICA, which is assessed on gross wages the way payroll actually works.
// Inputs are assumed non-negative except gross income, which is clamped at
// zero after the pre-tax deduction; no input combination returns an error.
// The schedule is assumed well-formed (ascending bracket bounds, rates in
// [0,1]); config validation is the caller's job.
func ComputeTax(grossIncome, investmentGains decimal.Decimal, schedule domain.TaxRateSchedule, pretaxContribution decimal.Decimal) domain.TaxBreakdown {
	taxableIncome := grossIncome.Sub(pretaxContribution)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	breakdown := domain.TaxBreakdown{
		Federal:       progressiveTax(taxableIncome, schedule.FederalBrackets),
		State:         taxableIncome.Mul(schedule.StateFlatRate),
		FICA:          grossIncome.Mul(schedule.FICARate),
		InvestmentTax: investmentGains.Mul(schedule.LongTermCapitalGainsRate),
	}
	breakdown.Total = breakdown.Federal.Add(breakdown.State).Add(breakdown.FICA).Add(breakdown.InvestmentTax)

	// Guard the zero-income case: the effective rate divides by at least 1.
	denominator := grossIncome
	if denominator.LessThan(decimal.NewFromInt(1)) {
		denominator = decimal.NewFromInt(1)
	}
	breakdown.EffectiveRate = breakdown.Total.Div(denominator)
	breakdown.MarginalRate = marginalRate(taxableIncome, schedule.FederalBrackets).Add(schedule.StateFlatRate)

	return breakdown
}

// progressiveTax walks the brackets in ascending order, taxing each slice of
// income only at its own bracket's rate. The final bracket is unbounded.
func progressiveTax(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return decimal.Zero
	}

	tax := decimal.Zero
	prevBound := decimal.Zero
	for i, bracket := range brackets {
		if income.LessThanOrEqual(prevBound) {
			break
		}
		slice := income.Sub(prevBound)
		if i < len(brackets)-1 {
			slice = decimal.Min(income, bracket.Upper).Sub(prevBound)
		}
		if slice.GreaterThan(decimal.Zero) {
			tax = tax.Add(slice.Mul(bracket.Rate))
		}
		if i < len(brackets)-1 && income.LessThanOrEqual(bracket.Upper) {
			break
		}
		prevBound = bracket.Upper
	}
	return tax
}

// marginalRate returns the rate of the first bracket whose bound covers the
// taxable income, or the top bracket's rate.
func marginalRate(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	for i, bracket := range brackets {
		if i == len(brackets)-1 {
			break
		}
		if income.LessThanOrEqual(bracket.Upper) {
			return bracket.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
