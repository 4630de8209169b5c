package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/calculation"
	"github.com/jspencer/fincast/internal/domain"
)

// HomePurchase models buying a home: the mortgage is added as a loan, its
// amortized payment plus property tax and insurance fold into the Housing
// category, and the down payment plus closing costs hit as a month-1
// purchase.
type HomePurchase struct {
	HomePrice         decimal.Decimal
	DownPaymentPct    float64 // 0-100
	MortgageRate      float64
	MortgageYears     int
	PropertyTaxAnnual decimal.Decimal
	InsuranceAnnual   decimal.Decimal
	ClosingCosts      decimal.Decimal
}

func (hp HomePurchase) Apply(params *domain.ScenarioParameters) {
	params.Name = "Home Purchase"

	downPayment := hp.HomePrice.Mul(decimal.NewFromFloat(hp.DownPaymentPct / 100))
	loan := domain.LoanProjection{
		Principal:          hp.HomePrice.Sub(downPayment),
		AnnualInterestRate: hp.MortgageRate,
		TermMonths:         hp.MortgageYears * 12,
	}
	params.Loans = append(params.Loans, loan)

	carryingCosts := hp.PropertyTaxAnnual.Add(hp.InsuranceAnnual).Div(decimal.NewFromInt(12))
	addExpense(params, "Housing", calculation.MonthlyPayment(loan).Add(carryingCosts))

	params.OneTimePurchases = append(params.OneTimePurchases, domain.OneTimeEvent{
		Month:  1,
		Amount: downPayment.Add(hp.ClosingCosts),
		Label:  "Home down payment and closing costs",
	})
}

// InvestmentGrowth directs an extra monthly amount into investments.
type InvestmentGrowth struct {
	AdditionalMonthly decimal.Decimal
}

func (ig InvestmentGrowth) Apply(params *domain.ScenarioParameters) {
	params.Name = "Investment Growth"
	addContribution(params, "additional", ig.AdditionalMonthly)
}

// EmergencyFund parks monthly savings at a conservative return until the
// fund covers the target number of months of expenses.
type EmergencyFund struct {
	TargetMonths   int
	MonthlySavings decimal.Decimal
}

func (ef EmergencyFund) Apply(params *domain.ScenarioParameters) {
	params.Name = "Emergency Fund"
	params.Investments.ExpectedAnnualReturn = 0.03
	addContribution(params, "emergency", ef.MonthlySavings)
}

// TargetFund is the fund size this preset aims for: current monthly
// expenses times the target month count.
func (ef EmergencyFund) TargetFund(params domain.ScenarioParameters) decimal.Decimal {
	return params.Expenses.TotalBaseMonthly().Mul(decimal.NewFromInt(int64(ef.TargetMonths)))
}

// Retirement stretches the horizon to the retirement age and raises
// tax-advantaged contributions.
type Retirement struct {
	CurrentAge          int
	RetirementAge       int
	MonthlyContribution decimal.Decimal
}

func (r Retirement) Apply(params *domain.ScenarioParameters) {
	params.Name = "Retirement Planning"
	if years := r.RetirementAge - r.CurrentAge; years > 0 {
		params.TimeHorizonYears = years
	}
	if params.TaxAdvantagedContributions == nil {
		params.TaxAdvantagedContributions = make(map[string]decimal.Decimal)
	}
	params.TaxAdvantagedContributions["401k"] = r.MonthlyContribution.Mul(decimal.NewFromInt(12))
	addContribution(params, "retirement", r.MonthlyContribution)
}

// CareerChange switches to a new salary and growth path and books the
// transition costs as a one-time purchase.
type CareerChange struct {
	TransitionMonth int
	NewAnnualSalary decimal.Decimal
	TransitionCosts decimal.Decimal
	NewGrowthRate   float64
}

func (cc CareerChange) Apply(params *domain.ScenarioParameters) {
	params.Name = "Career Change"
	params.OneTimePurchases = append(params.OneTimePurchases, domain.OneTimeEvent{
		Month:  cc.TransitionMonth,
		Amount: cc.TransitionCosts,
		Label:  "Career transition costs",
	})
	params.Income.BaseAnnualSalary = cc.NewAnnualSalary
	params.Income.AnnualGrowthRate = cc.NewGrowthRate
}

// DebtPayoff throws an extra payment at every loan and reflects the outlay
// in the Debt Service expense category so the cash flow carries it.
type DebtPayoff struct {
	ExtraMonthlyPayment decimal.Decimal
}

func (dp DebtPayoff) Apply(params *domain.ScenarioParameters) {
	params.Name = "Debt Payoff"
	for i := range params.Loans {
		params.Loans[i].ExtraMonthlyPayment = params.Loans[i].ExtraMonthlyPayment.Add(dp.ExtraMonthlyPayment)
	}
	addExpense(params, "Debt Service", dp.ExtraMonthlyPayment)
}

// Education books tuition as one purchase per program year.
type Education struct {
	StartMonth     int
	Years          int
	TuitionPerYear decimal.Decimal
}

func (ed Education) Apply(params *domain.ScenarioParameters) {
	params.Name = "Education Investment"
	for year := 0; year < ed.Years; year++ {
		params.OneTimePurchases = append(params.OneTimePurchases, domain.OneTimeEvent{
			Month:  ed.StartMonth + year*12,
			Amount: ed.TuitionPerYear,
			Label:  fmt.Sprintf("Tuition year %d", year+1),
		})
	}
}

// BusinessStartup books the startup outlay at launch and scales salary for
// the ramp-up period (a fraction of the old salary kept while the business
// gets going).
type BusinessStartup struct {
	StartupCosts  decimal.Decimal
	LaunchMonth   int
	SalaryKeptPct float64 // 0-100
}

func (bs BusinessStartup) Apply(params *domain.ScenarioParameters) {
	params.Name = "Business Startup"
	params.OneTimePurchases = append(params.OneTimePurchases, domain.OneTimeEvent{
		Month:  bs.LaunchMonth,
		Amount: bs.StartupCosts,
		Label:  "Business startup costs",
	})
	params.Income.BaseAnnualSalary = params.Income.BaseAnnualSalary.Mul(decimal.NewFromFloat(bs.SalaryKeptPct / 100))
}
