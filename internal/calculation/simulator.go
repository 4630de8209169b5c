package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/domain"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Simulator produces the deterministic month-by-month projection. It is a
// pure function of its inputs: the same parameters and snapshot always yield
// the same result.
type Simulator struct {
	Logger Logger
}

// NewSimulator creates a simulator with a no-op logger.
func NewSimulator() *Simulator {
	return &Simulator{Logger: NopLogger{}}
}

// Forecast runs the monthly projection over the scenario horizon, starting
// from the snapshot's net worth. Month 0 is emitted as a baseline anchor
// with zero flows; every later month applies, in order: income, expenses,
// taxes, investment growth on the pre-update balance, one-time events, then
// a single net-worth update.
//
// Taxes are estimated by annualizing the current month's income and dividing
// the annual liability back down. With lumpy income (bonus months) this
// over- or under-states the true year-to-date liability; the approximation
// is intentional and kept for output stability.
func (s *Simulator) Forecast(params domain.ScenarioParameters, snapshot domain.Snapshot) *domain.ForecastResult {
	months := params.TimeHorizonYears * 12
	if months < 0 {
		months = 0
	}

	baseMonthlySalary := params.Income.BaseAnnualSalary.Div(twelve)
	otherMonthlyIncome := params.Income.OtherAnnualIncome.Div(twelve)
	pretax := params.PretaxContribution()
	monthlyReturn := math.Pow(1+params.Investments.ExpectedAnnualReturn, 1.0/12) - 1

	netWorth := snapshot.NetWorth
	records := make([]domain.MonthlyProjectionRecord, 0, months+1)
	records = append(records, domain.MonthlyProjectionRecord{Month: 0, NetWorth: netWorth})

	for month := 1; month <= months; month++ {
		monthOfYear := (month-1)%12 + 1

		growthFactor := math.Pow(1+params.Income.AnnualGrowthRate, float64(month)/12)
		income := baseMonthlySalary.Mul(decimal.NewFromFloat(growthFactor)).Add(otherMonthlyIncome)
		if freq := params.Income.BonusFrequencyPerYear; freq > 0 && month%(12/freq) == 0 {
			income = income.Add(params.Income.BonusAmount.Div(decimal.NewFromInt(int64(freq))))
		}

		inflationFactor := math.Pow(1+params.Expenses.AnnualInflationRate, float64(month)/12)
		expenses := decimal.Zero
		for category, base := range params.Expenses.BaseMonthlyExpenses {
			factor := inflationFactor * params.Expenses.SeasonalMultiplier(category, monthOfYear)
			expenses = expenses.Add(base.Mul(decimal.NewFromFloat(factor)))
		}

		taxes := ComputeTax(income.Mul(twelve), decimal.Zero, params.TaxRates, pretax).Total.Div(twelve)

		// Growth compounds on the balance as it stood before this month's
		// flows; the update happens once, at the end.
		growth := netWorth.Mul(decimal.NewFromFloat(monthlyReturn))

		oneTimeNet := decimal.Zero
		for _, event := range params.OneTimePurchases {
			if event.Month == month {
				oneTimeNet = oneTimeNet.Sub(event.Amount)
			}
		}
		for _, event := range params.OneTimeWindfalls {
			if event.Month == month {
				oneTimeNet = oneTimeNet.Add(event.Amount)
			}
		}

		netCashFlow := income.Sub(expenses).Sub(taxes).Add(oneTimeNet)
		netWorth = netWorth.Add(netCashFlow).Add(growth)

		records = append(records, domain.MonthlyProjectionRecord{
			Month:            month,
			GrossIncome:      income,
			Expenses:         expenses,
			Taxes:            taxes,
			NetCashFlow:      netCashFlow,
			InvestmentGrowth: growth,
			OneTimeNet:       oneTimeNet,
			NetWorth:         netWorth,
		})
	}

	result := &domain.ForecastResult{
		MonthlyProjections: records,
		AnnualSummary:      annualSummary(records),
		TaxSummary:         taxSummary(records),
	}
	result.ScenarioMetrics = scenarioMetrics(records, result.AnnualSummary, snapshot.NetWorth, params.TimeHorizonYears)

	s.logger().Debugf("forecast complete: %d months, final net worth %s",
		months, result.ScenarioMetrics.FinalNetWorth.StringFixed(2))
	return result
}

func (s *Simulator) logger() Logger {
	if s.Logger == nil {
		return NopLogger{}
	}
	return s.Logger
}

// annualSummary picks the records on year boundaries, baseline included.
func annualSummary(records []domain.MonthlyProjectionRecord) []domain.AnnualRecord {
	var annual []domain.AnnualRecord
	for _, record := range records {
		if record.Month%12 == 0 {
			annual = append(annual, domain.AnnualRecord{
				Year:                    record.Month / 12,
				MonthlyProjectionRecord: record,
			})
		}
	}
	return annual
}

// taxSummary groups records into years of twelve months (month/12) and sums
// income and taxes per group. A year with no income reports a zero rate.
func taxSummary(records []domain.MonthlyProjectionRecord) []domain.TaxYearSummary {
	if len(records) == 0 {
		return nil
	}
	groups := records[len(records)-1].Month/12 + 1
	summaries := make([]domain.TaxYearSummary, groups)
	for i := range summaries {
		summaries[i].Year = i + 1
	}
	for _, record := range records {
		summary := &summaries[record.Month/12]
		summary.GrossIncome = summary.GrossIncome.Add(record.GrossIncome)
		summary.Taxes = summary.Taxes.Add(record.Taxes)
	}
	for i := range summaries {
		if summaries[i].GrossIncome.IsPositive() {
			summaries[i].EffectiveRatePct = summaries[i].Taxes.Div(summaries[i].GrossIncome).Mul(hundred)
		}
	}
	return summaries
}

func scenarioMetrics(records []domain.MonthlyProjectionRecord, annual []domain.AnnualRecord, initial decimal.Decimal, years int) domain.ScenarioMetrics {
	metrics := domain.ScenarioMetrics{FinalNetWorth: initial}
	if len(records) > 0 {
		metrics.FinalNetWorth = records[len(records)-1].NetWorth
	}
	metrics.TotalGrowth = metrics.FinalNetWorth.Sub(initial)

	for _, record := range records {
		metrics.TotalIncome = metrics.TotalIncome.Add(record.GrossIncome)
		metrics.TotalExpenses = metrics.TotalExpenses.Add(record.Expenses)
		metrics.TotalTaxes = metrics.TotalTaxes.Add(record.Taxes)
		metrics.TotalInvestmentGrowth = metrics.TotalInvestmentGrowth.Add(record.InvestmentGrowth)
		metrics.AvgMonthlyCashFlow = metrics.AvgMonthlyCashFlow.Add(record.NetCashFlow)
	}
	if len(records) > 0 {
		metrics.AvgMonthlyCashFlow = metrics.AvgMonthlyCashFlow.Div(decimal.NewFromInt(int64(len(records))))
	}

	metrics.AnnualizedReturn = annualizedReturn(initial, metrics.FinalNetWorth, years)

	// Break-even is reported only for scenarios that end below their
	// starting worth: the first year boundary at or above the initial value.
	// The baseline anchor trivially equals the initial net worth and is
	// skipped.
	if metrics.TotalGrowth.IsNegative() {
		for _, record := range annual {
			if record.Year == 0 {
				continue
			}
			if record.NetWorth.GreaterThanOrEqual(initial) {
				year := record.Year
				metrics.YearsToBreakEven = &year
				break
			}
		}
	}
	return metrics
}

// annualizedReturn computes (final/initial)^(1/years) - 1, returning 0 for
// any degenerate input (non-positive starting worth, non-positive ratio, or
// a zero-length horizon).
func annualizedReturn(initial, final decimal.Decimal, years int) float64 {
	if years <= 0 || initial.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio, _ := final.Div(initial).Float64()
	if ratio <= 0 {
		return 0
	}
	return math.Pow(ratio, 1/float64(years)) - 1
}
