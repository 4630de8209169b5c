// Package output renders forecast results for the console and for export.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/calculation"
	"github.com/jspencer/fincast/internal/domain"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate renders a forecast result in the requested format.
func (rg *ReportGenerator) Generate(result *domain.ForecastResult, params domain.ScenarioParameters, snapshot domain.Snapshot, format string) ([]byte, error) {
	switch format {
	case "console":
		return rg.ConsoleReport(result, params, snapshot), nil
	case "json":
		return json.MarshalIndent(result, "", "  ")
	case "csv":
		return MonthlyCSV(result.MonthlyProjections)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ConsoleReport renders the full text report for a single scenario run.
func (rg *ReportGenerator) ConsoleReport(result *domain.ForecastResult, params domain.ScenarioParameters, snapshot domain.Snapshot) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintf(&buf, "FINANCIAL FORECAST: %s (%d years)\n", params.Name, params.TimeHorizonYears)
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "STARTING POSITION")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Net Worth:            %s\n", FormatCurrency(snapshot.NetWorth))
	fmt.Fprintf(&buf, "Total Assets:         %s\n", FormatCurrency(snapshot.TotalAssets))
	fmt.Fprintf(&buf, "Total Liabilities:    %s\n", FormatCurrency(snapshot.TotalLiabilities))
	fmt.Fprintf(&buf, "Avg Monthly Income:   %s\n", FormatCurrency(snapshot.AvgMonthlyIncome))
	fmt.Fprintf(&buf, "Avg Monthly Expenses: %s\n", FormatCurrency(snapshot.AvgMonthlyExpenses))
	fmt.Fprintln(&buf)

	writeMetrics(&buf, result.ScenarioMetrics)
	writeAnnualSummary(&buf, result.AnnualSummary)
	writeTaxSummary(&buf, result.TaxSummary)
	if result.RiskAnalysis != nil {
		writeRiskAnalysis(&buf, result.RiskAnalysis, result.ScenarioMetrics.FinalNetWorth)
	}

	return buf.Bytes()
}

func writeMetrics(buf *bytes.Buffer, m domain.ScenarioMetrics) {
	fmt.Fprintln(buf, "PROJECTION SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Final Net Worth:      %s\n", FormatCurrency(m.FinalNetWorth))
	fmt.Fprintf(buf, "Total Growth:         %s\n", FormatCurrency(m.TotalGrowth))
	fmt.Fprintf(buf, "Annualized Return:    %s\n", FormatPercent(m.AnnualizedReturn))
	fmt.Fprintf(buf, "Total Income:         %s\n", FormatCurrency(m.TotalIncome))
	fmt.Fprintf(buf, "Total Expenses:       %s\n", FormatCurrency(m.TotalExpenses))
	fmt.Fprintf(buf, "Total Taxes:          %s\n", FormatCurrency(m.TotalTaxes))
	fmt.Fprintf(buf, "Investment Growth:    %s\n", FormatCurrency(m.TotalInvestmentGrowth))
	fmt.Fprintf(buf, "Avg Monthly Cashflow: %s\n", FormatCurrency(m.AvgMonthlyCashFlow))
	if m.YearsToBreakEven != nil {
		fmt.Fprintf(buf, "Years To Break Even:  %d\n", *m.YearsToBreakEven)
	}
	fmt.Fprintln(buf)
}

func writeAnnualSummary(buf *bytes.Buffer, annual []domain.AnnualRecord) {
	if len(annual) == 0 {
		return
	}
	fmt.Fprintln(buf, "NET WORTH BY YEAR")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	for _, record := range annual {
		fmt.Fprintf(buf, "Year %-3d %20s\n", record.Year, FormatCurrency(record.NetWorth))
	}
	fmt.Fprintln(buf)
}

func writeTaxSummary(buf *bytes.Buffer, years []domain.TaxYearSummary) {
	if len(years) == 0 {
		return
	}
	fmt.Fprintln(buf, "TAX SUMMARY BY YEAR")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "%-6s %18s %18s %10s\n", "Year", "Gross Income", "Taxes", "Eff Rate")
	for _, y := range years {
		fmt.Fprintf(buf, "%-6d %18s %18s %9s%%\n",
			y.Year, FormatCurrency(y.GrossIncome), FormatCurrency(y.Taxes), y.EffectiveRatePct.StringFixed(2))
	}
	fmt.Fprintln(buf)
}

func writeRiskAnalysis(buf *bytes.Buffer, risk *domain.RiskAnalysis, deterministic decimal.Decimal) {
	fmt.Fprintln(buf, "MONTE CARLO RISK ANALYSIS")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Mean Outcome:         %s\n", FormatCurrency(decimal.NewFromFloat(risk.Mean)))
	fmt.Fprintf(buf, "Median Outcome:       %s\n", FormatCurrency(decimal.NewFromFloat(risk.Median)))
	fmt.Fprintf(buf, "Std Deviation:        %s\n", FormatCurrency(decimal.NewFromFloat(risk.StdDev)))
	fmt.Fprintf(buf, "5th Percentile:       %s\n", FormatCurrency(decimal.NewFromFloat(risk.P5)))
	fmt.Fprintf(buf, "25th Percentile:      %s\n", FormatCurrency(decimal.NewFromFloat(risk.P25)))
	fmt.Fprintf(buf, "75th Percentile:      %s\n", FormatCurrency(decimal.NewFromFloat(risk.P75)))
	fmt.Fprintf(buf, "95th Percentile:      %s\n", FormatCurrency(decimal.NewFromFloat(risk.P95)))
	fmt.Fprintf(buf, "Probability of Loss:  %s\n", FormatPercent(risk.ProbabilityOfLoss))
	fmt.Fprintf(buf, "Value at Risk (5%%):   %s\n", FormatCurrency(decimal.NewFromFloat(risk.ValueAtRisk5)))
	fmt.Fprintf(buf, "Deterministic Path:   %s\n", FormatCurrency(deterministic))
	fmt.Fprintln(buf)
}

// HealthReport renders a financial health assessment.
func (rg *ReportGenerator) HealthReport(snapshot domain.Snapshot, ratios calculation.HealthRatios, score calculation.HealthScore) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf, "FINANCIAL HEALTH ASSESSMENT")
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Overall Score: %d/100 (Grade %s)\n", score.Score, score.Grade)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY RATIOS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Emergency Fund:       %.1f months of expenses\n", ratios.EmergencyFundMonths)
	fmt.Fprintf(&buf, "Savings Rate:         %s\n", FormatPercent(ratios.SavingsRate))
	fmt.Fprintf(&buf, "Debt To Income:       %s\n", FormatPercent(ratios.DebtToIncome))
	fmt.Fprintf(&buf, "Debt To Assets:       %s\n", FormatPercent(ratios.DebtToAssets))
	fmt.Fprintf(&buf, "Investment Ratio:     %s\n", FormatPercent(ratios.InvestmentRatio))
	fmt.Fprintf(&buf, "Liquidity Ratio:      %s\n", FormatPercent(ratios.LiquidityRatio))
	fmt.Fprintln(&buf)

	if len(score.Explanations) > 0 {
		fmt.Fprintln(&buf, "NOTES")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, note := range score.Explanations {
			fmt.Fprintf(&buf, "- %s\n", note)
		}
		fmt.Fprintln(&buf)
	}

	if len(snapshot.ExpenseBreakdown) > 0 {
		fmt.Fprintln(&buf, "EXPENSE BREAKDOWN (trailing window)")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		categories := make([]string, 0, len(snapshot.ExpenseBreakdown))
		for category := range snapshot.ExpenseBreakdown {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			stats := snapshot.ExpenseBreakdown[category]
			fmt.Fprintf(&buf, "%-20s avg %s/mo, trend %+.2f/mo\n",
				category, FormatCurrency(decimal.NewFromFloat(stats.MonthlyAverage)), stats.TrendSlope)
		}
	}

	return buf.Bytes()
}
