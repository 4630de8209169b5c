package domain

import "github.com/shopspring/decimal"

// ExpenseCategoryStats summarizes the history of one expense category over
// the lookback window. Statistics are computed from the monthly totals of
// the months that actually saw spending; TrendSlope is the ordinary
// least-squares slope of those totals against a 0-based month index
// (currency per month of elapsed index).
type ExpenseCategoryStats struct {
	MonthlyAverage    float64 `json:"monthlyAverage"`
	MonthlyStdDev     float64 `json:"monthlyStdDev"`
	TotalLast12Months float64 `json:"totalLast12Months"`
	TrendSlope        float64 `json:"trendSlope"`
}

// Snapshot is a point-in-time view of the ledger: balances as of a date plus
// historical income/expense statistics over a trailing window. It is
// immutable once computed; a fresh one is built per query.
type Snapshot struct {
	NetWorth           decimal.Decimal `json:"netWorth"`
	TotalAssets        decimal.Decimal `json:"totalAssets"`
	TotalLiabilities   decimal.Decimal `json:"totalLiabilities"`
	LiquidAssets       decimal.Decimal `json:"liquidAssets"`
	InvestmentAssets   decimal.Decimal `json:"investmentAssets"`
	AvgMonthlyIncome   decimal.Decimal `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses decimal.Decimal `json:"avgMonthlyExpenses"`

	ExpenseBreakdown map[string]ExpenseCategoryStats `json:"expenseBreakdown"`
}

// CategoryStats returns the stats for a category, falling back to the given
// default when the category never appeared in the window. Absent categories
// are deliberately not zero-filled in ExpenseBreakdown, so callers that need
// a value must supply their own default.
func (s Snapshot) CategoryStats(category string, def ExpenseCategoryStats) ExpenseCategoryStats {
	if stats, ok := s.ExpenseBreakdown[category]; ok {
		return stats
	}
	return def
}
