package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/jspencer/fincast/internal/domain"
)

// DefaultLookbackMonths is the trailing window used for income and expense
// statistics when the caller does not specify one.
const DefaultLookbackMonths = 12

// Account-name fragments classifying assets for the health ratios.
var (
	liquidAccountHints     = []string{"checking", "savings", "cash"}
	investmentAccountHints = []string{"401k", "ira", "brokerage", "investment"}
)

// Extract builds a Snapshot of the ledger as of a date, with income and
// expense statistics over the trailing lookback window (months). An empty
// ledger, or one with no matching transactions, yields a snapshot with zero
// scalars and an empty expense breakdown; it never fails.
func Extract(l *Ledger, asOf time.Time, lookbackMonths int) domain.Snapshot {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}

	snapshot := domain.Snapshot{
		ExpenseBreakdown: make(map[string]domain.ExpenseCategoryStats),
	}

	for account, balance := range l.BalancesAsOf(asOf) {
		switch {
		case strings.HasPrefix(account, AssetsPrefix):
			snapshot.TotalAssets = snapshot.TotalAssets.Add(balance)
			if containsAny(account, liquidAccountHints) {
				snapshot.LiquidAssets = snapshot.LiquidAssets.Add(balance)
			}
			if containsAny(account, investmentAccountHints) {
				snapshot.InvestmentAssets = snapshot.InvestmentAssets.Add(balance)
			}
		case strings.HasPrefix(account, LiabilitiesPrefix):
			snapshot.TotalLiabilities = snapshot.TotalLiabilities.Add(balance)
		}
	}
	// Liability balances carry a negative sign by ledger convention, so net
	// worth is the plain sum; the reported liability total is absolute.
	snapshot.NetWorth = snapshot.TotalAssets.Add(snapshot.TotalLiabilities)
	snapshot.TotalLiabilities = snapshot.TotalLiabilities.Abs()

	incomeTotals := monthlyTotals(l, IncomePrefix, asOf, lookbackMonths)
	expenseTotals := monthlyTotals(l, ExpensesPrefix, asOf, lookbackMonths)
	snapshot.AvgMonthlyIncome = decimal.NewFromFloat(stat.Mean(incomeTotals, nil)).Abs()
	snapshot.AvgMonthlyExpenses = decimal.NewFromFloat(stat.Mean(expenseTotals, nil))

	snapshot.ExpenseBreakdown = expenseBreakdown(l, asOf, lookbackMonths)

	return snapshot
}

// monthlyTotals sums postings under the account prefix for each of the
// trailing calendar months, oldest first. Months without activity contribute
// zero, so the slice always has lookbackMonths elements.
func monthlyTotals(l *Ledger, prefix string, asOf time.Time, lookbackMonths int) []float64 {
	totals := make([]float64, lookbackMonths)
	sums := make(map[int]decimal.Decimal)
	for _, entry := range l.Entries {
		if entry.Date.After(asOf) {
			continue
		}
		key := monthIndex(entry.Date)
		for _, posting := range entry.Postings {
			if strings.HasPrefix(posting.Account, prefix) {
				sums[key] = sums[key].Add(posting.Amount)
			}
		}
	}
	latest := monthIndex(asOf)
	for i := 0; i < lookbackMonths; i++ {
		totals[lookbackMonths-1-i], _ = sums[latest-i].Float64()
	}
	return totals
}

// expenseBreakdown groups expense postings in the trailing window by the
// first path segment after "Expenses:" and derives per-category statistics
// from the monthly totals of months that saw spending. Categories without
// any transactions are omitted rather than zero-filled.
func expenseBreakdown(l *Ledger, asOf time.Time, lookbackMonths int) map[string]domain.ExpenseCategoryStats {
	start := asOf.AddDate(0, -lookbackMonths, 0)
	end := asOf.AddDate(0, 0, 1)

	byCategory := make(map[string]map[int]decimal.Decimal)
	for _, entry := range l.TransactionsBetween(start, end) {
		for _, posting := range entry.Postings {
			category := ExpenseCategory(posting.Account)
			if category == "" {
				continue
			}
			months, ok := byCategory[category]
			if !ok {
				months = make(map[int]decimal.Decimal)
				byCategory[category] = months
			}
			key := monthIndex(entry.Date)
			months[key] = months[key].Add(posting.Amount)
		}
	}

	breakdown := make(map[string]domain.ExpenseCategoryStats, len(byCategory))
	for category, months := range byCategory {
		keys := make([]int, 0, len(months))
		for key := range months {
			keys = append(keys, key)
		}
		sort.Ints(keys)

		values := make([]float64, len(keys))
		total := 0.0
		for i, key := range keys {
			values[i], _ = months[key].Float64()
			total += values[i]
		}

		stats := domain.ExpenseCategoryStats{
			MonthlyAverage:    stat.Mean(values, nil),
			TotalLast12Months: total,
		}
		if len(values) >= 2 {
			stats.MonthlyStdDev = stat.StdDev(values, nil)
			xs := make([]float64, len(values))
			for i := range xs {
				xs[i] = float64(i)
			}
			_, stats.TrendSlope = stat.LinearRegression(xs, values, nil, false)
		}
		breakdown[category] = stats
	}
	return breakdown
}

// monthIndex collapses a date to a linear calendar-month index.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
