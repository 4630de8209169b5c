package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// salaryMonth books one paycheck and grouped spending for a month.
func salaryMonth(y int, m time.Month, salary, food, rent int64) []Entry {
	return []Entry{
		{
			Date: date(y, m, 1),
			Postings: []Posting{
				{Account: "Assets:Bank:Checking", Amount: decimal.NewFromInt(salary), Currency: "USD"},
				{Account: "Income:Salary", Amount: decimal.NewFromInt(-salary), Currency: "USD"},
			},
		},
		{
			Date: date(y, m, 10),
			Postings: []Posting{
				{Account: "Expenses:Food:Groceries", Amount: decimal.NewFromInt(food), Currency: "USD"},
				{Account: "Assets:Bank:Checking", Amount: decimal.NewFromInt(-food), Currency: "USD"},
			},
		},
		{
			Date: date(y, m, 15),
			Postings: []Posting{
				{Account: "Expenses:Housing:Rent", Amount: decimal.NewFromInt(rent), Currency: "USD"},
				{Account: "Assets:Bank:Checking", Amount: decimal.NewFromInt(-rent), Currency: "USD"},
			},
		},
	}
}

func testLedger() *Ledger {
	entries := []Entry{
		{
			Date: date(2025, time.January, 1),
			Postings: []Posting{
				{Account: "Assets:Bank:Checking", Amount: decimal.NewFromInt(20000), Currency: "USD"},
				{Account: "Equity:Opening-Balances", Amount: decimal.NewFromInt(-20000), Currency: "USD"},
			},
		},
		{
			Date: date(2025, time.January, 2),
			Postings: []Posting{
				{Account: "Assets:Investments:Brokerage", Amount: decimal.NewFromInt(50000), Currency: "USD"},
				{Account: "Equity:Opening-Balances", Amount: decimal.NewFromInt(-50000), Currency: "USD"},
			},
		},
		{
			Date: date(2025, time.January, 3),
			Postings: []Posting{
				{Account: "Liabilities:Mortgage", Amount: decimal.NewFromInt(-150000), Currency: "USD"},
				{Account: "Equity:Opening-Balances", Amount: decimal.NewFromInt(150000), Currency: "USD"},
			},
		},
	}
	entries = append(entries, salaryMonth(2025, time.April, 6000, 500, 2000)...)
	entries = append(entries, salaryMonth(2025, time.May, 6000, 600, 2000)...)
	entries = append(entries, salaryMonth(2025, time.June, 6000, 700, 2000)...)
	return &Ledger{Version: "test", Entries: entries}
}

func TestExtractEmptyLedger(t *testing.T) {
	snapshot := Extract(&Ledger{}, date(2025, time.June, 30), 12)

	assert.True(t, snapshot.NetWorth.IsZero())
	assert.True(t, snapshot.TotalAssets.IsZero())
	assert.True(t, snapshot.TotalLiabilities.IsZero())
	assert.True(t, snapshot.AvgMonthlyIncome.IsZero())
	assert.True(t, snapshot.AvgMonthlyExpenses.IsZero())
	assert.Empty(t, snapshot.ExpenseBreakdown)
}

func TestExtractBalances(t *testing.T) {
	snapshot := Extract(testLedger(), date(2025, time.June, 30), 12)

	// Checking: 20000 + 3*(6000-500-600-700 spread) = 20000 + 18000 - 7800.
	expectedAssets := decimal.NewFromInt(20000 + 50000 + 18000 - 7800)
	assert.True(t, snapshot.TotalAssets.Equal(expectedAssets), "assets %s", snapshot.TotalAssets)
	assert.True(t, snapshot.TotalLiabilities.Equal(decimal.NewFromInt(150000)))
	assert.True(t, snapshot.NetWorth.Equal(expectedAssets.Sub(decimal.NewFromInt(150000))))

	assert.True(t, snapshot.LiquidAssets.Equal(decimal.NewFromInt(20000+18000-7800)))
	assert.True(t, snapshot.InvestmentAssets.Equal(decimal.NewFromInt(50000)))
}

func TestExtractRespectsAsOfDate(t *testing.T) {
	// Cutting off before May sees only April's flows.
	snapshot := Extract(testLedger(), date(2025, time.April, 30), 12)
	assert.True(t, snapshot.LiquidAssets.Equal(decimal.NewFromInt(20000+6000-2500)))
}

func TestExtractMonthlyAverages(t *testing.T) {
	// Quiet months count as zero, matching a trailing-window average.
	snapshot := Extract(testLedger(), date(2025, time.June, 30), 3)

	assert.True(t, snapshot.AvgMonthlyIncome.Equal(decimal.NewFromInt(6000)),
		"income %s", snapshot.AvgMonthlyIncome)
	expectedExpenses := decimal.NewFromFloat((2500.0 + 2600 + 2700) / 3)
	assert.True(t, snapshot.AvgMonthlyExpenses.Equal(expectedExpenses),
		"expenses %s", snapshot.AvgMonthlyExpenses)

	wide := Extract(testLedger(), date(2025, time.June, 30), 6)
	assert.True(t, wide.AvgMonthlyIncome.Equal(decimal.NewFromInt(3000)),
		"income over 6 months %s", wide.AvgMonthlyIncome)
}

func TestExtractExpenseBreakdown(t *testing.T) {
	snapshot := Extract(testLedger(), date(2025, time.June, 30), 12)

	food, ok := snapshot.ExpenseBreakdown["Food"]
	require.True(t, ok)
	assert.InDelta(t, 600, food.MonthlyAverage, 1e-9)
	assert.InDelta(t, 1800, food.TotalLast12Months, 1e-9)
	assert.InDelta(t, 100, food.MonthlyStdDev, 1e-9)
	assert.InDelta(t, 100, food.TrendSlope, 1e-9)

	housing, ok := snapshot.ExpenseBreakdown["Housing"]
	require.True(t, ok)
	assert.InDelta(t, 2000, housing.MonthlyAverage, 1e-9)
	assert.InDelta(t, 0, housing.TrendSlope, 1e-9)

	_, ok = snapshot.ExpenseBreakdown[""]
	assert.False(t, ok)
}

func TestExpenseCategory(t *testing.T) {
	assert.Equal(t, "Food", ExpenseCategory("Expenses:Food:Groceries"))
	assert.Equal(t, "Food", ExpenseCategory("Expenses:Food"))
	assert.Equal(t, "", ExpenseCategory("Assets:Bank:Checking"))
	assert.Equal(t, "", ExpenseCategory("Income:Salary"))
}

func TestTransactionsBetweenHalfOpen(t *testing.T) {
	l := testLedger()
	start := date(2025, time.May, 1)
	end := date(2025, time.June, 1)

	selected := l.TransactionsBetween(start, end)
	require.Len(t, selected, 3)
	for _, entry := range selected {
		assert.Equal(t, time.May, entry.Date.Month())
	}
}

func TestSnapshotCache(t *testing.T) {
	cache := NewSnapshotCache()
	l := testLedger()
	asOf := date(2025, time.June, 30)

	first := cache.Snapshot(l, asOf, 12)
	second := cache.Snapshot(l, asOf, 12)
	assert.Equal(t, first, second)

	// A new ledger version must not reuse the cached snapshot.
	grown := &Ledger{Version: "test2", Entries: append(testLedger().Entries, salaryMonth(2025, time.July, 9000, 500, 2000)...)}
	third := cache.Snapshot(grown, date(2025, time.July, 31), 12)
	assert.False(t, third.TotalAssets.Equal(first.TotalAssets))

	// Unversioned ledgers bypass the cache entirely.
	unversioned := &Ledger{Entries: l.Entries}
	fourth := cache.Snapshot(unversioned, asOf, 12)
	assert.Equal(t, first, fourth)
}
