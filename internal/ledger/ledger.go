// Package ledger supplies the forecasting engines with point-in-time
// financial state derived from double-entry ledger records. It consumes
// already-parsed transaction data; reading and validating ledger file syntax
// belongs to an upstream collaborator.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Top-level account categories, matched as account-path prefixes.
const (
	AssetsPrefix      = "Assets:"
	LiabilitiesPrefix = "Liabilities:"
	IncomePrefix      = "Income:"
	ExpensesPrefix    = "Expenses:"
	EquityPrefix      = "Equity:"
)

// Posting is one leg of a balanced ledger entry: a signed amount against a
// colon-delimited hierarchical account path.
type Posting struct {
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Entry is a dated, balanced double-entry record.
type Entry struct {
	Date      time.Time `json:"date"`
	Payee     string    `json:"payee,omitempty"`
	Narration string    `json:"narration,omitempty"`
	Postings  []Posting `json:"postings"`
}

// Ledger is an ordered collection of entries. Version identifies the data
// revision the entries came from and keys snapshot memoization.
type Ledger struct {
	Version string
	Entries []Entry
}

// BalancesAsOf returns the signed balance of every account touched on or
// before the given date. Liability balances keep their negative sign.
func (l *Ledger) BalancesAsOf(asOf time.Time) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, entry := range l.Entries {
		if entry.Date.After(asOf) {
			continue
		}
		for _, posting := range entry.Postings {
			balances[posting.Account] = balances[posting.Account].Add(posting.Amount)
		}
	}
	return balances
}

// TransactionsBetween returns entries with start <= date < end, in ledger
// order.
func (l *Ledger) TransactionsBetween(start, end time.Time) []Entry {
	var selected []Entry
	for _, entry := range l.Entries {
		if entry.Date.Before(start) || !entry.Date.Before(end) {
			continue
		}
		selected = append(selected, entry)
	}
	return selected
}

// ExpenseCategory extracts the first path segment after "Expenses:", or ""
// when the account is not an expense account.
func ExpenseCategory(account string) string {
	if !strings.HasPrefix(account, ExpensesPrefix) {
		return ""
	}
	rest := account[len(ExpensesPrefix):]
	if idx := strings.Index(rest, ":"); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// containsAny reports whether the lower-cased account name contains any of
// the given lower-case needles.
func containsAny(account string, needles []string) bool {
	lower := strings.ToLower(account)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
