package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `[
  {
    "date": "2025-03-15",
    "payee": "Grocer",
    "narration": "weekly shop",
    "postings": [
      {"account": "Expenses:Food:Groceries", "amount": "82.50", "currency": "USD"},
      {"account": "Assets:Bank:Checking", "amount": "-82.50", "currency": "USD"}
    ]
  },
  {
    "date": "2025-03-01",
    "postings": [
      {"account": "Assets:Bank:Checking", "amount": "5000", "currency": "USD"},
      {"account": "Income:Salary", "amount": "-5000", "currency": "USD"}
    ]
  }
]`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	l, err := LoadFile(writeTemp(t, "ledger.json", sampleExport))
	require.NoError(t, err)
	require.Len(t, l.Entries, 2)

	// Entries come back sorted by date regardless of file order.
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), l.Entries[0].Date)
	assert.Equal(t, "Grocer", l.Entries[1].Payee)
	assert.Equal(t, "weekly shop", l.Entries[1].Narration)
	assert.True(t, l.Entries[1].Postings[0].Amount.Equal(decimal.RequireFromString("82.50")))
	assert.NotEmpty(t, l.Version)
}

func TestLoadFileVersionIsContentDerived(t *testing.T) {
	first, err := LoadFile(writeTemp(t, "a.json", sampleExport))
	require.NoError(t, err)
	second, err := LoadFile(writeTemp(t, "b.json", sampleExport))
	require.NoError(t, err)
	assert.Equal(t, first.Version, second.Version)

	changed, err := LoadFile(writeTemp(t, "c.json", sampleExport+"\n"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, changed.Version)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeTemp(t, "bad.json", "not json"))
	assert.Error(t, err)

	_, err = LoadFile(writeTemp(t, "baddate.json", `[{"date": "03/15/2025", "postings": []}]`))
	assert.ErrorContains(t, err, "invalid date")
}
