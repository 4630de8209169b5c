package ledger

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type postingRecord struct {
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type entryRecord struct {
	Date      string          `json:"date"`
	Payee     string          `json:"payee"`
	Narration string          `json:"narration"`
	Postings  []postingRecord `json:"postings"`
}

// LoadFile reads pre-parsed transaction records from a JSON file and returns
// them as a Ledger sorted by date. The file is plain data exchange with the
// upstream ledger collaborator, not ledger syntax: an array of entries, each
// with an ISO date and postings of (account, amount, currency). The ledger
// Version is a content hash, so re-loading identical data yields the same
// snapshot-cache key.
func LoadFile(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}

	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		date, err := time.Parse("2006-01-02", record.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid date %q: %w", i, record.Date, err)
		}
		entry := Entry{Date: date, Payee: record.Payee, Narration: record.Narration}
		for _, posting := range record.Postings {
			entry.Postings = append(entry.Postings, Posting{
				Account:  posting.Account,
				Amount:   posting.Amount,
				Currency: posting.Currency,
			})
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	hash := fnv.New64a()
	hash.Write(data)
	return &Ledger{
		Version: fmt.Sprintf("%016x", hash.Sum64()),
		Entries: entries,
	}, nil
}
