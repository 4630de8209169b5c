package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/jspencer/fincast/internal/domain"
)

// MonthlyCSV renders the monthly projection as CSV, one row per month
// including the baseline row.
func MonthlyCSV(records []domain.MonthlyProjectionRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "GrossIncome", "Expenses", "Taxes", "NetCashFlow", "InvestmentGrowth", "OneTimeNet", "NetWorth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Month),
			r.GrossIncome.StringFixed(2),
			r.Expenses.StringFixed(2),
			r.Taxes.StringFixed(2),
			r.NetCashFlow.StringFixed(2),
			r.InvestmentGrowth.StringFixed(2),
			r.OneTimeNet.StringFixed(2),
			r.NetWorth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
