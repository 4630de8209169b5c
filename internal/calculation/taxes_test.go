package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jspencer/fincast/internal/domain"
)

func TestComputeTaxZeroIncome(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()
	result := ComputeTax(decimal.Zero, decimal.Zero, schedule, decimal.Zero)

	assert.True(t, result.Federal.IsZero())
	assert.True(t, result.State.IsZero())
	assert.True(t, result.FICA.IsZero())
	assert.True(t, result.Total.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
}

func TestProgressiveTaxBracketBoundaries(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()

	tests := []struct {
		name     string
		income   int64
		expected string
	}{
		{
			name:     "Income exactly at first bracket bound",
			income:   23200,
			expected: "2320", // 23200 * 0.10
		},
		{
			name:     "Income exactly at second bracket bound",
			income:   94300,
			expected: "10852", // 2320 + (94300-23200)*0.12
		},
		{
			name:   "Income inside second bracket",
			income: 50000,
			// 2320 + (50000-23200)*0.12
			expected: "5536",
		},
		{
			name:   "Income in top bracket is unbounded",
			income: 1000000,
			// 2320 + 8532 + 23485 + 43884 + 33136 + 85312.50 + (1000000-731200)*0.37
			expected: "296125.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := progressiveTax(decimal.NewFromInt(tt.income), schedule.FederalBrackets)
			assert.True(t, tax.Equal(decimal.RequireFromString(tt.expected)),
				"income %d: expected %s, got %s", tt.income, tt.expected, tax)
		})
	}
}

func TestComputeTaxMonotonicity(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()
	previous := decimal.Zero
	for income := int64(0); income <= 800000; income += 12500 {
		total := ComputeTax(decimal.NewFromInt(income), decimal.Zero, schedule, decimal.Zero).Total
		assert.True(t, total.GreaterThanOrEqual(previous),
			"tax decreased at income %d", income)
		previous = total
	}
}

func TestComputeTaxPretaxContribution(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()
	gross := decimal.NewFromInt(100000)
	pretax := decimal.NewFromInt(20000)

	withPretax := ComputeTax(gross, decimal.Zero, schedule, pretax)
	withoutPretax := ComputeTax(gross, decimal.Zero, schedule, decimal.Zero)

	// Federal and state drop with the deduction, FICA stays on gross wages.
	assert.True(t, withPretax.Federal.LessThan(withoutPretax.Federal))
	assert.True(t, withPretax.State.LessThan(withoutPretax.State))
	assert.True(t, withPretax.FICA.Equal(withoutPretax.FICA))
	assert.True(t, withPretax.FICA.Equal(gross.Mul(schedule.FICARate)))

	// Deduction larger than income clamps taxable income at zero.
	clamped := ComputeTax(gross, decimal.Zero, schedule, decimal.NewFromInt(150000))
	assert.True(t, clamped.Federal.IsZero())
	assert.True(t, clamped.State.IsZero())
	assert.True(t, clamped.FICA.Equal(gross.Mul(schedule.FICARate)))
}

func TestComputeTaxInvestmentGains(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()
	result := ComputeTax(decimal.Zero, decimal.NewFromInt(10000), schedule, decimal.Zero)

	assert.True(t, result.InvestmentTax.Equal(decimal.NewFromInt(1500)))
	// Zero gross income divides by the clamped denominator of 1.
	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromInt(1500)))
}

func TestMarginalRate(t *testing.T) {
	schedule := domain.NewMarriedJoint2025Schedule()

	tests := []struct {
		income   int64
		expected string
	}{
		{10000, "0.10"},
		{50000, "0.12"},
		{150000, "0.22"},
		{800000, "0.37"},
	}
	for _, tt := range tests {
		rate := marginalRate(decimal.NewFromInt(tt.income), schedule.FederalBrackets)
		assert.True(t, rate.Equal(decimal.RequireFromString(tt.expected)),
			"income %d: expected %s, got %s", tt.income, tt.expected, rate)
	}

	// The combined marginal rate includes the flat state rate.
	breakdown := ComputeTax(decimal.NewFromInt(50000), decimal.Zero, schedule, decimal.Zero)
	assert.True(t, breakdown.MarginalRate.Equal(decimal.RequireFromString("0.213")))
}

func TestSingleScheduleDiffersFromJoint(t *testing.T) {
	income := decimal.NewFromInt(150000)
	joint := ComputeTax(income, decimal.Zero, domain.NewMarriedJoint2025Schedule(), decimal.Zero)
	single := ComputeTax(income, decimal.Zero, domain.NewSingle2025Schedule(), decimal.Zero)

	// Narrower single brackets mean more income lands in higher brackets.
	assert.True(t, single.Federal.GreaterThan(joint.Federal))
}
