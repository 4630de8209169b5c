package domain

import "github.com/shopspring/decimal"

// TaxBracket is a single federal bracket: income up to Upper (cumulative,
// not a width) is taxed at Rate. Brackets are ordered by ascending Upper.
// The final bracket of a schedule is unbounded and its Upper is ignored.
type TaxBracket struct {
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
	Upper decimal.Decimal `json:"upper" yaml:"upper"`
}

// TaxRateSchedule holds every rate the tax calculator needs: progressive
// federal brackets plus flat state, FICA and long-term capital gains rates.
type TaxRateSchedule struct {
	FederalBrackets          []TaxBracket    `json:"federalBrackets" yaml:"federalBrackets"`
	StateFlatRate            decimal.Decimal `json:"stateFlatRate" yaml:"stateFlatRate"`
	FICARate                 decimal.Decimal `json:"ficaRate" yaml:"ficaRate"`
	LongTermCapitalGainsRate decimal.Decimal `json:"longTermCapitalGainsRate" yaml:"longTermCapitalGainsRate"`
}

// NewMarriedJoint2025Schedule returns the 2025 married-filing-jointly federal
// brackets with a 9.3% flat state rate, 7.65% FICA and 15% LTCG.
func NewMarriedJoint2025Schedule() TaxRateSchedule {
	return TaxRateSchedule{
		FederalBrackets: []TaxBracket{
			{Rate: decimal.NewFromFloat(0.10), Upper: decimal.NewFromInt(23200)},
			{Rate: decimal.NewFromFloat(0.12), Upper: decimal.NewFromInt(94300)},
			{Rate: decimal.NewFromFloat(0.22), Upper: decimal.NewFromInt(201050)},
			{Rate: decimal.NewFromFloat(0.24), Upper: decimal.NewFromInt(383900)},
			{Rate: decimal.NewFromFloat(0.32), Upper: decimal.NewFromInt(487450)},
			{Rate: decimal.NewFromFloat(0.35), Upper: decimal.NewFromInt(731200)},
			{Rate: decimal.NewFromFloat(0.37)},
		},
		StateFlatRate:            decimal.NewFromFloat(0.093),
		FICARate:                 decimal.NewFromFloat(0.0765),
		LongTermCapitalGainsRate: decimal.NewFromFloat(0.15),
	}
}

// NewSingle2025Schedule returns the simplified 2025 single-filer brackets.
// State, FICA and LTCG rates match the married-joint defaults.
func NewSingle2025Schedule() TaxRateSchedule {
	return TaxRateSchedule{
		FederalBrackets: []TaxBracket{
			{Rate: decimal.NewFromFloat(0.10), Upper: decimal.NewFromInt(11000)},
			{Rate: decimal.NewFromFloat(0.12), Upper: decimal.NewFromInt(44725)},
			{Rate: decimal.NewFromFloat(0.22), Upper: decimal.NewFromInt(95375)},
			{Rate: decimal.NewFromFloat(0.24), Upper: decimal.NewFromInt(182850)},
			{Rate: decimal.NewFromFloat(0.32), Upper: decimal.NewFromInt(231250)},
			{Rate: decimal.NewFromFloat(0.35), Upper: decimal.NewFromInt(578100)},
			{Rate: decimal.NewFromFloat(0.37)},
		},
		StateFlatRate:            decimal.NewFromFloat(0.093),
		FICARate:                 decimal.NewFromFloat(0.0765),
		LongTermCapitalGainsRate: decimal.NewFromFloat(0.15),
	}
}

// TaxBreakdown is the result of a single tax computation.
type TaxBreakdown struct {
	Federal       decimal.Decimal `json:"federal"`
	State         decimal.Decimal `json:"state"`
	FICA          decimal.Decimal `json:"fica"`
	InvestmentTax decimal.Decimal `json:"investmentTax"`
	Total         decimal.Decimal `json:"total"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	MarginalRate  decimal.Decimal `json:"marginalRate"`
}
