package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jspencer/fincast/internal/domain"
)

// MonthlyPayment returns the fixed monthly payment of an amortizing loan via
// the standard annuity formula P*r*(1+r)^n / ((1+r)^n - 1). A zero rate
// degenerates to straight principal division; a zero principal or term
// yields 0.
func MonthlyPayment(loan domain.LoanProjection) decimal.Decimal {
	if loan.Principal.LessThanOrEqual(decimal.Zero) || loan.TermMonths <= 0 {
		return decimal.Zero
	}
	if loan.AnnualInterestRate == 0 {
		return loan.Principal.Div(decimal.NewFromInt(int64(loan.TermMonths)))
	}
	principal := loan.Principal.InexactFloat64()
	monthlyRate := loan.AnnualInterestRate / 12
	compound := math.Pow(1+monthlyRate, float64(loan.TermMonths))
	payment := principal * monthlyRate * compound / (compound - 1)
	return decimal.NewFromFloat(payment)
}

// TotalInterest returns the interest paid over the full scheduled term.
func TotalInterest(loan domain.LoanProjection) decimal.Decimal {
	payment := MonthlyPayment(loan)
	if payment.IsZero() {
		return decimal.Zero
	}
	return payment.Mul(decimal.NewFromInt(int64(loan.TermMonths))).Sub(loan.Principal)
}

// PayoffMonths returns how many months the loan takes to retire when the
// scheduled payment plus any extra monthly payment is applied. Without extra
// payments this is simply the term.
func PayoffMonths(loan domain.LoanProjection) int {
	payment := MonthlyPayment(loan).Add(loan.ExtraMonthlyPayment)
	if payment.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	monthlyRate := decimal.NewFromFloat(loan.AnnualInterestRate / 12)
	balance := loan.Principal
	months := 0
	// A payment that never covers interest would loop forever; twice the
	// scheduled term is a hard stop.
	for balance.IsPositive() && months < loan.TermMonths*2 {
		balance = balance.Add(balance.Mul(monthlyRate)).Sub(payment)
		months++
	}
	return months
}
