package calculation

import "github.com/jspencer/fincast/internal/domain"

// HealthRatios are the key financial-health indicators derived from a
// ledger snapshot. Every ratio with a degenerate denominator (no income, no
// expenses, no assets) reports 0 instead of failing.
type HealthRatios struct {
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
	SavingsRate         float64 `json:"savingsRate"`
	DebtToIncome        float64 `json:"debtToIncome"`
	DebtToAssets        float64 `json:"debtToAssets"`
	InvestmentRatio     float64 `json:"investmentRatio"`
	LiquidityRatio      float64 `json:"liquidityRatio"`
}

// HealthScore grades the ratios on a 0-100 scale.
type HealthScore struct {
	Score        int      `json:"score"`
	Grade        string   `json:"grade"`
	Explanations []string `json:"explanations"`
}

// ComputeHealthRatios derives the indicator set from a snapshot.
func ComputeHealthRatios(snapshot domain.Snapshot) HealthRatios {
	liquid := snapshot.LiquidAssets.InexactFloat64()
	assets := snapshot.TotalAssets.InexactFloat64()
	liabilities := snapshot.TotalLiabilities.InexactFloat64()
	income := snapshot.AvgMonthlyIncome.InexactFloat64()
	expenses := snapshot.AvgMonthlyExpenses.InexactFloat64()
	investments := snapshot.InvestmentAssets.InexactFloat64()

	ratios := HealthRatios{}
	if expenses > 0 {
		ratios.EmergencyFundMonths = liquid / expenses
		ratios.LiquidityRatio = liquid / expenses
	}
	if income > 0 {
		ratios.SavingsRate = (income - expenses) / income
		ratios.DebtToIncome = liabilities / income
	}
	if assets > 0 {
		ratios.DebtToAssets = liabilities / assets
		ratios.InvestmentRatio = investments / assets
	}
	return ratios
}

// ScoreHealth awards up to 25 points each for emergency fund coverage,
// savings rate, debt load and investment diversification, with a letter
// grade for the total.
func ScoreHealth(ratios HealthRatios) HealthScore {
	score := 0
	var explanations []string

	switch {
	case ratios.EmergencyFundMonths >= 6:
		score += 25
		explanations = append(explanations, "Excellent emergency fund (6+ months)")
	case ratios.EmergencyFundMonths >= 3:
		score += 20
		explanations = append(explanations, "Good emergency fund (3-6 months)")
	case ratios.EmergencyFundMonths >= 1:
		score += 10
		explanations = append(explanations, "Minimal emergency fund (1-3 months)")
	default:
		explanations = append(explanations, "No emergency fund")
	}

	switch {
	case ratios.SavingsRate >= 0.20:
		score += 25
		explanations = append(explanations, "Excellent savings rate (20%+)")
	case ratios.SavingsRate >= 0.10:
		score += 20
		explanations = append(explanations, "Good savings rate (10-20%)")
	case ratios.SavingsRate >= 0.05:
		score += 10
		explanations = append(explanations, "Moderate savings rate (5-10%)")
	default:
		explanations = append(explanations, "Low or negative savings rate")
	}

	switch {
	case ratios.DebtToIncome <= 0.1:
		score += 25
		explanations = append(explanations, "Excellent debt management (<10% DTI)")
	case ratios.DebtToIncome <= 0.2:
		score += 20
		explanations = append(explanations, "Good debt management (10-20% DTI)")
	case ratios.DebtToIncome <= 0.4:
		score += 10
		explanations = append(explanations, "Moderate debt levels (20-40% DTI)")
	default:
		explanations = append(explanations, "High debt levels (40%+ DTI)")
	}

	switch {
	case ratios.InvestmentRatio >= 0.3:
		score += 25
		explanations = append(explanations, "Well diversified investments (30%+ of assets)")
	case ratios.InvestmentRatio >= 0.15:
		score += 20
		explanations = append(explanations, "Good investment allocation (15-30%)")
	case ratios.InvestmentRatio >= 0.05:
		score += 10
		explanations = append(explanations, "Some investments (5-15%)")
	default:
		explanations = append(explanations, "Limited investment diversification")
	}

	return HealthScore{Score: score, Grade: gradeFor(score), Explanations: explanations}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
