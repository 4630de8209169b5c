package calculation

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/jspencer/fincast/internal/domain"
)

// DefaultNumTrials is the trial count used when the caller does not choose one.
const DefaultNumTrials = 500

// RiskAnalyzer characterizes the outcome distribution of a scenario by
// running many randomized annual-resolution simulations. The annual model is
// deliberately coarser than the monthly simulator: it bounds risk, it does
// not refine the point forecast. The two accumulation orders also differ on
// purpose (here growth compounds before the year's cash flow lands).
type RiskAnalyzer struct {
	NumTrials int
	Workers   int
	Seed      int64
	// Source returns the random stream for one trial. Leaving it nil gives
	// each trial an independent stream derived from Seed, which keeps trial
	// RNG state unshared across workers and results reproducible.
	Source func(trial int) *rand.Rand
	Logger Logger
}

// NewRiskAnalyzer creates an analyzer with default trial count, one worker
// per CPU and a time-based seed.
func NewRiskAnalyzer() *RiskAnalyzer {
	return &RiskAnalyzer{
		NumTrials: DefaultNumTrials,
		Workers:   runtime.NumCPU(),
		Seed:      time.Now().UnixNano(),
		Logger:    NopLogger{},
	}
}

// Run executes the trials and aggregates their final net worths.
func (ra *RiskAnalyzer) Run(params domain.ScenarioParameters, snapshot domain.Snapshot) domain.RiskAnalysis {
	numTrials := ra.NumTrials
	if numTrials <= 0 {
		numTrials = DefaultNumTrials
	}
	workers := ra.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	source := ra.Source
	if source == nil {
		source = func(trial int) *rand.Rand {
			return rand.New(rand.NewSource(ra.Seed + int64(trial)))
		}
	}

	outcomes := make([]float64, numTrials)
	trials := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range trials {
				outcomes[trial] = runTrial(params, snapshot, source(trial))
			}
		}()
	}
	for trial := 0; trial < numTrials; trial++ {
		trials <- trial
	}
	close(trials)
	wg.Wait()

	analysis := aggregate(outcomes, snapshot.NetWorth.InexactFloat64())
	ra.logger().Debugf("monte carlo complete: %d trials, mean %.0f, p5 %.0f",
		numTrials, analysis.Mean, analysis.P5)
	return analysis
}

// runTrial plays one randomized path: each year draws an investment return
// and an income multiplier, then applies growth to the balance before adding
// the year's cash flow.
func runTrial(params domain.ScenarioParameters, snapshot domain.Snapshot, rng *rand.Rand) float64 {
	baseSalary := params.Income.BaseAnnualSalary.InexactFloat64()
	bonus := params.Income.BonusAmount.InexactFloat64()
	otherIncome := params.Income.OtherAnnualIncome.InexactFloat64()
	annualExpenses := params.Expenses.TotalBaseMonthly().InexactFloat64() * 12

	netWorth := snapshot.NetWorth.InexactFloat64()
	for year := 0; year < params.TimeHorizonYears; year++ {
		annualReturn := params.Investments.ExpectedAnnualReturn + rng.NormFloat64()*params.Investments.AnnualVolatility
		incomeMultiplier := 1.0 + rng.NormFloat64()*params.Income.IncomeVolatility

		income := baseSalary*math.Pow(1+params.Income.AnnualGrowthRate, float64(year))*incomeMultiplier + bonus + otherIncome
		expenses := annualExpenses * math.Pow(1+params.Expenses.AnnualInflationRate, float64(year))
		tax := ComputeTax(decimal.NewFromFloat(income), decimal.Zero, params.TaxRates, decimal.Zero).Total.InexactFloat64()

		cashFlow := income - expenses - tax
		netWorth = netWorth*(1+annualReturn) + cashFlow
	}
	return netWorth
}

// aggregate computes the distribution statistics over trial outcomes.
// Percentiles use linear interpolation between closest ranks; the standard
// deviation is the population form.
func aggregate(outcomes []float64, currentNetWorth float64) domain.RiskAnalysis {
	if len(outcomes) == 0 {
		return domain.RiskAnalysis{}
	}
	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	losses := 0
	for _, outcome := range outcomes {
		if outcome < currentNetWorth {
			losses++
		}
	}

	analysis := domain.RiskAnalysis{
		Mean:              stat.Mean(sorted, nil),
		Median:            percentile(sorted, 0.50),
		StdDev:            stat.PopStdDev(sorted, nil),
		P5:                percentile(sorted, 0.05),
		P25:               percentile(sorted, 0.25),
		P75:               percentile(sorted, 0.75),
		P95:               percentile(sorted, 0.95),
		ProbabilityOfLoss: float64(losses) / float64(len(outcomes)),
	}
	analysis.ValueAtRisk5 = currentNetWorth - analysis.P5
	return analysis
}

// percentile interpolates linearly between the closest ranks of a sorted
// sample (index p*(n-1)).
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	index := p * float64(len(sorted)-1)
	lower := int(index)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	fraction := index - float64(lower)
	return sorted[lower] + (sorted[lower+1]-sorted[lower])*fraction
}

func (ra *RiskAnalyzer) logger() Logger {
	if ra.Logger == nil {
		return NopLogger{}
	}
	return ra.Logger
}
