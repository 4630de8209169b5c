package calculation

import "github.com/jspencer/fincast/internal/domain"

// Engine bundles the deterministic simulator with the Monte Carlo risk
// analyzer. The two consume the same immutable inputs but stay independent:
// the monthly path is a point forecast, the trial distribution a risk
// envelope, and neither is reconciled into the other.
type Engine struct {
	Simulator *Simulator
	Risk      *RiskAnalyzer
	Logger    Logger
}

// NewEngine creates an engine with default components.
func NewEngine() *Engine {
	return &Engine{
		Simulator: NewSimulator(),
		Risk:      NewRiskAnalyzer(),
		Logger:    NopLogger{},
	}
}

// SetLogger installs a logger on the engine and both components. A nil
// logger resets to the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
	e.Simulator.Logger = logger
	e.Risk.Logger = logger
}

// RunScenario produces the full forecast: monthly projections, summaries,
// metrics and the attached risk analysis.
func (e *Engine) RunScenario(params domain.ScenarioParameters, snapshot domain.Snapshot) *domain.ForecastResult {
	e.Logger.Infof("running scenario %q over %d years", params.Name, params.TimeHorizonYears)
	result := e.Simulator.Forecast(params, snapshot)
	risk := e.Risk.Run(params, snapshot)
	result.RiskAnalysis = &risk
	return result
}
