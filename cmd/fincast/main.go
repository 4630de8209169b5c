package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jspencer/fincast/internal/calculation"
	"github.com/jspencer/fincast/internal/config"
	"github.com/jspencer/fincast/internal/domain"
	"github.com/jspencer/fincast/internal/ledger"
	"github.com/jspencer/fincast/internal/output"
	"github.com/jspencer/fincast/internal/scenario"
)

// zerologAdapter bridges the calculation.Logger interface onto zerolog.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagLedger   string
	flagScenario string
	flagPreset   string
	flagAsOf     string
	flagLookback int
	flagHorizon  int
	flagTrials   int
	flagSeed     int64
	flagFormat   string
	flagOut      string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "fincast",
	Short: "Personal finance forecasting and tax simulation",
	Long:  "Projects net worth from ledger history under configurable scenarios, with progressive tax computation and Monte Carlo risk analysis",
}

func newLogger() zerologAdapter {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerologAdapter{log: zerolog.New(writer).Level(level).With().Timestamp().Logger()}
}

func loadSnapshot() (domain.Snapshot, error) {
	asOf := time.Now().UTC()
	if flagAsOf != "" {
		parsed, err := time.Parse("2006-01-02", flagAsOf)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("invalid --as-of date %q: %w", flagAsOf, err)
		}
		asOf = parsed
	}

	led, err := ledger.LoadFile(flagLedger)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("loading ledger: %w", err)
	}
	return ledger.Extract(led, asOf, flagLookback), nil
}

func buildParameters(snapshot domain.Snapshot) (domain.ScenarioParameters, error) {
	if flagScenario != "" {
		parser := config.NewInputParser()
		params, err := parser.LoadFromFile(flagScenario)
		if err != nil {
			return domain.ScenarioParameters{}, err
		}
		return *params, nil
	}

	params := scenario.Base(snapshot, flagHorizon)
	preset, err := presetFor(flagPreset)
	if err != nil {
		return domain.ScenarioParameters{}, err
	}
	preset.Apply(&params)
	return params, nil
}

func presetFor(name string) (scenario.Preset, error) {
	switch name {
	case "", "custom":
		return scenario.Custom{}, nil
	case "investment-growth":
		return scenario.InvestmentGrowth{}, nil
	case "emergency-fund":
		return scenario.EmergencyFund{}, nil
	case "retirement":
		return scenario.Retirement{}, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (file-based scenarios cover the parameterized presets)", name)
	}
}

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Run a scenario forecast from ledger history",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		snapshot, err := loadSnapshot()
		if err != nil {
			return err
		}
		params, err := buildParameters(snapshot)
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		engine.SetLogger(logger)
		if flagTrials > 0 {
			engine.Risk.NumTrials = flagTrials
		}
		if flagSeed != 0 {
			engine.Risk.Seed = flagSeed
		}

		result := engine.RunScenario(params, snapshot)

		report, err := output.NewReportGenerator().Generate(result, params, snapshot, flagFormat)
		if err != nil {
			return err
		}
		return writeOut(report)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Assess financial health from ledger history",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := loadSnapshot()
		if err != nil {
			return err
		}
		ratios := calculation.ComputeHealthRatios(snapshot)
		score := calculation.ScoreHealth(ratios)
		return writeOut(output.NewReportGenerator().HealthReport(snapshot, ratios, score))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "fincast %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func writeOut(data []byte) error {
	if flagOut == "" || flagOut == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(flagOut, data, 0o644)
}

func init() {
	for _, cmd := range []*cobra.Command{forecastCmd, healthCmd} {
		cmd.Flags().StringVar(&flagLedger, "ledger", "", "path to the ledger export file (required)")
		cmd.Flags().StringVar(&flagAsOf, "as-of", "", "snapshot date YYYY-MM-DD (default today)")
		cmd.Flags().IntVar(&flagLookback, "lookback", ledger.DefaultLookbackMonths, "trailing months used for averages")
		cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
		_ = cmd.MarkFlagRequired("ledger")
	}
	forecastCmd.Flags().StringVar(&flagScenario, "scenario", "", "path to a scenario YAML file")
	forecastCmd.Flags().StringVar(&flagPreset, "preset", "", "built-in preset when no scenario file is given")
	forecastCmd.Flags().IntVar(&flagHorizon, "horizon", 10, "projection horizon in years (preset scenarios)")
	forecastCmd.Flags().IntVar(&flagTrials, "trials", 0, "Monte Carlo trial count (default engine setting)")
	forecastCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Monte Carlo seed for reproducible runs")
	forecastCmd.Flags().StringVar(&flagFormat, "format", "console", "output format: console, json, csv")
	forecastCmd.Flags().StringVarP(&flagOut, "output", "o", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(forecastCmd, healthCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
