package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/compound/internal/config"
	"github.com/san-kum/compound/internal/growth"
	"github.com/san-kum/compound/internal/metrics"
)

// Scenario is a named batch of calculations read from YAML.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and overrides any
// field present in the step. A present zero is kept and left to validation.
type ScenarioStep struct {
	Name       string   `yaml:"name"`
	Preset     string   `yaml:"preset"`
	Principal  *float64 `yaml:"principal"`
	AnnualRate *float64 `yaml:"annual_rate"`
	Frequency  *string  `yaml:"frequency"`
	Years      *int     `yaml:"years"`
}

// StepResult is the outcome of one scenario step or sweep point.
type StepResult struct {
	Name    string
	Params  growth.Params
	Result  growth.Result
	Metrics map[string]float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

func (s ScenarioStep) config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", s.Preset, config.ListPresets())
		}
	}
	if s.Principal != nil {
		cfg.Principal = *s.Principal
	}
	if s.AnnualRate != nil {
		cfg.AnnualRate = *s.AnnualRate
	}
	if s.Frequency != nil {
		cfg.Frequency = *s.Frequency
	}
	if s.Years != nil {
		cfg.Years = *s.Years
	}
	return cfg, nil
}

// RunScenario executes all steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		slog.Debug("running scenario step", "scenario", scenario.Name, "step", name, "index", i+1, "of", len(scenario.Steps))

		cfg, err := step.config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		p, err := cfg.Params()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := evaluate(name, p)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func evaluate(name string, p growth.Params) (StepResult, error) {
	res, err := growth.Compute(p)
	if err != nil {
		return StepResult{}, err
	}
	seq, err := growth.Trace(p)
	if err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Name:    name,
		Params:  p,
		Result:  res,
		Metrics: metrics.Collect(seq, metrics.Default(p, res)...),
	}, nil
}

// Sweep parameters that can be varied.
const (
	SweepRate  = "rate"
	SweepYears = "years"
)

// ParameterSweep varies one input of Base over [Min, Max] in Steps points.
type ParameterSweep struct {
	Base  growth.Params
	Param string
	Min   float64
	Max   float64
	Steps int
}

// RunSweep evaluates every point of the sweep.
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]StepResult, error) {
	if sweep.Steps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.Steps)
	}
	if sweep.Param != SweepRate && sweep.Param != SweepYears {
		return nil, fmt.Errorf("unknown sweep parameter: %s (available: %s, %s)", sweep.Param, SweepRate, SweepYears)
	}

	paramStep := 0.0
	if sweep.Steps > 1 {
		paramStep = (sweep.Max - sweep.Min) / float64(sweep.Steps-1)
	}

	results := make([]StepResult, 0, sweep.Steps)
	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		paramVal := sweep.Min + float64(i)*paramStep
		p := sweep.Base
		switch sweep.Param {
		case SweepRate:
			p.AnnualRatePercent = paramVal
		case SweepYears:
			p.Years = int(math.Round(paramVal))
		}

		res, err := evaluate(fmt.Sprintf("%s=%g", sweep.Param, paramVal), p)
		if err != nil {
			return results, fmt.Errorf("sweep point %d: %w", i+1, err)
		}
		results = append(results, res)

		slog.Debug("sweep point", "index", i+1, "of", sweep.Steps, sweep.Param, paramVal)
	}

	return results, nil
}
