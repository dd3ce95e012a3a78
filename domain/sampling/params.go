package sampling

import (
	"stratasample/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults for the two-sided 95% confidence setup used by most engagements.
const (
	DefaultConfidenceZ              = 1.96
	DefaultMarginOfError            = 0.05
	DefaultSmallPopulationThreshold = 50
)

// Parameters holds the knobs for one sampling run. A Parameters value is
// supplied once per run and treated as immutable for that run.
type Parameters struct {
	ConfidenceZ              float64 `json:"confidence_z"`
	MarginOfError            float64 `json:"margin_of_error"`
	SmallPopulationThreshold int     `json:"small_population_threshold"`
	// MinSampleSize and MaxSampleSize clamp the computed size when > 0.
	MinSampleSize int `json:"min_sample_size,omitempty"`
	MaxSampleSize int `json:"max_sample_size,omitempty"`
	// FullCensusBelowThreshold examines 100% of a stratum smaller than the
	// threshold, and is also the fallback for zero-variance strata.
	FullCensusBelowThreshold bool `json:"full_census_below_threshold"`
	// StdDevOverrides supplies a caller-estimated cost standard deviation for
	// strata where it cannot be computed (fewer than 2 records).
	StdDevOverrides map[core.StratumLabel]float64 `json:"std_dev_overrides,omitempty"`
}

// DefaultParameters returns the standard 95%-confidence parameter set
func DefaultParameters() Parameters {
	return Parameters{
		ConfidenceZ:              DefaultConfidenceZ,
		MarginOfError:            DefaultMarginOfError,
		SmallPopulationThreshold: DefaultSmallPopulationThreshold,
		FullCensusBelowThreshold: true,
	}
}

// Validate checks the parameter set before any per-stratum computation
func (p Parameters) Validate() error {
	if p.ConfidenceZ <= 0 {
		return core.NewInvalidParametersError("confidence_z must be positive")
	}
	if p.MarginOfError <= 0 {
		return core.NewInvalidParametersError("margin_of_error must be positive")
	}
	if p.SmallPopulationThreshold < 0 {
		return core.NewInvalidParametersError("small_population_threshold must not be negative")
	}
	if p.MinSampleSize < 0 || p.MaxSampleSize < 0 {
		return core.NewInvalidParametersError("sample size bounds must not be negative")
	}
	if p.MinSampleSize > 0 && p.MaxSampleSize > 0 && p.MinSampleSize > p.MaxSampleSize {
		return core.NewInvalidParametersError("min_sample_size exceeds max_sample_size")
	}
	return nil
}

// ZForConfidence converts a two-sided confidence level (e.g. 0.95) to its
// standard normal critical value (e.g. 1.96) via the normal quantile.
func ZForConfidence(level float64) (float64, error) {
	if level <= 0 || level >= 1 {
		return 0, core.NewInvalidParametersError("confidence level must be in (0, 1)")
	}
	n := distuv.Normal{Mu: 0, Sigma: 1}
	return n.Quantile(0.5 + level/2), nil
}
