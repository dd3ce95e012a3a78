package sampling

import (
	"math"

	"stratasample/domain/core"
)

// Method records which rule determined a stratum's final sample size
type Method string

const (
	MethodFormula    Method = "formula"
	MethodFullCensus Method = "full_census"
	MethodMinClamp   Method = "min_clamp"
	MethodMaxClamp   Method = "max_clamp"
)

// SizeDecision is the immutable outcome of the sample-size computation for one stratum
type SizeDecision struct {
	Stratum        core.StratumLabel `json:"stratum"`
	PopulationSize int               `json:"population_size"`
	StdDev         float64           `json:"std_dev"`
	ComputedN      int               `json:"computed_n"`
	AppliedN       int               `json:"applied_n"`
	Method         Method            `json:"method"`
}

// ComputeSize determines the target sample size for one stratum.
//
// Small strata are examined in full when the census rule is enabled. Otherwise
// the finite-population-correction formula applies:
//
//	n = (z²·σ²·N) / ((N−1)·e² + z²·σ²)
//
// rounded up so rounding never under-samples, then clamped to any configured
// min/max bounds and always to [0, N].
func ComputeSize(stratum Stratum, params Parameters) (SizeDecision, error) {
	if err := params.Validate(); err != nil {
		return SizeDecision{}, err
	}
	n := stratum.Count
	if n == 0 {
		return SizeDecision{}, core.NewInvalidParametersError("stratum " + string(stratum.Label) + " has zero population")
	}

	decision := SizeDecision{
		Stratum:        stratum.Label,
		PopulationSize: n,
		StdDev:         stratum.CostStdDev,
	}

	if params.FullCensusBelowThreshold && n < params.SmallPopulationThreshold {
		decision.ComputedN = n
		decision.AppliedN = n
		decision.Method = MethodFullCensus
		return decision, nil
	}

	if stratum.CostStdDev == 0 {
		// No variance and no override: either examine everything or refuse.
		if !params.FullCensusBelowThreshold {
			return SizeDecision{}, core.NewDegenerateVarianceError(stratum.Label)
		}
		decision.ComputedN = n
		decision.AppliedN = n
		decision.Method = MethodFullCensus
		return decision, nil
	}

	z := params.ConfidenceZ
	sigma := stratum.CostStdDev
	e := params.MarginOfError
	raw := (z * z * sigma * sigma * float64(n)) /
		(float64(n-1)*e*e + z*z*sigma*sigma)
	computed := int(math.Ceil(raw))
	decision.ComputedN = computed

	applied := computed
	method := MethodFormula
	if params.MinSampleSize > 0 && applied < params.MinSampleSize {
		applied = params.MinSampleSize
		method = MethodMinClamp
	}
	if params.MaxSampleSize > 0 && applied > params.MaxSampleSize {
		applied = params.MaxSampleSize
		method = MethodMaxClamp
	}
	if applied > n {
		applied = n
		method = MethodMaxClamp
	}
	if applied < 0 {
		applied = 0
		method = MethodMinClamp
	}

	decision.AppliedN = applied
	decision.Method = method
	return decision, nil
}
