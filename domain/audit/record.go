package audit

import (
	"encoding/json"
	"sort"

	"stratasample/domain/core"
	"stratasample/domain/sampling"
)

// Record is the truth source for a sampling run: everything a third party
// needs to reproduce or defend the sample. It is created exactly once per run
// and never mutated afterwards.
type Record struct {
	RunID                 core.RunID                 `json:"run_id"`
	Parameters            sampling.Parameters        `json:"parameters"`
	Decisions             []sampling.SizeDecision    `json:"decisions"`
	Results               []sampling.SampleResult    `json:"results"`
	PopulationFingerprint core.PopulationFingerprint `json:"population_fingerprint"`
	BaseSeed              int64                      `json:"base_seed"`
	// SeedDerivation names the rule that maps the base seed to per-stratum
	// seeds, so a recount does not depend on reading this codebase.
	SeedDerivation string         `json:"seed_derivation"`
	CreatedAt      core.Timestamp `json:"created_at"`
}

// Assemble builds the audit record for a completed run. Assembly is
// all-or-nothing: any stratum present in decisions but absent from results, or
// vice versa, fails the whole run and nothing is produced.
func Assemble(
	params sampling.Parameters,
	decisions []sampling.SizeDecision,
	results []sampling.SampleResult,
	fingerprint core.PopulationFingerprint,
	baseSeed int64,
	seedDerivation string,
) (*Record, error) {
	byDecision := make(map[core.StratumLabel]bool, len(decisions))
	for _, d := range decisions {
		byDecision[d.Stratum] = true
	}
	byResult := make(map[core.StratumLabel]bool, len(results))
	for _, r := range results {
		byResult[r.Stratum] = true
	}
	for _, d := range decisions {
		if !byResult[d.Stratum] {
			return nil, core.NewIncompleteRunError(d.Stratum, "sample result")
		}
	}
	for _, r := range results {
		if !byDecision[r.Stratum] {
			return nil, core.NewIncompleteRunError(r.Stratum, "size decision")
		}
	}

	// Stable stratum order so serialization is canonical.
	sortedDecisions := make([]sampling.SizeDecision, len(decisions))
	copy(sortedDecisions, decisions)
	sort.Slice(sortedDecisions, func(i, j int) bool { return sortedDecisions[i].Stratum < sortedDecisions[j].Stratum })

	sortedResults := make([]sampling.SampleResult, len(results))
	copy(sortedResults, results)
	sort.Slice(sortedResults, func(i, j int) bool { return sortedResults[i].Stratum < sortedResults[j].Stratum })

	return &Record{
		RunID:                 core.RunID(core.NewID()),
		Parameters:            params,
		Decisions:             sortedDecisions,
		Results:               sortedResults,
		PopulationFingerprint: fingerprint,
		BaseSeed:              baseSeed,
		SeedDerivation:        seedDerivation,
		CreatedAt:             core.Now(),
	}, nil
}

// MarshalStable serializes the record to JSON without loss of any field
func (r *Record) MarshalStable() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ResultFor returns the sample result for a stratum, if present
func (r *Record) ResultFor(label core.StratumLabel) (sampling.SampleResult, bool) {
	for _, res := range r.Results {
		if res.Stratum == label {
			return res, true
		}
	}
	return sampling.SampleResult{}, false
}

// DecisionFor returns the size decision for a stratum, if present
func (r *Record) DecisionFor(label core.StratumLabel) (sampling.SizeDecision, bool) {
	for _, d := range r.Decisions {
		if d.Stratum == label {
			return d, true
		}
	}
	return sampling.SizeDecision{}, false
}

// TotalSelected counts selected records across all strata
func (r *Record) TotalSelected() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.SelectedIDs)
	}
	return total
}
