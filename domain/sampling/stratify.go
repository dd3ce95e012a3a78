package sampling

import (
	"stratasample/domain/core"
	"stratasample/domain/population"

	"github.com/montanaflynn/stats"
)

// Stratum is a derived view of one subgroup: the records sharing a label plus
// the descriptive statistics the size formula needs. Strata are recomputed
// whenever the population changes, never mutated in place.
type Stratum struct {
	Label      core.StratumLabel   `json:"label"`
	Records    []population.Record `json:"-"`
	Count      int                 `json:"count"`
	CostStdDev float64             `json:"cost_std_dev"`
}

// RecordIDs returns the stratum's record IDs in load order
func (s Stratum) RecordIDs() []core.RecordID {
	ids := make([]core.RecordID, len(s.Records))
	for i, r := range s.Records {
		ids[i] = r.ID
	}
	return ids
}

// Stratify groups the population into strata and computes per-stratum count
// and cost standard deviation. It is a pure function of its inputs: no stratum
// with zero records is ever emitted, and for a single-record stratum the
// standard deviation is 0 unless the parameters supply an override.
func Stratify(store *population.Store, params Parameters) (map[core.StratumLabel]Stratum, error) {
	strata := make(map[core.StratumLabel]Stratum)

	for _, label := range store.StrataLabels() {
		records := store.RecordsIn(label)
		if len(records) == 0 {
			continue
		}

		sigma, err := costStdDev(records)
		if err != nil {
			return nil, err
		}
		if override, ok := params.StdDevOverrides[label]; ok {
			if override < 0 {
				return nil, core.NewInvalidParametersError("std_dev override for stratum " + string(label) + " must not be negative")
			}
			sigma = override
		}

		strata[label] = Stratum{
			Label:      label,
			Records:    records,
			Count:      len(records),
			CostStdDev: sigma,
		}
	}

	return strata, nil
}

// costStdDev computes the sample standard deviation of cost, or 0 when the
// stratum has fewer than 2 records.
func costStdDev(records []population.Record) (float64, error) {
	if len(records) < 2 {
		return 0, nil
	}
	costs := make([]float64, len(records))
	for i, r := range records {
		costs[i] = r.Cost
	}
	sigma, err := stats.StandardDeviationSample(costs)
	if err != nil {
		return 0, core.NewValidationError("cost", err.Error())
	}
	return sigma, nil
}
