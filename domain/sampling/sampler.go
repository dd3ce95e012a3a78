package sampling

import (
	"math/rand"
	"sort"

	"stratasample/domain/core"
)

// SampleResult is the reproducible outcome of one stratum's draw
type SampleResult struct {
	Stratum     core.StratumLabel `json:"stratum"`
	SelectedIDs []core.RecordID   `json:"selected_ids"`
	Seed        int64             `json:"seed"`
	Timestamp   core.Timestamp    `json:"timestamp"`
}

// Draw selects exactly decision.AppliedN distinct record IDs from the stratum,
// uniformly at random without replacement. The stratum's IDs are sorted into
// canonical order before the draw, so the result depends only on the
// population content and the seed, never on load order. The same seed over the
// same ID set always yields the same selection.
func Draw(stratum Stratum, decision SizeDecision, seed int64) (SampleResult, error) {
	n := decision.AppliedN
	if n > stratum.Count {
		return SampleResult{}, core.NewInsufficientPopulationError(stratum.Label, n, stratum.Count)
	}

	ids := stratum.RecordIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Partial Fisher-Yates: after i swaps, ids[:i] is a uniform sample drawn
	// without replacement.
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	selected := make([]core.RecordID, n)
	copy(selected, ids[:n])
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })

	return SampleResult{
		Stratum:     stratum.Label,
		SelectedIDs: selected,
		Seed:        seed,
		Timestamp:   core.Now(),
	}, nil
}
