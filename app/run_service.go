package app

import (
	"context"

	"stratasample/domain/audit"
	"stratasample/domain/core"
	"stratasample/domain/population"
	"stratasample/domain/sampling"
	"stratasample/ports"

	"golang.org/x/sync/errgroup"
)

// RunService drives the full pipeline: population -> strata -> size decisions
// -> draws -> audit record. Strata are independent, so per-stratum work runs
// concurrently; seeds are derived per stratum, so concurrent and sequential
// execution produce identical results.
type RunService struct {
	rng    ports.RNGPort
	ledger ports.LedgerWriterPort // optional; nil skips persistence
}

// NewRunService creates a run service. The ledger may be nil when the caller
// handles persistence itself.
func NewRunService(rng ports.RNGPort, ledger ports.LedgerWriterPort) *RunService {
	return &RunService{rng: rng, ledger: ledger}
}

// Execute runs one complete, separately audited sampling run. No partial audit
// record is ever produced or persisted: any stage error fails the whole run.
func (s *RunService) Execute(
	ctx context.Context,
	entries []population.RawEntry,
	params sampling.Parameters,
	baseSeed int64,
) (*audit.Record, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	store := population.NewStore()
	if err := store.Load(entries); err != nil {
		return nil, err
	}

	strata, err := sampling.Stratify(store, params)
	if err != nil {
		return nil, err
	}

	labels := store.StrataLabels()
	decisions := make([]sampling.SizeDecision, len(labels))
	results := make([]sampling.SampleResult, len(labels))

	g, _ := errgroup.WithContext(ctx)
	for i, label := range labels {
		i, label := i, label
		g.Go(func() error {
			stratum := strata[label]
			decision, err := sampling.ComputeSize(stratum, params)
			if err != nil {
				return err
			}

			seed := s.rng.StratumSeed(baseSeed, label)
			result, err := sampling.Draw(stratum, decision, seed)
			if err != nil {
				return err
			}

			// Each goroutine owns its own slot.
			decisions[i] = decision
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	record, err := audit.Assemble(params, decisions, results, store.Fingerprint(), baseSeed, s.rng.DerivationName())
	if err != nil {
		return nil, err
	}

	if s.ledger != nil {
		if err := s.ledger.StoreRecord(ctx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Verify recounts a stored audit record against a population: the fingerprint
// must match and an independent redraw under the recorded parameters and seed
// must reproduce every selection bit for bit.
func (s *RunService) Verify(record *audit.Record, entries []population.RawEntry) error {
	store := population.NewStore()
	if err := store.Load(entries); err != nil {
		return err
	}

	if !core.Hash(store.Fingerprint()).Equals(core.Hash(record.PopulationFingerprint)) {
		return core.NewValidationError("fingerprint", "population content differs from the audited population")
	}

	strata, err := sampling.Stratify(store, record.Parameters)
	if err != nil {
		return err
	}

	for _, original := range record.Results {
		stratum, ok := strata[original.Stratum]
		if !ok {
			return core.NewIncompleteRunError(original.Stratum, "stratum in population")
		}
		decision, ok := record.DecisionFor(original.Stratum)
		if !ok {
			return core.NewIncompleteRunError(original.Stratum, "size decision")
		}

		redrawn, err := sampling.Draw(stratum, decision, original.Seed)
		if err != nil {
			return err
		}
		if len(redrawn.SelectedIDs) != len(original.SelectedIDs) {
			return core.NewValidationError("selection", "redraw size differs for stratum "+string(original.Stratum))
		}
		for i := range redrawn.SelectedIDs {
			if redrawn.SelectedIDs[i] != original.SelectedIDs[i] {
				return core.NewValidationError("selection", "redraw differs for stratum "+string(original.Stratum))
			}
		}
	}
	return nil
}
