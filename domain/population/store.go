package population

import (
	"fmt"
	"sort"

	"stratasample/domain/core"
)

// Store holds the validated population. It is read-only after Load, which makes
// it safe for concurrent reads across strata without locking.
type Store struct {
	records   []Record
	byStratum map[core.StratumLabel][]Record
	loaded    bool
}

// NewStore creates an empty population store
func NewStore() *Store {
	return &Store{byStratum: make(map[core.StratumLabel][]Record)}
}

// Load validates and ingests an ordered sequence of raw record entries.
// It fails on the first missing id, duplicate id, negative cost, or empty
// stratum label; nothing is retained on failure.
func (s *Store) Load(entries []RawEntry) error {
	if s.loaded {
		return core.NewValidationError("store", "population already loaded")
	}

	seen := make(map[string]bool, len(entries))
	records := make([]Record, 0, len(entries))
	byStratum := make(map[core.StratumLabel][]Record)

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.ID] {
			return core.NewValidationError("id", fmt.Sprintf("duplicate record id %q", e.ID))
		}
		seen[e.ID] = true

		rec := Record{
			ID:         core.RecordID(e.ID),
			Stratum:    core.StratumLabel(e.Stratum),
			Cost:       e.Cost,
			Attributes: e.Attributes,
		}
		records = append(records, rec)
		byStratum[rec.Stratum] = append(byStratum[rec.Stratum], rec)
	}

	s.records = records
	s.byStratum = byStratum
	s.loaded = true
	return nil
}

// Size returns the total number of records
func (s *Store) Size() int {
	return len(s.records)
}

// StrataLabels returns the distinct stratum labels in sorted order
func (s *Store) StrataLabels() []core.StratumLabel {
	labels := make([]core.StratumLabel, 0, len(s.byStratum))
	for label := range s.byStratum {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// RecordsIn returns the records carrying the given stratum label.
// The returned slice is a copy; callers cannot mutate the store through it.
func (s *Store) RecordsIn(label core.StratumLabel) []Record {
	src := s.byStratum[label]
	out := make([]Record, len(src))
	copy(out, src)
	return out
}

// Fingerprint computes the canonical content hash of the loaded population
func (s *Store) Fingerprint() core.PopulationFingerprint {
	entries := make([]core.FingerprintEntry, 0, len(s.records))
	for _, r := range s.records {
		entries = append(entries, core.FingerprintEntry{ID: r.ID, Stratum: r.Stratum, Cost: r.Cost})
	}
	return core.ComputePopulationFingerprint(entries)
}
