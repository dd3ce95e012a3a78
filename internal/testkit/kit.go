package testkit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"stratasample/domain/audit"
	"stratasample/domain/core"
	"stratasample/domain/population"
	"stratasample/ports"
)

// StratumSpec describes one synthetic stratum for test fixtures
type StratumSpec struct {
	Label    string
	Count    int
	MeanCost float64
	CostSpan float64 // costs are spread uniformly across [MeanCost-Span/2, MeanCost+Span/2]
}

// SyntheticPopulation builds a deterministic population from stratum specs.
// The same specs and seed always produce the same entries, in the same order.
func SyntheticPopulation(seed int64, specs ...StratumSpec) []population.RawEntry {
	rng := rand.New(rand.NewSource(seed))
	var entries []population.RawEntry
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			cost := spec.MeanCost + (rng.Float64()-0.5)*spec.CostSpan
			if cost < 0 {
				cost = 0
			}
			entries = append(entries, population.RawEntry{
				ID:      fmt.Sprintf("%s-%04d", spec.Label, i),
				Stratum: spec.Label,
				Cost:    cost,
			})
		}
	}
	return entries
}

// Shuffled returns a copy of entries in a different deterministic order, for
// asserting that results do not depend on load order.
func Shuffled(entries []population.RawEntry, seed int64) []population.RawEntry {
	out := make([]population.RawEntry, len(entries))
	copy(out, entries)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// InMemoryLedger is a test double for the audit ledger ports
type InMemoryLedger struct {
	mu      sync.RWMutex
	records map[core.RunID]*audit.Record
	order   []core.RunID
}

// NewInMemoryLedger creates an empty in-memory ledger
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{records: make(map[core.RunID]*audit.Record)}
}

// StoreRecord appends an audit record
func (l *InMemoryLedger) StoreRecord(_ context.Context, record *audit.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.records[record.RunID]; exists {
		return core.NewValidationError("run_id", "audit record already stored")
	}
	l.records[record.RunID] = record
	l.order = append(l.order, record.RunID)
	return nil
}

// GetRecord retrieves an audit record by run ID
func (l *InMemoryLedger) GetRecord(_ context.Context, runID core.RunID) (*audit.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.records[runID]
	if !ok {
		return nil, core.NewNotFoundError("audit record", runID.String())
	}
	return record, nil
}

// ListRecords returns stored records, newest first
func (l *InMemoryLedger) ListRecords(_ context.Context, limit, offset int) ([]*audit.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*audit.Record
	for i := len(l.order) - 1 - offset; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, l.records[l.order[i]])
	}
	return out, nil
}

var _ ports.LedgerPort = (*InMemoryLedger)(nil)
