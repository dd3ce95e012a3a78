package population

import (
	"fmt"
	"testing"

	"stratasample/domain/core"
)

func validEntries() []RawEntry {
	return []RawEntry{
		{ID: "p-1", Stratum: "packaging", Cost: 120.5},
		{ID: "p-2", Stratum: "packaging", Cost: 80},
		{ID: "f-1", Stratum: "food", Cost: 15},
		{ID: "r-1", Stratum: "pharma", Cost: 900},
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []RawEntry
	}{
		{"missing id", []RawEntry{{ID: "", Stratum: "food", Cost: 1}}},
		{"whitespace id", []RawEntry{{ID: "  ", Stratum: "food", Cost: 1}}},
		{"empty stratum", []RawEntry{{ID: "a", Stratum: "", Cost: 1}}},
		{"negative cost", []RawEntry{{ID: "a", Stratum: "food", Cost: -0.01}}},
		{"duplicate id", []RawEntry{
			{ID: "a", Stratum: "food", Cost: 1},
			{ID: "a", Stratum: "pharma", Cost: 2},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewStore()
			err := store.Load(test.entries)
			if err == nil {
				t.Fatalf("expected validation error, got none")
			}
			if !core.IsValidationError(err) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if store.Size() != 0 {
				t.Errorf("expected nothing retained after failed load, got %d records", store.Size())
			}
			if len(store.StrataLabels()) != 0 {
				t.Errorf("expected no strata after failed load")
			}
		})
	}
}

func TestLoadAcceptsZeroCost(t *testing.T) {
	store := NewStore()
	if err := store.Load([]RawEntry{{ID: "a", Stratum: "food", Cost: 0}}); err != nil {
		t.Fatalf("zero cost should be valid: %v", err)
	}
}

func TestStrataPartitionThePopulation(t *testing.T) {
	store := NewStore()
	if err := store.Load(validEntries()); err != nil {
		t.Fatalf("load: %v", err)
	}

	labels := store.StrataLabels()
	if len(labels) != 3 {
		t.Fatalf("expected 3 strata, got %d (%v)", len(labels), labels)
	}

	total := 0
	seen := make(map[core.RecordID]int)
	for _, label := range labels {
		records := store.RecordsIn(label)
		if len(records) == 0 {
			t.Errorf("stratum %s has zero records", label)
		}
		total += len(records)
		for _, r := range records {
			seen[r.ID]++
			if r.Stratum != label {
				t.Errorf("record %s carries label %s but was returned for %s", r.ID, r.Stratum, label)
			}
		}
	}

	if total != store.Size() {
		t.Errorf("strata counts sum to %d, population size is %d", total, store.Size())
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("record %s appears in %d strata", id, n)
		}
	}
}

func TestRecordsInReturnsACopy(t *testing.T) {
	store := NewStore()
	if err := store.Load(validEntries()); err != nil {
		t.Fatalf("load: %v", err)
	}

	records := store.RecordsIn("packaging")
	records[0].Cost = -999

	again := store.RecordsIn("packaging")
	if again[0].Cost == -999 {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestLoadIsOneShot(t *testing.T) {
	store := NewStore()
	if err := store.Load(validEntries()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := store.Load(validEntries()); err == nil {
		t.Fatal("expected error on second load")
	}
}

func TestFingerprintIndependentOfLoadOrder(t *testing.T) {
	a := NewStore()
	if err := a.Load(validEntries()); err != nil {
		t.Fatalf("load: %v", err)
	}

	reversed := validEntries()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	b := NewStore()
	if err := b.Load(reversed); err != nil {
		t.Fatalf("load: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("expected identical fingerprints: %s vs %s", a.Fingerprint(), b.Fingerprint())
	}
}

func TestLoadLargePopulation(t *testing.T) {
	entries := make([]RawEntry, 0, 5000)
	for i := 0; i < 5000; i++ {
		entries = append(entries, RawEntry{
			ID:      fmt.Sprintf("rec-%04d", i),
			Stratum: fmt.Sprintf("s%d", i%7),
			Cost:    float64(i),
		})
	}

	store := NewStore()
	if err := store.Load(entries); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Size() != 5000 {
		t.Errorf("expected 5000 records, got %d", store.Size())
	}
	if len(store.StrataLabels()) != 7 {
		t.Errorf("expected 7 strata, got %d", len(store.StrataLabels()))
	}
}
