package core

import (
	"testing"
)

func TestPopulationFingerprintIgnoresOrder(t *testing.T) {
	a := []FingerprintEntry{
		{ID: "p-1", Stratum: "packaging", Cost: 100},
		{ID: "p-2", Stratum: "packaging", Cost: 250.5},
		{ID: "f-1", Stratum: "food", Cost: 0},
	}
	b := []FingerprintEntry{
		{ID: "f-1", Stratum: "food", Cost: 0},
		{ID: "p-2", Stratum: "packaging", Cost: 250.5},
		{ID: "p-1", Stratum: "packaging", Cost: 100},
	}

	fa := ComputePopulationFingerprint(a)
	fb := ComputePopulationFingerprint(b)
	if !Hash(fa).Equals(Hash(fb)) {
		t.Fatalf("expected identical fingerprints for reordered populations, got %s vs %s", fa, fb)
	}
}

func TestPopulationFingerprintDetectsContentChange(t *testing.T) {
	base := []FingerprintEntry{
		{ID: "p-1", Stratum: "packaging", Cost: 100},
		{ID: "p-2", Stratum: "packaging", Cost: 250.5},
	}
	changedCost := []FingerprintEntry{
		{ID: "p-1", Stratum: "packaging", Cost: 100.01},
		{ID: "p-2", Stratum: "packaging", Cost: 250.5},
	}
	changedStratum := []FingerprintEntry{
		{ID: "p-1", Stratum: "pharma", Cost: 100},
		{ID: "p-2", Stratum: "packaging", Cost: 250.5},
	}

	fBase := ComputePopulationFingerprint(base)
	if Hash(fBase).Equals(Hash(ComputePopulationFingerprint(changedCost))) {
		t.Error("expected cost change to alter the fingerprint")
	}
	if Hash(fBase).Equals(Hash(ComputePopulationFingerprint(changedStratum))) {
		t.Error("expected stratum change to alter the fingerprint")
	}
}

func TestNewHashIsStable(t *testing.T) {
	h1 := NewHash([]byte("audit"))
	h2 := NewHash([]byte("audit"))
	if !h1.Equals(h2) {
		t.Fatalf("expected stable hash, got %s vs %s", h1, h2)
	}
	if h1.IsEmpty() {
		t.Error("expected non-empty hash")
	}
}
