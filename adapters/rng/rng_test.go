package rng

import (
	"testing"

	"stratasample/domain/core"
)

func TestStratumSeedIsDeterministic(t *testing.T) {
	a := New()
	b := New()

	if a.StratumSeed(42, "pharma") != b.StratumSeed(42, "pharma") {
		t.Error("expected identical seeds from independent adapters")
	}
}

func TestStratumSeedVariesByLabelAndBase(t *testing.T) {
	a := New()

	if a.StratumSeed(42, "pharma") == a.StratumSeed(42, "food") {
		t.Error("expected different labels to derive different seeds")
	}
	if a.StratumSeed(42, "pharma") == a.StratumSeed(43, "pharma") {
		t.Error("expected different base seeds to derive different seeds")
	}
}

func TestStreamIsReproducible(t *testing.T) {
	a := New()

	r1 := a.Stream(42, core.StratumLabel("pharma"))
	r2 := a.Stream(42, core.StratumLabel("pharma"))
	for i := 0; i < 100; i++ {
		if r1.Int63() != r2.Int63() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestDerivationNameIsStable(t *testing.T) {
	// The name is written into audit records; changing it invalidates recounts.
	if got := New().DerivationName(); got != "xor-fnv64a-label" {
		t.Errorf("unexpected derivation name %q", got)
	}
}
