package rng

import (
	"hash/fnv"
	"math/rand"

	"stratasample/domain/core"
	"stratasample/ports"
)

const derivationName = "xor-fnv64a-label"

// Adapter derives per-stratum seeds by XORing the base seed with the FNV-64a
// hash of the stratum label. The derivation is stateless, so strata can be
// drawn concurrently without sharing a random source.
type Adapter struct{}

// New creates the deterministic RNG adapter
func New() *Adapter {
	return &Adapter{}
}

// StratumSeed derives the deterministic per-stratum seed
func (a *Adapter) StratumSeed(baseSeed int64, label core.StratumLabel) int64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return baseSeed ^ int64(h.Sum64())
}

// Stream creates the RNG stream for one stratum's draw
func (a *Adapter) Stream(baseSeed int64, label core.StratumLabel) *rand.Rand {
	return rand.New(rand.NewSource(a.StratumSeed(baseSeed, label)))
}

// DerivationName identifies the derivation rule for the audit record
func (a *Adapter) DerivationName() string {
	return derivationName
}

var _ ports.RNGPort = (*Adapter)(nil)
