package ports

import (
	"math/rand"

	"stratasample/domain/core"
)

// RNGPort provides seeded random number generation for deterministic draws.
// Every stream must be a pure function of (base seed, stratum label): the same
// inputs yield the same stream whether strata run sequentially or concurrently.
type RNGPort interface {
	// StratumSeed derives the deterministic per-stratum seed from the base seed
	StratumSeed(baseSeed int64, label core.StratumLabel) int64

	// Stream creates the RNG stream for one stratum's draw
	Stream(baseSeed int64, label core.StratumLabel) *rand.Rand

	// DerivationName identifies the derivation rule for the audit record
	DerivationName() string
}
