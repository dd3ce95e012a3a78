package core

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// PopulationFingerprint identifies the exact population content a sample was drawn from
type PopulationFingerprint Hash

func (h PopulationFingerprint) String() string { return Hash(h).String() }

// FingerprintEntry is one record's contribution to the population fingerprint.
type FingerprintEntry struct {
	ID      RecordID
	Stratum StratumLabel
	Cost    float64
}

// ComputePopulationFingerprint hashes the population content independent of load order.
// Entries are sorted by record ID so the fingerprint is canonical.
func ComputePopulationFingerprint(entries []FingerprintEntry) PopulationFingerprint {
	sorted := make([]FingerprintEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var data strings.Builder
	for _, e := range sorted {
		data.WriteString(string(e.ID))
		data.WriteByte('|')
		data.WriteString(string(e.Stratum))
		data.WriteByte('|')
		data.WriteString(strconv.FormatFloat(e.Cost, 'g', -1, 64))
		data.WriteByte('\n')
	}

	return PopulationFingerprint(NewHash([]byte(data.String())))
}
