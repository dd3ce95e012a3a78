package population

import (
	"stratasample/domain/core"
)

// Record is one population member: a project, claim, or other auditable unit.
// Records are created at ingestion and never mutated afterwards.
type Record struct {
	ID         core.RecordID     `json:"id"`
	Stratum    core.StratumLabel `json:"stratum"`
	Cost       float64           `json:"cost"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RawEntry is an unvalidated record as supplied by an ingestion collaborator.
type RawEntry struct {
	ID         string            `json:"id"`
	Stratum    string            `json:"stratum"`
	Cost       float64           `json:"cost"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Validate checks the structural integrity of a single entry.
func (e RawEntry) Validate() error {
	if _, err := core.ParseRecordID(e.ID); err != nil {
		return core.NewValidationError("id", "record is missing an id")
	}
	if _, err := core.ParseStratumLabel(e.Stratum); err != nil {
		return core.NewValidationError("stratum", "record "+e.ID+" has an empty stratum label")
	}
	if e.Cost < 0 {
		return core.NewValidationError("cost", "record "+e.ID+" has a negative cost")
	}
	return nil
}
