package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RecordID     ID
	RunID        ID
	StratumLabel string
)

func (id RecordID) String() string   { return ID(id).String() }
func (id RunID) String() string      { return ID(id).String() }
func (l StratumLabel) String() string { return string(l) }

// ParseRecordID parses a string into RecordID
func ParseRecordID(s string) (RecordID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("record ID cannot be empty")
	}
	return RecordID(s), nil
}

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// ParseStratumLabel parses a string into StratumLabel
func ParseStratumLabel(s string) (StratumLabel, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("stratum label cannot be empty")
	}
	return StratumLabel(s), nil
}
