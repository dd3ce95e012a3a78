package ports

import (
	"context"

	"stratasample/domain/audit"
	"stratasample/domain/core"
)

// LedgerWriterPort provides append-only write access to audit records.
// This is the only way to persist a record - no partial record is ever stored.
type LedgerWriterPort interface {
	StoreRecord(ctx context.Context, record *audit.Record) error
}

// LedgerReaderPort provides read-only access to stored audit records
type LedgerReaderPort interface {
	GetRecord(ctx context.Context, runID core.RunID) (*audit.Record, error)
	ListRecords(ctx context.Context, limit, offset int) ([]*audit.Record, error)
}

// LedgerPort combines read and write access
type LedgerPort interface {
	LedgerWriterPort
	LedgerReaderPort
}
