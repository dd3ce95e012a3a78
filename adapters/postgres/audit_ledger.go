package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"stratasample/domain/audit"
	"stratasample/domain/core"
	"stratasample/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// auditLedger persists audit records as JSONB rows. Rows are append-only:
// there is no update path, matching the immutability of the record itself.
type auditLedger struct {
	db *sqlx.DB
}

// NewAuditLedger creates a postgres-backed audit ledger
func NewAuditLedger(db *sqlx.DB) ports.LedgerPort {
	return &auditLedger{db: db}
}

// Connect opens a postgres connection for the ledger
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the audit_records table if it does not exist
func Migrate(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS audit_records (
		run_id      TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		base_seed   BIGINT NOT NULL,
		payload     JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate audit_records: %w", err)
	}
	return nil
}

// StoreRecord inserts a completed audit record
func (l *auditLedger) StoreRecord(ctx context.Context, record *audit.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	query := `INSERT INTO audit_records (run_id, fingerprint, base_seed, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = l.db.ExecContext(ctx, query,
		record.RunID, record.PopulationFingerprint.String(), record.BaseSeed, payload, record.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to store audit record: %w", err)
	}
	return nil
}

// GetRecord retrieves an audit record by run ID
func (l *auditLedger) GetRecord(ctx context.Context, runID core.RunID) (*audit.Record, error) {
	query := `SELECT payload FROM audit_records WHERE run_id = $1`

	var payload []byte
	err := l.db.QueryRowContext(ctx, query, runID).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("audit record", runID.String())
		}
		return nil, fmt.Errorf("failed to get audit record: %w", err)
	}

	var record audit.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit record: %w", err)
	}
	return &record, nil
}

// ListRecords returns stored audit records, newest first
func (l *auditLedger) ListRecords(ctx context.Context, limit, offset int) ([]*audit.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT payload FROM audit_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := l.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	var records []*audit.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		var record audit.Record
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit record: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}
