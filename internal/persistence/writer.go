package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// AuditLogWriter writes composition and admin events to Postgres using
// multi-row INSERTs. The audit log is the router's only persistent state —
// positions live in the collaborators.
type AuditLogWriter struct {
	db *sql.DB
}

// EventRow represents a row in audit.events
type EventRow struct {
	Sequence       int64
	EventType      string
	IdempotencyKey string
	Caller         *string
	Vault          *string
	TrancheID      *string
	Protection     *string
	InvestAmount   int64
	PremiumPaid    int64
	Refund         int64
	Payload        []byte // JSON-encoded event payload
	EventHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
}

func NewAuditLogWriter(db *sql.DB) *AuditLogWriter {
	return &AuditLogWriter{db: db}
}

// WriteEventBatch writes a batch of events to audit.events within tx.
func (w *AuditLogWriter) WriteEventBatch(ctx context.Context, events []EventRow, tx *sql.Tx) error {
	if len(events) == 0 {
		return nil
	}

	query := `INSERT INTO audit.events
		(sequence, event_type, idempotency_key, caller, vault, tranche_id, protection,
		 invest_amount, premium_paid, refund, payload, event_hash, prev_hash, timestamp)
		VALUES `

	values := make([]string, 0, len(events))
	args := make([]interface{}, 0, len(events)*14)

	for i, e := range events {
		base := i * 14
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13, base+14,
		))
		args = append(args,
			e.Sequence, e.EventType, e.IdempotencyKey, e.Caller, e.Vault,
			e.TrancheID, e.Protection, e.InvestAmount, e.PremiumPaid,
			// Pass payload as text so pq binds it as jsonb, not bytea
			e.Refund, string(e.Payload), e.EventHash, e.PrevHash, e.Timestamp,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING" // Idempotent writes

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// LoadRecentKeys returns the most recent composite idempotency keys from the
// audit log, newest first, for warming the in-memory LRU on startup.
func (w *AuditLogWriter) LoadRecentKeys(ctx context.Context, limit int) ([]string, error) {
	rows, err := w.db.QueryContext(ctx, `
		SELECT idempotency_key
		FROM audit.events
		WHERE event_type IN ('HedgeOpened', 'HedgeOpenedNewProtection')
		ORDER BY sequence DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, "composition:"+key)
	}
	return keys, rows.Err()
}

// MaxSequence returns the highest persisted sequence, or -1 when the audit
// log is empty. The emitter resumes from MaxSequence+1.
func (w *AuditLogWriter) MaxSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := w.db.QueryRowContext(ctx, `SELECT MAX(sequence) FROM audit.events`).Scan(&seq)
	if err != nil {
		return -1, fmt.Errorf("max sequence: %w", err)
	}
	if !seq.Valid {
		return -1, nil
	}
	return seq.Int64, nil
}
