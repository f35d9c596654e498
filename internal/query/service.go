package query

import (
	"context"
	"database/sql"
	"fmt"
)

// QueryService provides read-only access to the audit log. Queries are
// served via gRPC and HTTP/JSON (gRPC-Gateway) and read straight from
// PostgreSQL. All responses include as_of_sequence for freshness semantics.
type QueryService struct {
	db *sql.DB
}

func NewQueryService(db *sql.DB) *QueryService {
	return &QueryService{db: db}
}

const compositionColumns = `
	sequence, event_type, idempotency_key,
	COALESCE(caller, ''), COALESCE(vault, ''), COALESCE(tranche_id, ''),
	COALESCE(protection, ''), invest_amount, premium_paid, refund,
	payload, timestamp
`

// GetComposition looks up a completed composition by its request ID. Returns
// sql.ErrNoRows when no composition with that request ID was ever recorded.
func (qs *QueryService) GetComposition(
	ctx context.Context,
	requestID string,
) (*CompositionRecord, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	row := qs.db.QueryRowContext(ctx, `
		SELECT `+compositionColumns+`
		FROM audit.events
		WHERE idempotency_key = $1
		  AND event_type IN ('HedgeOpened', 'HedgeOpenedNewProtection')
	`, requestID)

	rec, err := scanComposition(row)
	if err != nil {
		return nil, err
	}
	rec.AsOfSequence = asOfSeq
	return rec, nil
}

// ListCompositions returns compositions initiated by a caller, newest first,
// with cursor-based pagination on sequence.
func (qs *QueryService) ListCompositions(
	ctx context.Context,
	caller string,
	limit int,
	beforeSequence *int64,
) ([]CompositionRecord, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	query := `
		SELECT ` + compositionColumns + `
		FROM audit.events
		WHERE caller = $1
		  AND event_type IN ('HedgeOpened', 'HedgeOpenedNewProtection')
	`
	args := []interface{}{caller}
	argIdx := 2

	if beforeSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *beforeSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CompositionRecord
	for rows.Next() {
		rec, err := scanComposition(rows)
		if err != nil {
			return nil, err
		}
		rec.AsOfSequence = asOfSeq
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// GetAuditEvents returns raw audit log entries in sequence order, including
// pause/unpause admin events, with cursor-based pagination.
func (qs *QueryService) GetAuditEvents(
	ctx context.Context,
	limit int,
	afterSequence int64,
) ([]AuditEventRecord, error) {
	rows, err := qs.db.QueryContext(ctx, `
		SELECT sequence, event_type, idempotency_key, payload,
		       event_hash, prev_hash, timestamp
		FROM audit.events
		WHERE sequence > $1
		ORDER BY sequence ASC
		LIMIT $2
	`, afterSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []AuditEventRecord
	for rows.Next() {
		var e AuditEventRecord
		if err := rows.Scan(
			&e.Sequence, &e.EventType, &e.IdempotencyKey, &e.Payload,
			&e.EventHash, &e.PrevHash, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity and sequence density of the
// audit log. Any break means the log was tampered with or corrupted.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	maxSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}
	report.MaxSequence = maxSeq

	// Chain continuity: each event's prev_hash must equal the hash of the
	// event one sequence earlier.
	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM audit.events e1
		JOIN audit.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.prev_hash != e2.event_hash
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Sequence density: every sequence above the minimum must have a
	// predecessor.
	gapRows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM audit.events e1
		LEFT JOIN audit.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e2.sequence IS NULL
		  AND e1.sequence > (SELECT MIN(sequence) FROM audit.events)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer gapRows.Close()

	for gapRows.Next() {
		var seq int64
		if err := gapRows.Scan(&seq); err != nil {
			return nil, err
		}
		report.SequenceGaps = append(report.SequenceGaps, seq)
	}
	if err := gapRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.SequenceGaps) == 0
	return report, nil
}

// --- helpers ---

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComposition(row rowScanner) (*CompositionRecord, error) {
	var rec CompositionRecord
	if err := row.Scan(
		&rec.Sequence, &rec.EventType, &rec.IdempotencyKey,
		&rec.Caller, &rec.Vault, &rec.TrancheID,
		&rec.Protection, &rec.InvestAmount, &rec.PremiumPaid, &rec.Refund,
		&rec.Payload, &rec.Timestamp,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := qs.db.QueryRowContext(ctx, `SELECT MAX(sequence) FROM audit.events`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return seq.Int64, nil
}
