package persistence

import (
	"context"
	"database/sql"
	"time"
)

// PostgresIdempotencyChecker implements DB-based request deduplication
// against the audit log.
type PostgresIdempotencyChecker struct {
	db *sql.DB
}

func NewPostgresIdempotencyChecker(db *sql.DB) *PostgresIdempotencyChecker {
	return &PostgresIdempotencyChecker{
		db: db,
	}
}

// IsDuplicate checks whether a request already produced an audit event.
// The namespace spans both composition paths, so the completion event type
// is not part of the lookup — only the key matters.
func (pic *PostgresIdempotencyChecker) IsDuplicate(namespace string, idempotencyKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	query := `
        SELECT 1
        FROM audit.events
        WHERE idempotency_key = $1
        LIMIT 1
    `

	var exists int
	err := pic.db.QueryRowContext(ctx, query, idempotencyKey).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil // Not found - not a duplicate
	}

	if err != nil {
		return false, err // DB error
	}

	return true, nil // Found - is duplicate
}
