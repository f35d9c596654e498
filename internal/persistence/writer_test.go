package persistence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"HedgeRouter/internal/persistence"
	"HedgeRouter/internal/testutil"
)

func strPtr(s string) *string { return &s }

func compositionRow(seq int64, requestID string) persistence.EventRow {
	return persistence.EventRow{
		Sequence:       seq,
		EventType:      "HedgeOpened",
		IdempotencyKey: requestID,
		Caller:         strPtr(uuid.New().String()),
		Vault:          strPtr("vault:senior-pool"),
		TrancheID:      strPtr("senior"),
		Protection:     strPtr("protection:cds-1"),
		InvestAmount:   1_000_000,
		PremiumPaid:    25_000,
		Refund:         0,
		Payload:        []byte(`{"invest_amount":1000000}`),
		EventHash:      []byte{0x01, byte(seq)},
		PrevHash:       []byte{0x01, byte(seq - 1)},
		Timestamp:      time.Now().UTC(),
	}
}

func writeRows(t *testing.T, db *sql.DB, w *persistence.AuditLogWriter, rows []persistence.EventRow) {
	t.Helper()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := w.WriteEventBatch(context.Background(), rows, tx); err != nil {
		tx.Rollback()
		t.Fatalf("write batch: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

// ============================================================================
// Test: audit log writer (integration)
// ============================================================================

func TestWriteEventBatch_RoundTrip(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	w := persistence.NewAuditLogWriter(db)
	requestID := uuid.New().String()
	writeRows(t, db, w, []persistence.EventRow{compositionRow(0, requestID)})

	var gotType, gotKey string
	var gotInvest int64
	err := db.QueryRow(`
		SELECT event_type, idempotency_key, invest_amount
		FROM audit.events WHERE sequence = 0
	`).Scan(&gotType, &gotKey, &gotInvest)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if gotType != "HedgeOpened" {
		t.Errorf("event_type: got %q, want %q", gotType, "HedgeOpened")
	}
	if gotKey != requestID {
		t.Errorf("idempotency_key: got %q, want %q", gotKey, requestID)
	}
	if gotInvest != 1_000_000 {
		t.Errorf("invest_amount: got %d, want 1000000", gotInvest)
	}
}

func TestWriteEventBatch_ReplayIsIdempotent(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	w := persistence.NewAuditLogWriter(db)
	row := compositionRow(0, uuid.New().String())

	writeRows(t, db, w, []persistence.EventRow{row})
	// A crashed worker re-delivers the batch; the duplicate must be a no-op.
	writeRows(t, db, w, []persistence.EventRow{row})

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM audit.events`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows after replay: got %d, want 1", count)
	}
}

func TestWriteEventBatch_NullableColumnsForAdminEvents(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	w := persistence.NewAuditLogWriter(db)
	row := persistence.EventRow{
		Sequence:       0,
		EventType:      "RouterPaused",
		IdempotencyKey: "pause:2026-08-26T00:00:00Z",
		Payload:        []byte(`{"authority":"a"}`),
		EventHash:      []byte{0x01},
		PrevHash:       []byte{0x00},
		Timestamp:      time.Now().UTC(),
	}
	writeRows(t, db, w, []persistence.EventRow{row})

	var caller sql.NullString
	if err := db.QueryRow(`SELECT caller FROM audit.events WHERE sequence = 0`).Scan(&caller); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if caller.Valid {
		t.Errorf("caller on admin event: got %q, want NULL", caller.String)
	}
}

func TestMaxSequence(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	w := persistence.NewAuditLogWriter(db)

	seq, err := w.MaxSequence(context.Background())
	if err != nil {
		t.Fatalf("max sequence on empty log: %v", err)
	}
	if seq != -1 {
		t.Errorf("empty log: got %d, want -1", seq)
	}

	writeRows(t, db, w, []persistence.EventRow{
		compositionRow(0, uuid.New().String()),
		compositionRow(1, uuid.New().String()),
		compositionRow(2, uuid.New().String()),
	})

	seq, err = w.MaxSequence(context.Background())
	if err != nil {
		t.Fatalf("max sequence: %v", err)
	}
	if seq != 2 {
		t.Errorf("got %d, want 2", seq)
	}
}

func TestLoadRecentKeys(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	w := persistence.NewAuditLogWriter(db)

	first := uuid.New().String()
	second := uuid.New().String()
	writeRows(t, db, w, []persistence.EventRow{
		compositionRow(0, first),
		compositionRow(1, second),
	})

	// Admin events never contribute idempotency keys for warming.
	writeRows(t, db, w, []persistence.EventRow{{
		Sequence:       2,
		EventType:      "RouterPaused",
		IdempotencyKey: "pause:2026-08-26T00:00:00Z",
		Payload:        []byte(`{}`),
		EventHash:      []byte{0x01},
		PrevHash:       []byte{0x00},
		Timestamp:      time.Now().UTC(),
	}})

	keys, err := w.LoadRecentKeys(context.Background(), 10)
	if err != nil {
		t.Fatalf("load recent keys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("keys: got %d, want 2", len(keys))
	}
	// Newest first, namespaced for the LRU.
	if keys[0] != "composition:"+second {
		t.Errorf("keys[0]: got %q, want %q", keys[0], "composition:"+second)
	}
	if keys[1] != "composition:"+first {
		t.Errorf("keys[1]: got %q, want %q", keys[1], "composition:"+first)
	}
}
