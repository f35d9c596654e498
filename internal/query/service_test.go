package query_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"HedgeRouter/internal/persistence"
	"HedgeRouter/internal/query"
	"HedgeRouter/internal/testutil"
)

func strPtr(s string) *string { return &s }

// chainedRows builds n composition rows with a consistent hash chain for a
// single caller, sequences 0..n-1.
func chainedRows(caller string, n int) []persistence.EventRow {
	rows := make([]persistence.EventRow, 0, n)
	prev := []byte("genesis")
	for i := 0; i < n; i++ {
		hash := []byte{0xAB, byte(i)}
		rows = append(rows, persistence.EventRow{
			Sequence:       int64(i),
			EventType:      "HedgeOpened",
			IdempotencyKey: uuid.New().String(),
			Caller:         strPtr(caller),
			Vault:          strPtr("vault:senior-pool"),
			TrancheID:      strPtr("senior"),
			Protection:     strPtr("protection:cds-1"),
			InvestAmount:   1_000_000,
			PremiumPaid:    25_000,
			Refund:         100,
			Payload:        []byte(`{"invest_amount":1000000}`),
			EventHash:      hash,
			PrevHash:       prev,
			Timestamp:      time.Now().UTC(),
		})
		prev = hash
	}
	return rows
}

func seed(t *testing.T, db *sql.DB, rows []persistence.EventRow) {
	t.Helper()
	w := persistence.NewAuditLogWriter(db)
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := w.WriteEventBatch(context.Background(), rows, tx); err != nil {
		tx.Rollback()
		t.Fatalf("seed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

// ============================================================================
// Test: audit log queries (integration)
// ============================================================================

func TestGetComposition(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	rows := chainedRows(uuid.New().String(), 3)
	seed(t, db, rows)

	qs := query.NewQueryService(db)
	rec, err := qs.GetComposition(context.Background(), rows[1].IdempotencyKey)
	if err != nil {
		t.Fatalf("get composition: %v", err)
	}

	if rec.Sequence != 1 {
		t.Errorf("sequence: got %d, want 1", rec.Sequence)
	}
	if rec.InvestAmount != 1_000_000 {
		t.Errorf("invest_amount: got %d, want 1000000", rec.InvestAmount)
	}
	if rec.Vault != "vault:senior-pool" {
		t.Errorf("vault: got %q, want %q", rec.Vault, "vault:senior-pool")
	}
	if rec.AsOfSequence != 2 {
		t.Errorf("as_of_sequence: got %d, want 2", rec.AsOfSequence)
	}
}

func TestGetComposition_NotFound(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	qs := query.NewQueryService(db)
	_, err := qs.GetComposition(context.Background(), uuid.New().String())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("got %v, want sql.ErrNoRows", err)
	}
}

func TestListCompositions_CursorPagination(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	caller := uuid.New().String()
	seed(t, db, chainedRows(caller, 5))

	qs := query.NewQueryService(db)

	page, err := qs.ListCompositions(context.Background(), caller, 2, nil)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("first page size: got %d, want 2", len(page))
	}
	if page[0].Sequence != 4 || page[1].Sequence != 3 {
		t.Errorf("first page sequences: got %d,%d, want 4,3", page[0].Sequence, page[1].Sequence)
	}

	cursor := page[1].Sequence
	page, err = qs.ListCompositions(context.Background(), caller, 2, &cursor)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("second page size: got %d, want 2", len(page))
	}
	if page[0].Sequence != 2 || page[1].Sequence != 1 {
		t.Errorf("second page sequences: got %d,%d, want 2,1", page[0].Sequence, page[1].Sequence)
	}
}

func TestListCompositions_FiltersByCaller(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	caller := uuid.New().String()
	rows := chainedRows(caller, 2)
	other := uuid.New().String()
	rows[1].Caller = &other
	seed(t, db, rows)

	qs := query.NewQueryService(db)
	page, err := qs.ListCompositions(context.Background(), caller, 10, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("got %d records, want 1", len(page))
	}
	if page[0].Caller != caller {
		t.Errorf("caller: got %q, want %q", page[0].Caller, caller)
	}
}

func TestGetAuditEvents_AscendingAfterCursor(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	seed(t, db, chainedRows(uuid.New().String(), 4))

	qs := query.NewQueryService(db)
	events, err := qs.GetAuditEvents(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("get audit events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence != 2 || events[1].Sequence != 3 {
		t.Errorf("sequences: got %d,%d, want 2,3", events[0].Sequence, events[1].Sequence)
	}
}

// ============================================================================
// Test: integrity verification (integration)
// ============================================================================

func TestVerifyIntegrity_HealthyLog(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	seed(t, db, chainedRows(uuid.New().String(), 4))

	qs := query.NewQueryService(db)
	report, err := qs.VerifyIntegrity(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !report.IsHealthy {
		t.Errorf("healthy log reported unhealthy: breaks=%v gaps=%v",
			report.HashChainBreaks, report.SequenceGaps)
	}
	if report.MaxSequence != 3 {
		t.Errorf("max sequence: got %d, want 3", report.MaxSequence)
	}
}

func TestVerifyIntegrity_DetectsChainBreak(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	rows := chainedRows(uuid.New().String(), 4)
	rows[2].PrevHash = []byte("forged")
	seed(t, db, rows)

	qs := query.NewQueryService(db)
	report, err := qs.VerifyIntegrity(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.IsHealthy {
		t.Fatal("tampered log reported healthy")
	}
	if len(report.HashChainBreaks) != 1 || report.HashChainBreaks[0] != 2 {
		t.Errorf("chain breaks: got %v, want [2]", report.HashChainBreaks)
	}
}

func TestVerifyIntegrity_DetectsSequenceGap(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	rows := chainedRows(uuid.New().String(), 4)
	// Drop sequence 2: downstream event 3 loses its predecessor.
	seed(t, db, append(rows[:2:2], rows[3]))

	qs := query.NewQueryService(db)
	report, err := qs.VerifyIntegrity(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.IsHealthy {
		t.Fatal("gapped log reported healthy")
	}
	if len(report.SequenceGaps) != 1 || report.SequenceGaps[0] != 3 {
		t.Errorf("gaps: got %v, want [3]", report.SequenceGaps)
	}
}
