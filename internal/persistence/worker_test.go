package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"HedgeRouter/internal/persistence"
	"HedgeRouter/internal/testutil"
)

// ============================================================================
// Test: audit worker (integration)
// ============================================================================

func TestAuditWorker_FlushesOnChannelClose(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	input := make(chan persistence.RouterOutput, 8)
	worker := persistence.NewAuditWorker(db, input, 50, 10*time.Millisecond, nil)

	for i := 0; i < 3; i++ {
		input <- persistence.RouterOutput{EventRow: compositionRow(int64(i), uuid.New().String())}
	}
	close(input)

	if err := worker.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	seq, err := worker.GetWriter().MaxSequence(context.Background())
	if err != nil {
		t.Fatalf("max sequence: %v", err)
	}
	if seq != 2 {
		t.Errorf("max sequence after flush: got %d, want 2", seq)
	}
}

func TestAuditWorker_FlushesOnBatchSize(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	input := make(chan persistence.RouterOutput, 8)
	worker := persistence.NewAuditWorker(db, input, 2, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Two events fill the batch; the flush must not wait for the timer.
	input <- persistence.RouterOutput{EventRow: compositionRow(0, uuid.New().String())}
	input <- persistence.RouterOutput{EventRow: compositionRow(1, uuid.New().String())}

	writer := persistence.NewAuditLogWriter(db)
	deadline := time.After(5 * time.Second)
	for {
		seq, err := writer.MaxSequence(context.Background())
		if err != nil {
			t.Fatalf("max sequence: %v", err)
		}
		if seq == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("batch not flushed, max sequence %d", seq)
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestMarshalPayload(t *testing.T) {
	got := persistence.MarshalPayload(map[string]int64{"invest_amount": 1000})
	if string(got) != `{"invest_amount":1000}` {
		t.Errorf("got %s", got)
	}

	// Unmarshalable values degrade to an empty object, never nil.
	got = persistence.MarshalPayload(make(chan int))
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
