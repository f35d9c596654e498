package router_test

import (
	"errors"
	"fmt"
	"testing"

	"HedgeRouter/internal/router"
)

// fakeDBChecker is a scriptable tier-2 lookup.
type fakeDBChecker struct {
	duplicates map[string]bool
	err        error
	lookups    int
}

func (f *fakeDBChecker) IsDuplicate(namespace, key string) (bool, error) {
	f.lookups++
	if f.err != nil {
		return false, f.err
	}
	return f.duplicates[namespace+":"+key], nil
}

// ============================================================================
// Test: two-tier idempotency
// ============================================================================

func TestIdempotency_FreshKeyNotDuplicate(t *testing.T) {
	ic := router.NewIdempotencyChecker(16, nil)

	if ic.IsDuplicate("composition", "req-1") {
		t.Error("fresh key reported as duplicate")
	}
}

func TestIdempotency_MarkProcessedDetected(t *testing.T) {
	ic := router.NewIdempotencyChecker(16, nil)

	ic.MarkProcessed("composition", "req-1")
	if !ic.IsDuplicate("composition", "req-1") {
		t.Error("processed key not detected")
	}
}

func TestIdempotency_NamespacesIsolated(t *testing.T) {
	ic := router.NewIdempotencyChecker(16, nil)

	ic.MarkProcessed("composition", "req-1")
	if ic.IsDuplicate("other", "req-1") {
		t.Error("key marked in one namespace detected in another")
	}
}

func TestIdempotency_FallsBackToDB(t *testing.T) {
	db := &fakeDBChecker{duplicates: map[string]bool{"composition:req-1": true}}
	ic := router.NewIdempotencyChecker(16, db)

	if !ic.IsDuplicate("composition", "req-1") {
		t.Fatal("DB-known key not detected")
	}
	if db.lookups != 1 {
		t.Errorf("DB lookups: got %d, want 1", db.lookups)
	}

	// The hit is cached: a second check must not touch the DB.
	if !ic.IsDuplicate("composition", "req-1") {
		t.Fatal("cached key not detected")
	}
	if db.lookups != 1 {
		t.Errorf("DB lookups after cached hit: got %d, want 1", db.lookups)
	}
}

func TestIdempotency_DBErrorAssumesNotDuplicate(t *testing.T) {
	db := &fakeDBChecker{err: errors.New("connection refused")}
	ic := router.NewIdempotencyChecker(16, db)

	// A dedup-store outage must not block compositions; the audit log's
	// unique index is the backstop.
	if ic.IsDuplicate("composition", "req-1") {
		t.Error("DB error treated as duplicate")
	}
}

func TestIdempotency_WarmLRUSkipsDB(t *testing.T) {
	db := &fakeDBChecker{}
	ic := router.NewIdempotencyChecker(16, db)

	ic.WarmLRU([]string{"composition:req-1", "composition:req-2"})

	if !ic.IsDuplicate("composition", "req-1") {
		t.Error("warmed key not detected")
	}
	if db.lookups != 0 {
		t.Errorf("DB lookups for warmed key: got %d, want 0", db.lookups)
	}
}

// ============================================================================
// Test: LRU eviction
// ============================================================================

func TestIdempotencyChecker_ReportsHotTierStats(t *testing.T) {
	checker := router.NewIdempotencyChecker(2, nil)

	checker.MarkProcessed("composition", "req-1")
	checker.MarkProcessed("composition", "req-2")
	checker.MarkProcessed("composition", "req-3")

	if checker.Size() != 2 {
		t.Errorf("size: got %d, want 2", checker.Size())
	}
	if checker.Evictions() != 1 {
		t.Errorf("evictions: got %d, want 1", checker.Evictions())
	}
}

func TestIdempotencyLRU_EvictsOldest(t *testing.T) {
	lru := router.NewIdempotencyLRU(3)

	for i := 0; i < 4; i++ {
		lru.Add(fmt.Sprintf("key-%d", i))
	}

	if lru.Size() != 3 {
		t.Errorf("size: got %d, want 3", lru.Size())
	}
	if lru.Contains("key-0") {
		t.Error("oldest key survived eviction")
	}
	if !lru.Contains("key-1") || !lru.Contains("key-3") {
		t.Error("recent keys evicted")
	}
	if lru.Evictions() != 1 {
		t.Errorf("evictions: got %d, want 1", lru.Evictions())
	}
}

func TestIdempotencyLRU_ContainsPromotes(t *testing.T) {
	lru := router.NewIdempotencyLRU(3)

	lru.Add("key-0")
	lru.Add("key-1")
	lru.Add("key-2")

	// Touch key-0 so key-1 becomes the eviction candidate.
	if !lru.Contains("key-0") {
		t.Fatal("key-0 missing before promotion")
	}
	lru.Add("key-3")

	if !lru.Contains("key-0") {
		t.Error("promoted key evicted")
	}
	if lru.Contains("key-1") {
		t.Error("least recently used key survived")
	}
}

func TestIdempotencyLRU_AddIsIdempotent(t *testing.T) {
	lru := router.NewIdempotencyLRU(3)

	lru.Add("key-0")
	lru.Add("key-0")
	if lru.Size() != 1 {
		t.Errorf("size after double add: got %d, want 1", lru.Size())
	}
}

func TestIdempotencyLRU_WarmRespectsCapacity(t *testing.T) {
	lru := router.NewIdempotencyLRU(2)

	lru.WarmFromKeys([]string{"a", "b", "c", "b"})
	if lru.Size() != 2 {
		t.Errorf("size after warm: got %d, want 2", lru.Size())
	}
}
