package admin_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"HedgeRouter/internal/admin"
	"HedgeRouter/internal/hedge"
)

// ============================================================================
// Test: pause circuit breaker
// ============================================================================

func TestGuard_StartsActive(t *testing.T) {
	g := admin.NewGuard(uuid.New())

	if g.Paused() {
		t.Error("new guard reports paused, want active")
	}
	if err := g.RequireActive(); err != nil {
		t.Errorf("RequireActive on new guard: got %v, want nil", err)
	}
}

func TestGuard_PauseAndUnpause(t *testing.T) {
	authority := uuid.New()
	g := admin.NewGuard(authority)

	if err := g.Pause(authority); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !g.Paused() {
		t.Error("guard not paused after Pause")
	}
	if err := g.RequireActive(); !errors.Is(err, hedge.ErrPaused) {
		t.Errorf("RequireActive while paused: got %v, want ErrPaused", err)
	}

	if err := g.Unpause(authority); err != nil {
		t.Fatalf("unpause: %v", err)
	}
	if g.Paused() {
		t.Error("guard still paused after Unpause")
	}
	if err := g.RequireActive(); err != nil {
		t.Errorf("RequireActive after unpause: got %v, want nil", err)
	}
}

func TestGuard_NonAuthorityRejected(t *testing.T) {
	authority := uuid.New()
	intruder := uuid.New()
	g := admin.NewGuard(authority)

	if err := g.Pause(intruder); !errors.Is(err, hedge.ErrState) {
		t.Errorf("pause by non-authority: got %v, want ErrState", err)
	}
	if g.Paused() {
		t.Error("non-authority pause changed state")
	}

	if err := g.Pause(authority); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := g.Unpause(intruder); !errors.Is(err, hedge.ErrState) {
		t.Errorf("unpause by non-authority: got %v, want ErrState", err)
	}
	if !g.Paused() {
		t.Error("non-authority unpause changed state")
	}
}

func TestGuard_RedundantTransitionsRejected(t *testing.T) {
	authority := uuid.New()
	g := admin.NewGuard(authority)

	if err := g.Unpause(authority); !errors.Is(err, hedge.ErrState) {
		t.Errorf("unpause while active: got %v, want ErrState", err)
	}

	if err := g.Pause(authority); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := g.Pause(authority); !errors.Is(err, hedge.ErrState) {
		t.Errorf("second pause: got %v, want ErrState", err)
	}
}

func TestGuard_Authority(t *testing.T) {
	authority := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	g := admin.NewGuard(authority)

	if got := g.Authority(); got != authority {
		t.Errorf("authority: got %s, want %s", got, authority)
	}
}
