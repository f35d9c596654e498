// Package admin holds the router's circuit breaker: an independent pause
// authority gating every mutating entry point.
package admin

import (
	"sync/atomic"

	"HedgeRouter/internal/hedge"
)

// Guard is the pause circuit breaker. The pause authority is fixed at
// construction and is distinct from any general governance role. The only
// legal transitions are Active→Paused and Paused→Active, and only the
// authority may drive them.
type Guard struct {
	authority hedge.AccountID
	paused    atomic.Bool
}

// NewGuard creates a guard in the Active state.
func NewGuard(authority hedge.AccountID) *Guard {
	return &Guard{authority: authority}
}

// Pause engages the circuit breaker. Fails if by is not the authority or if
// the guard is already paused.
func (g *Guard) Pause(by hedge.AccountID) error {
	if by != g.authority {
		return hedge.Statef("account %s is not the pause authority", by)
	}
	if !g.paused.CompareAndSwap(false, true) {
		return hedge.Statef("router already paused")
	}
	return nil
}

// Unpause releases the circuit breaker. Fails if by is not the authority or
// if the guard is not paused.
func (g *Guard) Unpause(by hedge.AccountID) error {
	if by != g.authority {
		return hedge.Statef("account %s is not the pause authority", by)
	}
	if !g.paused.CompareAndSwap(true, false) {
		return hedge.Statef("router not paused")
	}
	return nil
}

// RequireActive is evaluated at the moment a mutating operation is invoked,
// never cached from an earlier quote or check.
func (g *Guard) RequireActive() error {
	if g.paused.Load() {
		return hedge.ErrPaused
	}
	return nil
}

// Paused reports the current state for status queries.
func (g *Guard) Paused() bool {
	return g.paused.Load()
}

// Authority returns the fixed pause authority.
func (g *Guard) Authority() hedge.AccountID {
	return g.authority
}
