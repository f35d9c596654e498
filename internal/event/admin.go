package event

import (
	"time"

	"HedgeRouter/internal/hedge"
)

// RouterPaused is emitted when the pause authority engages the circuit
// breaker.
type RouterPaused struct {
	Authority hedge.AccountID `json:"authority"`
	PausedAt  time.Time       `json:"paused_at"`
}

func (e *RouterPaused) IdempotencyKey() string {
	return "pause:" + e.PausedAt.UTC().Format(time.RFC3339Nano)
}

func (e *RouterPaused) EventType() EventType {
	return EventTypeRouterPaused
}

// RouterUnpaused is emitted when the pause authority releases the circuit
// breaker.
type RouterUnpaused struct {
	Authority  hedge.AccountID `json:"authority"`
	UnpausedAt time.Time       `json:"unpaused_at"`
}

func (e *RouterUnpaused) IdempotencyKey() string {
	return "unpause:" + e.UnpausedAt.UTC().Format(time.RFC3339Nano)
}

func (e *RouterUnpaused) EventType() EventType {
	return EventTypeRouterUnpaused
}
