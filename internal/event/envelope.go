package event

import (
	"time"
)

// EventType discriminator for event payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypeHedgeOpened
	EventTypeHedgeOpenedNewProtection
	EventTypeRouterPaused
	EventTypeRouterUnpaused
)

// EventEnvelope wraps every event in the audit log
type EventEnvelope struct {
	// Global monotonic sequence assigned by the router
	Sequence int64

	// Stable idempotency key (the caller's request ID for compositions)
	IdempotencyKey string

	// Event type discriminator
	EventType EventType

	// Completion time of the operation that produced the event
	Timestamp time.Time

	// JSON-encoded event-specific data
	Payload []byte

	// SHA-256 over (prev_hash || sequence || payload) — audit chain
	EventHash [32]byte

	// Previous event's hash (chain integrity)
	PrevHash [32]byte
}

// Event is the interface all event payloads must implement
type Event interface {
	// IdempotencyKey returns the stable dedup key
	IdempotencyKey() string

	// EventType returns the discriminator
	EventType() EventType
}

func (et EventType) String() string {
	switch et {
	case EventTypeHedgeOpened:
		return "HedgeOpened"
	case EventTypeHedgeOpenedNewProtection:
		return "HedgeOpenedNewProtection"
	case EventTypeRouterPaused:
		return "RouterPaused"
	case EventTypeRouterUnpaused:
		return "RouterUnpaused"
	default:
		return "Unknown"
	}
}
