package query

import "time"

// CompositionRecord represents a completed composition read from the audit log.
type CompositionRecord struct {
	Sequence       int64     `json:"sequence"`
	EventType      string    `json:"event_type"`
	IdempotencyKey string    `json:"idempotency_key"`
	Caller         string    `json:"caller"`
	Vault          string    `json:"vault"`
	TrancheID      string    `json:"tranche_id"`
	Protection     string    `json:"protection"`
	InvestAmount   int64     `json:"invest_amount"`
	PremiumPaid    int64     `json:"premium_paid"`
	Refund         int64     `json:"refund"`
	Payload        []byte    `json:"payload"`
	Timestamp      time.Time `json:"timestamp"`
	AsOfSequence   int64     `json:"as_of_sequence"`
}

// AuditEventRecord is a raw audit log entry, including admin events.
type AuditEventRecord struct {
	Sequence       int64     `json:"sequence"`
	EventType      string    `json:"event_type"`
	IdempotencyKey string    `json:"idempotency_key"`
	Payload        []byte    `json:"payload"`
	EventHash      []byte    `json:"event_hash"`
	PrevHash       []byte    `json:"prev_hash"`
	Timestamp      time.Time `json:"timestamp"`
}

// IntegrityReport is the result of an audit chain verification check.
type IntegrityReport struct {
	IsHealthy       bool    `json:"is_healthy"`
	MaxSequence     int64   `json:"max_sequence"`
	SequenceGaps    []int64 `json:"sequence_gaps,omitempty"`
	HashChainBreaks []int64 `json:"hash_chain_breaks,omitempty"`
}
