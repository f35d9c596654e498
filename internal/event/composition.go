package event

import (
	"github.com/google/uuid"

	"HedgeRouter/internal/hedge"
)

// HedgeOpened is emitted when a composition bought from an already-deployed
// protection contract.
type HedgeOpened struct {
	RequestID    uuid.UUID        `json:"request_id"`
	Caller       hedge.AccountID  `json:"caller"`
	Vault        hedge.Ref        `json:"vault"`
	TrancheID    string           `json:"tranche_id"`
	InvestAmount int64            `json:"invest_amount"`
	Protection   hedge.Ref        `json:"protection"`
	PremiumPaid  int64            `json:"premium_paid"`
	Refund       int64            `json:"refund"`
}

func (e *HedgeOpened) IdempotencyKey() string {
	return e.RequestID.String()
}

func (e *HedgeOpened) EventType() EventType {
	return EventTypeHedgeOpened
}

// HedgeOpenedNewProtection is emitted when the composition created the
// protection contract it bought from. The distinct shape lets downstream
// consumers track factory deployments without decoding payloads.
type HedgeOpenedNewProtection struct {
	RequestID    uuid.UUID             `json:"request_id"`
	Caller       hedge.AccountID       `json:"caller"`
	Vault        hedge.Ref             `json:"vault"`
	TrancheID    string                `json:"tranche_id"`
	InvestAmount int64                 `json:"invest_amount"`
	Protection   hedge.Ref             `json:"protection"`
	Terms        hedge.ProtectionTerms `json:"terms"`
	PremiumPaid  int64                 `json:"premium_paid"`
	Refund       int64                 `json:"refund"`
}

func (e *HedgeOpenedNewProtection) IdempotencyKey() string {
	return e.RequestID.String()
}

func (e *HedgeOpenedNewProtection) EventType() EventType {
	return EventTypeHedgeOpenedNewProtection
}
