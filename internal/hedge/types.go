package hedge

import (
	"time"

	"github.com/google/uuid"
)

// Ref is an opaque reference to an external collaborator: a vault, a
// protection contract, or an oracle. The router never inspects a Ref beyond
// checking that it is set; resolution to a live client goes through
// collab.Directory.
type Ref string

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r == ""
}

// AccountID identifies a principal on the funding-token ledger.
type AccountID = uuid.UUID

// ProtectionStatus is the lifecycle status of a protection contract.
// The router only ever reads it; all transitions are owned by the
// protection collaborator.
type ProtectionStatus int32

const (
	StatusUnmatched ProtectionStatus = iota
	StatusActive
	StatusExpired
	StatusCreditEventTriggered
	StatusSettled
)

func (s ProtectionStatus) String() string {
	switch s {
	case StatusUnmatched:
		return "Unmatched"
	case StatusActive:
		return "Active"
	case StatusExpired:
		return "Expired"
	case StatusCreditEventTriggered:
		return "CreditEventTriggered"
	case StatusSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// ProtectionTerms are the economic terms of a protection contract.
// Amounts are funding-token base units; RateBps is annualized basis points.
type ProtectionTerms struct {
	Notional            int64
	RateBps             int64
	Maturity            time.Time
	Oracle              Ref
	PaymentIntervalDays int32
	CollateralToken     Ref
}

// ComposeExistingRequest asks the router to invest into a tranche and buy
// protection from an already-deployed protection contract, both for Caller.
// Never persisted — it exists only for the duration of one call.
type ComposeExistingRequest struct {
	// RequestID is the caller-supplied idempotency key. A resubmitted
	// RequestID is rejected before any funds move.
	RequestID uuid.UUID

	Caller       AccountID
	Vault        Ref
	TrancheID    string
	InvestAmount int64
	Protection   Ref
	MaxPremium   int64
}

// ComposeNewRequest asks the router to invest into a tranche and create a
// fresh protection contract (via the factory) to buy from, both for Caller.
type ComposeNewRequest struct {
	RequestID uuid.UUID

	Caller       AccountID
	Vault        Ref
	TrancheID    string
	InvestAmount int64
	MaxPremium   int64
	Terms        ProtectionTerms
}

// CompositionResult is returned to the caller on success.
type CompositionResult struct {
	// Protection is the contract bought from — the request's contract on
	// the existing path, the factory-created one on the new path.
	Protection Ref

	InvestAmount int64
	PremiumPaid  int64
	Refund       int64

	// Sequence is the audit-log sequence of the completion event.
	Sequence int64
}

// TotalRequired is the exact amount the caller must have pre-authorized the
// router to pull: investment plus the premium cap.
func (r ComposeExistingRequest) TotalRequired() int64 {
	return r.InvestAmount + r.MaxPremium
}

func (r ComposeNewRequest) TotalRequired() int64 {
	return r.InvestAmount + r.MaxPremium
}

// Validate rejects malformed requests before any funds move.
func (r ComposeExistingRequest) Validate() error {
	if r.RequestID == uuid.Nil {
		return Validationf("request_id is required")
	}
	if r.Caller == uuid.Nil {
		return Validationf("caller is required")
	}
	if r.Vault.IsZero() {
		return Validationf("vault reference is required")
	}
	if r.Protection.IsZero() {
		return Validationf("protection reference is required")
	}
	if r.TrancheID == "" {
		return Validationf("tranche_id is required")
	}
	if r.InvestAmount <= 0 {
		return Validationf("invest_amount must be positive, got %d", r.InvestAmount)
	}
	if r.MaxPremium < 0 {
		return Validationf("max_premium must be non-negative, got %d", r.MaxPremium)
	}
	return nil
}

func (r ComposeNewRequest) Validate() error {
	if r.RequestID == uuid.Nil {
		return Validationf("request_id is required")
	}
	if r.Caller == uuid.Nil {
		return Validationf("caller is required")
	}
	if r.Vault.IsZero() {
		return Validationf("vault reference is required")
	}
	if r.TrancheID == "" {
		return Validationf("tranche_id is required")
	}
	if r.InvestAmount <= 0 {
		return Validationf("invest_amount must be positive, got %d", r.InvestAmount)
	}
	if r.MaxPremium < 0 {
		return Validationf("max_premium must be non-negative, got %d", r.MaxPremium)
	}
	return r.Terms.Validate()
}

func (t ProtectionTerms) Validate() error {
	if t.Notional <= 0 {
		return Validationf("protection notional must be positive, got %d", t.Notional)
	}
	if t.RateBps <= 0 {
		return Validationf("protection rate must be positive, got %d bps", t.RateBps)
	}
	if t.Maturity.IsZero() {
		return Validationf("protection maturity is required")
	}
	if t.Oracle.IsZero() {
		return Validationf("oracle reference is required")
	}
	if t.PaymentIntervalDays <= 0 {
		return Validationf("payment interval must be positive, got %d days", t.PaymentIntervalDays)
	}
	return nil
}
