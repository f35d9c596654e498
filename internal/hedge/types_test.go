package hedge_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"HedgeRouter/internal/hedge"
)

func validTerms() hedge.ProtectionTerms {
	return hedge.ProtectionTerms{
		Notional:            1_000_000,
		RateBps:             250,
		Maturity:            time.Now().AddDate(1, 0, 0),
		Oracle:              "oracle:credit-events",
		PaymentIntervalDays: 30,
		CollateralToken:     "token:usdc",
	}
}

func validExistingRequest() hedge.ComposeExistingRequest {
	return hedge.ComposeExistingRequest{
		RequestID:    uuid.New(),
		Caller:       uuid.New(),
		Vault:        "vault:senior-pool",
		TrancheID:    "senior",
		InvestAmount: 1_000_000,
		Protection:   "protection:cds-1",
		MaxPremium:   25_000,
	}
}

// ============================================================================
// Test: request validation
// ============================================================================

func TestComposeExistingRequest_Validate(t *testing.T) {
	if err := validExistingRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*hedge.ComposeExistingRequest)
	}{
		{"missing request id", func(r *hedge.ComposeExistingRequest) { r.RequestID = uuid.Nil }},
		{"missing caller", func(r *hedge.ComposeExistingRequest) { r.Caller = uuid.Nil }},
		{"missing vault", func(r *hedge.ComposeExistingRequest) { r.Vault = "" }},
		{"missing protection", func(r *hedge.ComposeExistingRequest) { r.Protection = "" }},
		{"missing tranche", func(r *hedge.ComposeExistingRequest) { r.TrancheID = "" }},
		{"zero invest amount", func(r *hedge.ComposeExistingRequest) { r.InvestAmount = 0 }},
		{"negative invest amount", func(r *hedge.ComposeExistingRequest) { r.InvestAmount = -1 }},
		{"negative max premium", func(r *hedge.ComposeExistingRequest) { r.MaxPremium = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validExistingRequest()
			tt.mutate(&req)
			if err := req.Validate(); !errors.Is(err, hedge.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestComposeExistingRequest_ZeroMaxPremiumAllowed(t *testing.T) {
	req := validExistingRequest()
	req.MaxPremium = 0
	if err := req.Validate(); err != nil {
		t.Errorf("zero max premium rejected: %v", err)
	}
}

func TestComposeNewRequest_ValidatesTerms(t *testing.T) {
	req := hedge.ComposeNewRequest{
		RequestID:    uuid.New(),
		Caller:       uuid.New(),
		Vault:        "vault:senior-pool",
		TrancheID:    "senior",
		InvestAmount: 1_000_000,
		MaxPremium:   25_000,
		Terms:        validTerms(),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.Terms.RateBps = 0
	if err := req.Validate(); !errors.Is(err, hedge.ErrValidation) {
		t.Errorf("zero rate: got %v, want ErrValidation", err)
	}
}

func TestProtectionTerms_Validate(t *testing.T) {
	if err := validTerms().Validate(); err != nil {
		t.Fatalf("valid terms rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*hedge.ProtectionTerms)
	}{
		{"zero notional", func(tm *hedge.ProtectionTerms) { tm.Notional = 0 }},
		{"zero rate", func(tm *hedge.ProtectionTerms) { tm.RateBps = 0 }},
		{"zero maturity", func(tm *hedge.ProtectionTerms) { tm.Maturity = time.Time{} }},
		{"missing oracle", func(tm *hedge.ProtectionTerms) { tm.Oracle = "" }},
		{"zero payment interval", func(tm *hedge.ProtectionTerms) { tm.PaymentIntervalDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := validTerms()
			tt.mutate(&terms)
			if err := terms.Validate(); !errors.Is(err, hedge.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestTotalRequired(t *testing.T) {
	req := validExistingRequest()
	if got := req.TotalRequired(); got != 1_025_000 {
		t.Errorf("got %d, want 1025000", got)
	}
}

// ============================================================================
// Test: protection status labels
// ============================================================================

func TestProtectionStatus_String(t *testing.T) {
	tests := []struct {
		status hedge.ProtectionStatus
		want   string
	}{
		{hedge.StatusUnmatched, "Unmatched"},
		{hedge.StatusActive, "Active"},
		{hedge.StatusExpired, "Expired"},
		{hedge.StatusCreditEventTriggered, "CreditEventTriggered"},
		{hedge.StatusSettled, "Settled"},
		{hedge.ProtectionStatus(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("status %d: got %q, want %q", tt.status, got, tt.want)
		}
	}
}

// ============================================================================
// Test: error taxonomy labels
// ============================================================================

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{hedge.Validationf("bad"), "validation"},
		{hedge.Statef("bad"), "state"},
		{hedge.Transferf("pull", errors.New("boom")), "transfer"},
		{hedge.ErrReentrancy, "reentrancy"},
		{hedge.ErrPaused, "paused"},
		{hedge.ErrDuplicateRequest, "duplicate"},
		{errors.New("anything else"), "internal"},
	}

	for _, tt := range tests {
		if got := hedge.Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v): got %q, want %q", tt.err, got, tt.want)
		}
	}
}
