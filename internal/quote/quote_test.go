package quote_test

import (
	"context"
	"errors"
	"testing"

	"HedgeRouter/internal/hedge"
	"HedgeRouter/internal/quote"
	"HedgeRouter/internal/testutil"
)

// ============================================================================
// Test: advisory quotes
// ============================================================================

func TestQuote_FlatSpread(t *testing.T) {
	pricing := testutil.FlatPricing{Bps: 250}
	calc := quote.NewCalculator(pricing, pricing)

	result, err := calc.Quote(context.Background(), "vault:senior-pool", 1_000_000, 365)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if result.SpreadBps != 250 {
		t.Errorf("spread: got %d, want 250", result.SpreadBps)
	}
	if result.EstimatedPremium != 25_000 {
		t.Errorf("premium: got %d, want 25000", result.EstimatedPremium)
	}
	if result.AnnualRunningCost != 25_000 {
		t.Errorf("annual running cost: got %d, want 25000", result.AnnualRunningCost)
	}
}

func TestQuote_ProratesTenor(t *testing.T) {
	pricing := testutil.FlatPricing{Bps: 250}
	calc := quote.NewCalculator(pricing, pricing)

	result, err := calc.Quote(context.Background(), "vault:senior-pool", 1_000_000, 73)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if result.EstimatedPremium != 5_000 {
		t.Errorf("premium for 73 days: got %d, want 5000", result.EstimatedPremium)
	}
	// The annualized figure is tenor-independent.
	if result.AnnualRunningCost != 25_000 {
		t.Errorf("annual running cost: got %d, want 25000", result.AnnualRunningCost)
	}
}

func TestQuote_ValidationRejected(t *testing.T) {
	pricing := testutil.FlatPricing{Bps: 250}
	calc := quote.NewCalculator(pricing, pricing)

	tests := []struct {
		name   string
		vault  hedge.Ref
		amount int64
		tenor  int32
	}{
		{"missing vault", "", 1_000_000, 365},
		{"zero amount", "vault:senior-pool", 0, 365},
		{"negative amount", "vault:senior-pool", -1, 365},
		{"zero tenor", "vault:senior-pool", 1_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Quote(context.Background(), tt.vault, tt.amount, tt.tenor)
			if !errors.Is(err, hedge.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

type failingSpread struct{ err error }

func (f failingSpread) IndicativeSpread(_ context.Context, _ hedge.Ref, _ int64, _ int32) (int64, error) {
	return 0, f.err
}

func TestQuote_SpreadSourceErrorPropagates(t *testing.T) {
	spreadErr := errors.New("pricing unavailable")
	calc := quote.NewCalculator(failingSpread{err: spreadErr}, testutil.FlatPricing{Bps: 250})

	_, err := calc.Quote(context.Background(), "vault:senior-pool", 1_000_000, 365)
	if !errors.Is(err, spreadErr) {
		t.Errorf("got %v, want the pricing error", err)
	}
}
