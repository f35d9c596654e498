package hedge_test

import (
	"math"
	"testing"

	"HedgeRouter/internal/hedge"
)

// ============================================================================
// Test: basis-point premium math
// ============================================================================

func TestAnnualPremium(t *testing.T) {
	tests := []struct {
		name     string
		notional int64
		rateBps  int64
		want     int64
	}{
		{"one percent of a million", 1_000_000, 100, 10_000},
		{"250bps", 1_000_000, 250, 25_000},
		{"truncates toward zero", 999, 100, 9},
		{"zero rate", 1_000_000, 0, 0},
		{"zero notional", 0, 250, 0},
		{"full scale", 1_000_000, hedge.BpsScale, 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hedge.AnnualPremium(tt.notional, tt.rateBps)
			if got != tt.want {
				t.Errorf("AnnualPremium(%d, %d) = %d, want %d", tt.notional, tt.rateBps, got, tt.want)
			}
		})
	}
}

func TestAnnualPremium_LargeNotionalDoesNotOverflow(t *testing.T) {
	// notional × rateBps overflows int64; the result must not.
	notional := int64(math.MaxInt64 / 100)
	got := hedge.AnnualPremium(notional, hedge.BpsScale)
	if got != notional {
		t.Errorf("got %d, want %d", got, notional)
	}
}

func TestProratedPremium(t *testing.T) {
	tests := []struct {
		name      string
		notional  int64
		rateBps   int64
		tenorDays int32
		want      int64
	}{
		{"full year equals annual", 1_000_000, 250, 365, 25_000},
		{"one fifth of a year", 1_000_000, 250, 73, 5_000},
		{"single day", 1_000_000, 365, 1, 100},
		{"zero tenor", 1_000_000, 250, 0, 0},
		{"truncates toward zero", 1_000, 250, 30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hedge.ProratedPremium(tt.notional, tt.rateBps, tt.tenorDays)
			if got != tt.want {
				t.Errorf("ProratedPremium(%d, %d, %d) = %d, want %d",
					tt.notional, tt.rateBps, tt.tenorDays, got, tt.want)
			}
		})
	}
}

func TestProratedPremium_LargeNotionalDoesNotOverflow(t *testing.T) {
	notional := int64(math.MaxInt64 / 2)
	// rate and tenor chosen so the exact result is notional/2.
	got := hedge.ProratedPremium(notional, hedge.BpsScale/2, 365)
	if got != notional/2 {
		t.Errorf("got %d, want %d", got, notional/2)
	}
}
