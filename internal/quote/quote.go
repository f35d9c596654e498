// Package quote provides the advisory hedge-cost estimate. It is read-only:
// it never touches the guard, the token ledger, or any mutating collaborator
// operation.
package quote

import (
	"context"

	"HedgeRouter/internal/collab"
	"HedgeRouter/internal/hedge"
)

// Result is an advisory estimate. Execution always re-validates live
// protection status and honors the caller's premium cap, so a stale quote
// can only cause a rejection, never an overpayment.
type Result struct {
	SpreadBps        int64
	EstimatedPremium int64
	// AnnualRunningCost is the carry at the quoted spread over a full year,
	// computed locally with the reference day-count formula. It lets callers
	// compare quotes across tenors without re-deriving the rate.
	AnnualRunningCost int64
}

// Calculator combines the spread source and the premium model. The premium
// formula itself is owned by the collaborator; the calculator only forwards
// notional, spread, and tenor.
type Calculator struct {
	spreads  collab.SpreadSource
	premiums collab.PremiumModel
}

func NewCalculator(spreads collab.SpreadSource, premiums collab.PremiumModel) *Calculator {
	return &Calculator{spreads: spreads, premiums: premiums}
}

// Quote estimates the cost of protecting investAmount in the given vault
// over tenorDays.
func (c *Calculator) Quote(ctx context.Context, vault hedge.Ref, investAmount int64, tenorDays int32) (Result, error) {
	if vault.IsZero() {
		return Result{}, hedge.Validationf("vault reference is required")
	}
	if investAmount <= 0 {
		return Result{}, hedge.Validationf("invest_amount must be positive, got %d", investAmount)
	}
	if tenorDays <= 0 {
		return Result{}, hedge.Validationf("tenor must be positive, got %d days", tenorDays)
	}

	spreadBps, err := c.spreads.IndicativeSpread(ctx, vault, investAmount, tenorDays)
	if err != nil {
		return Result{}, err
	}

	premium, err := c.premiums.TotalPremium(ctx, investAmount, spreadBps, tenorDays)
	if err != nil {
		return Result{}, err
	}

	return Result{
		SpreadBps:         spreadBps,
		EstimatedPremium:  premium,
		AnnualRunningCost: hedge.AnnualPremium(investAmount, spreadBps),
	}, nil
}
