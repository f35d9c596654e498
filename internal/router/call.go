package router

import (
	"context"
	"fmt"

	"HedgeRouter/internal/collab"
	"HedgeRouter/internal/hedge"
)

// call tracks the transient custody of a single composition. Consumed
// amounts are always derived from re-read balances, never from requested
// amounts.
type call struct {
	r      *Router
	unwind *unwindLog

	preBalance  int64 // router balance before any funds moved
	pulled      int64 // actually received from the caller's pull
	invested    int64 // actually consumed by the vault
	premiumPaid int64 // actually consumed by the protection contract
}

func (r *Router) newCall(ctx context.Context) (*call, error) {
	pre, err := r.token.BalanceOf(ctx, r.self)
	if err != nil {
		return nil, hedge.Transferf("read pre-call balance", err)
	}
	return &call{r: r, unwind: newUnwindLog(r.log), preBalance: pre}, nil
}

// abort replays the compensation log and returns cause as the call's single
// terminal error. Compensator failures are logged and counted but never
// mask the original cause.
func (c *call) abort(ctx context.Context, cause error) error {
	if c.r.metrics != nil && c.unwind.size() > 0 {
		c.r.metrics.UnwindReplays.Inc()
		c.r.metrics.UnwindSteps.Add(float64(c.unwind.size()))
	}
	if err := c.unwind.rollback(ctx); err != nil {
		if c.r.metrics != nil {
			c.r.metrics.UnwindFailures.Inc()
		}
		c.r.log.Error().Err(err).Msg("rollback incomplete, custody may be stranded")
	}
	return cause
}

// pull moves the caller's pre-authorized total into router custody.
func (c *call) pull(ctx context.Context, caller hedge.AccountID, total int64) error {
	if err := c.r.token.Pull(ctx, caller, total); err != nil {
		return c.abort(ctx, hedge.Transferf(fmt.Sprintf("pull %d from caller", total), err))
	}

	after, err := c.r.token.BalanceOf(ctx, c.r.self)
	if err != nil {
		return c.abort(ctx, hedge.Transferf("read balance after pull", err))
	}
	c.pulled = after - c.preBalance

	pulled := c.pulled
	c.unwind.add("return pulled funds to caller", func(ctx context.Context) error {
		return c.r.token.Push(ctx, caller, pulled)
	})
	return nil
}

// invest grants the vault a spending right of exactly amount, invests for
// the beneficiary, and zeroes the grant regardless of how much the vault
// consumed.
func (c *call) invest(ctx context.Context, vault collab.Vault, trancheID string, amount int64, beneficiary hedge.AccountID) error {
	spender := vault.Spender()

	if err := c.r.token.Grant(ctx, spender, amount); err != nil {
		return c.abort(ctx, hedge.Transferf("grant invest spending right", err))
	}

	investErr := vault.InvestFor(ctx, trancheID, amount, beneficiary)

	// Register the inverse the moment the position exists: a failed revoke
	// or balance read past this point must still burn the minted position.
	divested := amount
	if investErr == nil {
		c.unwind.add("divest tranche position", func(ctx context.Context) error {
			return vault.DivestFor(ctx, trancheID, divested, beneficiary)
		})
	}

	// Revoke before inspecting the outcome: no grant survives the step.
	if err := c.r.token.Grant(ctx, spender, 0); err != nil {
		return c.abort(ctx, hedge.Transferf("revoke invest spending right", err))
	}
	if investErr != nil {
		return c.abort(ctx, hedge.Statef("vault invest: %v", investErr))
	}

	after, err := c.r.token.BalanceOf(ctx, c.r.self)
	if err != nil {
		return c.abort(ctx, hedge.Transferf("read balance after invest", err))
	}
	c.invested = c.preBalance + c.pulled - after

	if c.invested != amount {
		// The position minted to the beneficiary must be exactly the
		// requested amount; a partial fill cannot be attributed cleanly.
		divested = c.invested
		return c.abort(ctx, hedge.Statef("vault consumed %d of requested %d", c.invested, amount))
	}
	return nil
}

// buyProtection grants the protection contract a spending right of exactly
// maxPremium, buys for the beneficiary, and zeroes the grant.
func (c *call) buyProtection(ctx context.Context, prot collab.Protection, notional, maxPremium int64, beneficiary hedge.AccountID) error {
	spender := prot.Spender()

	if err := c.r.token.Grant(ctx, spender, maxPremium); err != nil {
		return c.abort(ctx, hedge.Transferf("grant premium spending right", err))
	}

	buyErr := prot.BuyProtectionFor(ctx, notional, maxPremium, beneficiary)

	// Same discipline as invest: the cancel step is on the log before the
	// revoke or the balance read gets a chance to fail.
	if buyErr == nil {
		c.unwind.add("cancel protection purchase", func(ctx context.Context) error {
			return prot.CancelProtectionFor(ctx, beneficiary)
		})
	}

	if err := c.r.token.Grant(ctx, spender, 0); err != nil {
		return c.abort(ctx, hedge.Transferf("revoke premium spending right", err))
	}
	if buyErr != nil {
		return c.abort(ctx, hedge.Statef("protection buy: %v", buyErr))
	}

	after, err := c.r.token.BalanceOf(ctx, c.r.self)
	if err != nil {
		return c.abort(ctx, hedge.Transferf("read balance after protection buy", err))
	}
	c.premiumPaid = c.preBalance + c.pulled - c.invested - after

	if c.premiumPaid > maxPremium {
		return c.abort(ctx, hedge.Statef("protection charged %d, cap was %d", c.premiumPaid, maxPremium))
	}
	return nil
}

// refundResidual re-reads the router's balance and pushes anything above the
// pre-call balance back to the caller.
func (c *call) refundResidual(ctx context.Context, caller hedge.AccountID) (int64, error) {
	balance, err := c.r.token.BalanceOf(ctx, c.r.self)
	if err != nil {
		return 0, c.abort(ctx, hedge.Transferf("read residual balance", err))
	}

	residual := balance - c.preBalance
	if residual < 0 {
		// A collaborator drew more than its scoped grant: the ledger's
		// exact-accounting assumption is broken. Nothing here can be
		// compensated safely.
		panic(fmt.Sprintf("FATAL: custody invariant violated: residual %d below pre-call balance", residual))
	}
	if residual == 0 {
		return 0, nil
	}

	if err := c.r.token.Push(ctx, caller, residual); err != nil {
		return 0, c.abort(ctx, hedge.Transferf(fmt.Sprintf("refund %d to caller", residual), err))
	}
	return residual, nil
}

// assertZeroCustody verifies the core invariant after a successful call.
func (c *call) assertZeroCustody(ctx context.Context) {
	balance, err := c.r.token.BalanceOf(ctx, c.r.self)
	if err != nil {
		// Balance unreadable after a completed call: the composition
		// itself succeeded, so log rather than fail the caller.
		c.r.log.Error().Err(err).Msg("post-call balance check unavailable")
		return
	}
	if balance != c.preBalance {
		panic(fmt.Sprintf("FATAL: custody invariant violated: balance %d != pre-call %d", balance, c.preBalance))
	}
}
