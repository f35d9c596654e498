// Package router implements the composition core: invest into a yield
// tranche and acquire (or create) default protection referencing that same
// investment, for a single beneficiary, as one indivisible operation. The
// router owns no persistent state and never ends a call holding funds or
// positions.
package router

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"HedgeRouter/internal/admin"
	"HedgeRouter/internal/collab"
	"HedgeRouter/internal/event"
	"HedgeRouter/internal/hedge"
	"HedgeRouter/internal/observability"
)

const (
	pathExisting = "existing"
	pathNew      = "new"

	// idempotencyNamespace spans both entry operations: a RequestID may be
	// used once, regardless of path.
	idempotencyNamespace = "composition"
)

// Router composes the vault and protection collaborators. All state it
// touches during a call is transient: pulled funds, scoped spending rights,
// and the compensation log, all of which are gone by the time the call
// returns.
type Router struct {
	self     hedge.AccountID
	tokenRef hedge.Ref

	token   collab.FundingToken
	dir     collab.Directory
	factory collab.ProtectionFactory
	guard   *admin.Guard

	idempotency *IdempotencyChecker
	emitter     *Emitter
	metrics     *observability.Metrics
	log         zerolog.Logger

	// busy is the call-scoped reentrancy guard. TryLock at entry, released
	// on every exit path. A failed TryLock — whether from a collaborator
	// callback re-entering mid-call or from a concurrent caller — is
	// rejected immediately and leaves the in-progress call untouched.
	busy sync.Mutex
}

// Deps wires the router's collaborators and infrastructure.
type Deps struct {
	// Self is the router's principal on the funding-token ledger, used
	// only for transient custody within a single call.
	Self hedge.AccountID

	// TokenRef is the funding token the router settles in. Vaults whose
	// underlying asset differs are rejected.
	TokenRef hedge.Ref

	Token       collab.FundingToken
	Directory   collab.Directory
	Factory     collab.ProtectionFactory
	Guard       *admin.Guard
	Idempotency *IdempotencyChecker
	Emitter     *Emitter
	Metrics     *observability.Metrics
	Logger      zerolog.Logger
}

func New(deps Deps) *Router {
	return &Router{
		self:        deps.Self,
		tokenRef:    deps.TokenRef,
		token:       deps.Token,
		dir:         deps.Directory,
		factory:     deps.Factory,
		guard:       deps.Guard,
		idempotency: deps.Idempotency,
		emitter:     deps.Emitter,
		metrics:     deps.Metrics,
		log:         deps.Logger,
	}
}

// ComposeWithExistingProtection invests req.InvestAmount into the tranche
// and buys protection from an already-deployed contract, both for
// req.Caller. The caller must have pre-authorized the router to pull exactly
// InvestAmount+MaxPremium.
func (r *Router) ComposeWithExistingProtection(ctx context.Context, req hedge.ComposeExistingRequest) (hedge.CompositionResult, error) {
	return r.compose(ctx, pathExisting, req.RequestID.String(), func(ctx context.Context, c *call) (hedge.CompositionResult, error) {
		if err := req.Validate(); err != nil {
			return hedge.CompositionResult{}, err
		}

		vault, err := r.resolveVault(ctx, req.Vault)
		if err != nil {
			return hedge.CompositionResult{}, err
		}

		prot, err := r.dir.Protection(req.Protection)
		if err != nil {
			return hedge.CompositionResult{}, hedge.Statef("resolve protection %s: %v", req.Protection, err)
		}

		// Read-only status check before any funds move past the pull.
		status, err := prot.Status(ctx)
		if err != nil {
			return hedge.CompositionResult{}, hedge.Statef("protection status: %v", err)
		}
		if status != hedge.StatusActive {
			return hedge.CompositionResult{}, hedge.Statef("protection %s is %s, not Active", req.Protection, status)
		}

		terms, err := prot.Terms(ctx)
		if err != nil {
			return hedge.CompositionResult{}, hedge.Statef("protection terms: %v", err)
		}

		if err := c.pull(ctx, req.Caller, req.TotalRequired()); err != nil {
			return hedge.CompositionResult{}, err
		}
		if err := c.invest(ctx, vault, req.TrancheID, req.InvestAmount, req.Caller); err != nil {
			return hedge.CompositionResult{}, err
		}
		if err := c.buyProtection(ctx, prot, terms.Notional, req.MaxPremium, req.Caller); err != nil {
			return hedge.CompositionResult{}, err
		}
		refund, err := c.refundResidual(ctx, req.Caller)
		if err != nil {
			return hedge.CompositionResult{}, err
		}

		seq := r.emitter.Emit(&event.HedgeOpened{
			RequestID:    req.RequestID,
			Caller:       req.Caller,
			Vault:        req.Vault,
			TrancheID:    req.TrancheID,
			InvestAmount: req.InvestAmount,
			Protection:   req.Protection,
			PremiumPaid:  c.premiumPaid,
			Refund:       refund,
		}, time.Now())

		return hedge.CompositionResult{
			Protection:   req.Protection,
			InvestAmount: req.InvestAmount,
			PremiumPaid:  c.premiumPaid,
			Refund:       refund,
			Sequence:     seq,
		}, nil
	})
}

// ComposeWithNewProtection invests req.InvestAmount into the tranche, asks
// the factory to deploy a fresh protection contract referencing the vault,
// and buys from it — all within the same indivisible call. If the buy fails,
// the created contract and all pulled funds are rolled back together.
func (r *Router) ComposeWithNewProtection(ctx context.Context, req hedge.ComposeNewRequest) (hedge.CompositionResult, error) {
	return r.compose(ctx, pathNew, req.RequestID.String(), func(ctx context.Context, c *call) (hedge.CompositionResult, error) {
		if err := req.Validate(); err != nil {
			return hedge.CompositionResult{}, err
		}

		vault, err := r.resolveVault(ctx, req.Vault)
		if err != nil {
			return hedge.CompositionResult{}, err
		}

		if err := c.pull(ctx, req.Caller, req.TotalRequired()); err != nil {
			return hedge.CompositionResult{}, err
		}
		if err := c.invest(ctx, vault, req.TrancheID, req.InvestAmount, req.Caller); err != nil {
			return hedge.CompositionResult{}, err
		}

		protRef, err := r.factory.CreateProtection(ctx, req.Vault, req.Terms)
		if err != nil {
			return hedge.CompositionResult{}, c.abort(ctx, hedge.Statef("create protection: %v", err))
		}
		c.unwind.add("retire created protection", func(ctx context.Context) error {
			return r.factory.RetireProtection(ctx, protRef)
		})

		prot, err := r.dir.Protection(protRef)
		if err != nil {
			return hedge.CompositionResult{}, c.abort(ctx, hedge.Statef("resolve created protection %s: %v", protRef, err))
		}

		// No Active pre-check here: the contract starts Unmatched and its
		// own state machine decides whether a buy escrows the premium
		// pending a seller.
		if err := c.buyProtection(ctx, prot, req.Terms.Notional, req.MaxPremium, req.Caller); err != nil {
			return hedge.CompositionResult{}, err
		}
		refund, err := c.refundResidual(ctx, req.Caller)
		if err != nil {
			return hedge.CompositionResult{}, err
		}

		seq := r.emitter.Emit(&event.HedgeOpenedNewProtection{
			RequestID:    req.RequestID,
			Caller:       req.Caller,
			Vault:        req.Vault,
			TrancheID:    req.TrancheID,
			InvestAmount: req.InvestAmount,
			Protection:   protRef,
			Terms:        req.Terms,
			PremiumPaid:  c.premiumPaid,
			Refund:       refund,
		}, time.Now())

		return hedge.CompositionResult{
			Protection:   protRef,
			InvestAmount: req.InvestAmount,
			PremiumPaid:  c.premiumPaid,
			Refund:       refund,
			Sequence:     seq,
		}, nil
	})
}

// compose runs the shared entry discipline: reentrancy guard, pause check,
// idempotency, metrics, and terminal-error accounting.
func (r *Router) compose(
	ctx context.Context,
	path string,
	requestID string,
	run func(ctx context.Context, c *call) (hedge.CompositionResult, error),
) (hedge.CompositionResult, error) {
	if !r.busy.TryLock() {
		if r.metrics != nil {
			r.metrics.ReentrancyRejections.Inc()
		}
		return hedge.CompositionResult{}, hedge.ErrReentrancy
	}
	defer r.busy.Unlock()

	// Evaluated at invocation time, never cached from an earlier check.
	if err := r.guard.RequireActive(); err != nil {
		if r.metrics != nil {
			r.metrics.PausedRejections.Inc()
		}
		return hedge.CompositionResult{}, err
	}

	if r.idempotency != nil && r.idempotency.IsDuplicate(idempotencyNamespace, requestID) {
		return hedge.CompositionResult{}, hedge.ErrDuplicateRequest
	}

	start := time.Now()
	if r.metrics != nil {
		r.metrics.CompositionsStarted.WithLabelValues(path).Inc()
	}

	c, err := r.newCall(ctx)
	if err != nil {
		r.observeFailure(path, start, err)
		return hedge.CompositionResult{}, err
	}

	result, err := run(ctx, c)
	if err != nil {
		r.observeFailure(path, start, err)
		return hedge.CompositionResult{}, err
	}

	// Zero net custody: the router's balance must equal its pre-call
	// balance on every exit. A violation here means funds are stranded in
	// the router account — state corruption, not a caller error.
	c.assertZeroCustody(ctx)

	if r.idempotency != nil {
		r.idempotency.MarkProcessed(idempotencyNamespace, requestID)
	}

	if r.metrics != nil {
		r.metrics.CompositionsCompleted.WithLabelValues(path).Inc()
		r.metrics.CompositionDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		r.metrics.PremiumPaidTotal.WithLabelValues(path).Add(float64(result.PremiumPaid))
		r.metrics.RefundTotal.WithLabelValues(path).Add(float64(result.Refund))
		if r.idempotency != nil {
			r.metrics.IdempotencyLRUSize.Set(float64(r.idempotency.Size()))
			r.metrics.IdempotencyEvictions.Set(float64(r.idempotency.Evictions()))
		}
	}

	r.log.Info().
		Str("path", path).
		Str("request_id", requestID).
		Str("protection", string(result.Protection)).
		Int64("invest_amount", result.InvestAmount).
		Int64("premium_paid", result.PremiumPaid).
		Int64("refund", result.Refund).
		Int64("sequence", result.Sequence).
		Msg("composition complete")

	return result, nil
}

func (r *Router) observeFailure(path string, start time.Time, err error) {
	if r.metrics != nil {
		r.metrics.CompositionsFailed.WithLabelValues(path, hedge.Kind(err)).Inc()
		r.metrics.CompositionDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
	r.log.Warn().Err(err).Str("path", path).Msg("composition aborted")
}

func (r *Router) resolveVault(ctx context.Context, ref hedge.Ref) (collab.Vault, error) {
	vault, err := r.dir.Vault(ref)
	if err != nil {
		return nil, hedge.Statef("resolve vault %s: %v", ref, err)
	}

	underlying, err := vault.UnderlyingAsset(ctx)
	if err != nil {
		return nil, hedge.Statef("vault underlying asset: %v", err)
	}
	if underlying != r.tokenRef {
		return nil, hedge.Statef("vault %s settles in %s, router settles in %s", ref, underlying, r.tokenRef)
	}
	return vault, nil
}
