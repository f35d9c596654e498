// Package collab defines the contracts of the external subsystems the router
// composes: the funding-token ledger, the yield-tranche vault, the protection
// issuer and its factory, and the two pricing services. The router owns none
// of their state; it only calls these interfaces. gRPC-backed implementations
// live in collab/grpcclient; in-memory fakes live in internal/testutil.
package collab

import (
	"context"

	"HedgeRouter/internal/hedge"
)

// FundingToken is the router's view of the funding-token ledger, bound to the
// router's own principal. Exact accounting is assumed (transfers move exactly
// the requested amount), but the router always re-reads balances rather than
// trusting requested amounts.
type FundingToken interface {
	// BalanceOf returns the current balance of an account.
	BalanceOf(ctx context.Context, account hedge.AccountID) (int64, error)

	// Pull moves amount from `from` into the router's account, consuming a
	// spending right `from` granted to the router beforehand.
	Pull(ctx context.Context, from hedge.AccountID, amount int64) error

	// Push moves amount from the router's account to `to`.
	Push(ctx context.Context, to hedge.AccountID, amount int64) error

	// Grant sets the spending right the router extends to spender.
	// Grant(..., 0) revokes. Grants are always scoped to a single
	// composition step and zeroed before the step's caller returns.
	Grant(ctx context.Context, spender hedge.AccountID, amount int64) error
}

// Vault is a yield-tranche investment vault.
type Vault interface {
	// Spender is the vault's principal on the funding-token ledger, the
	// account the router grants the invest-step spending right to.
	Spender() hedge.AccountID

	// UnderlyingAsset returns the vault's funding-token reference. The
	// router refuses to compose against a vault whose underlying differs
	// from its own funding token.
	UnderlyingAsset(ctx context.Context) (hedge.Ref, error)

	// InvestFor pulls up to amount from the granted spending right and
	// mints a tranche position directly to beneficiary. Fails if the
	// tranche is closed or matured.
	InvestFor(ctx context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error

	// DivestFor reverses an InvestFor: burns beneficiary's freshly minted
	// position and returns the funds to the granting account. Used only by
	// the router's unwind path within the same composition call.
	DivestFor(ctx context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error
}

// Protection is a credit-default protection contract. Status transitions are
// owned entirely by the contract; the router reads and buys, never mutates.
type Protection interface {
	Spender() hedge.AccountID

	Status(ctx context.Context) (hedge.ProtectionStatus, error)

	Terms(ctx context.Context) (hedge.ProtectionTerms, error)

	// BuyProtectionFor pulls the premium (at most maxPremium) from the
	// granted spending right and records beneficiary as protection buyer.
	// Fails if the contract is fully matched or its state machine forbids
	// a buy.
	BuyProtectionFor(ctx context.Context, notional, maxPremium int64, beneficiary hedge.AccountID) error

	// CancelProtectionFor reverses a BuyProtectionFor: releases the
	// escrowed premium back to the paying account and removes the
	// beneficiary's buyer position. Used only by the router's unwind path.
	CancelProtectionFor(ctx context.Context, beneficiary hedge.AccountID) error
}

// ProtectionFactory deploys new protection contracts.
type ProtectionFactory interface {
	// CreateProtection deploys a contract referencing underlying as the
	// reference asset, with the given terms. The new contract starts
	// Unmatched.
	CreateProtection(ctx context.Context, underlying hedge.Ref, terms hedge.ProtectionTerms) (hedge.Ref, error)

	// RetireProtection tears down a freshly created, still-unmatched
	// contract. Used only by the router's unwind path.
	RetireProtection(ctx context.Context, ref hedge.Ref) error
}

// SpreadSource quotes the indicative annual protection spread.
type SpreadSource interface {
	// IndicativeSpread returns the advisory annual spread in basis points
	// for protecting notional against the given vault over tenorDays.
	IndicativeSpread(ctx context.Context, vault hedge.Ref, notional int64, tenorDays int32) (int64, error)
}

// PremiumModel computes a total premium from a spread. The formula is owned
// by the collaborator; the router only forwards inputs.
type PremiumModel interface {
	TotalPremium(ctx context.Context, notional, spreadBps int64, tenorDays int32) (int64, error)
}

// Directory resolves opaque references into live collaborator clients.
type Directory interface {
	Vault(ref hedge.Ref) (Vault, error)
	Protection(ref hedge.Ref) (Protection, error)
}
