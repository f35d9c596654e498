package testutil

import (
	"context"
	"fmt"
	"sync"

	"HedgeRouter/internal/collab"
	"HedgeRouter/internal/hedge"
)

// FakeLedger is an in-memory funding-token ledger shared by all fake
// collaborators in a test. It tracks balances and spending rights the same
// way the real ledger service does: a collaborator can only draw funds
// through an allowance granted to its spender account.
type FakeLedger struct {
	mu         sync.Mutex
	balances   map[hedge.AccountID]int64
	allowances map[hedge.AccountID]map[hedge.AccountID]int64 // owner -> spender -> amount
}

func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		balances:   make(map[hedge.AccountID]int64),
		allowances: make(map[hedge.AccountID]map[hedge.AccountID]int64),
	}
}

// Mint credits an account out of thin air (test setup only).
func (l *FakeLedger) Mint(account hedge.AccountID, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Balance returns the current balance of an account.
func (l *FakeLedger) Balance(account hedge.AccountID) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

// Allowance returns the spending right owner has granted spender.
func (l *FakeLedger) Allowance(owner, spender hedge.AccountID) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[owner][spender]
}

// Approve sets the spending right owner grants spender.
func (l *FakeLedger) Approve(owner, spender hedge.AccountID, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setAllowance(owner, spender, amount)
}

func (l *FakeLedger) setAllowance(owner, spender hedge.AccountID, amount int64) {
	m, ok := l.allowances[owner]
	if !ok {
		m = make(map[hedge.AccountID]int64)
		l.allowances[owner] = m
	}
	m[spender] = amount
}

// transfer moves funds directly between accounts.
func (l *FakeLedger) transfer(from, to hedge.AccountID, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return fmt.Errorf("insufficient balance: %d < %d", l.balances[from], amount)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// spendAllowance moves funds from owner to recipient, consuming the right
// owner granted spender.
func (l *FakeLedger) spendAllowance(owner, spender, recipient hedge.AccountID, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[owner][spender] < amount {
		return fmt.Errorf("insufficient allowance: %d < %d", l.allowances[owner][spender], amount)
	}
	if l.balances[owner] < amount {
		return fmt.Errorf("insufficient balance: %d < %d", l.balances[owner], amount)
	}
	l.allowances[owner][spender] -= amount
	l.balances[owner] -= amount
	l.balances[recipient] += amount
	return nil
}

// FakeToken implements collab.FundingToken over a FakeLedger, bound to the
// router's principal.
type FakeToken struct {
	Ledger *FakeLedger
	Self   hedge.AccountID

	// FailPull and FailPush force transfer errors when set.
	FailPull error
	FailPush error
	// FailGrantRevoke forces an error only on Grant(spender, 0) calls.
	// When FailGrantRevokeAfter is n > 0, only the nth revoke fails.
	FailGrantRevoke      error
	FailGrantRevokeAfter int

	revokes int
}

func NewFakeToken(ledger *FakeLedger, self hedge.AccountID) *FakeToken {
	return &FakeToken{Ledger: ledger, Self: self}
}

func (t *FakeToken) BalanceOf(_ context.Context, account hedge.AccountID) (int64, error) {
	return t.Ledger.Balance(account), nil
}

func (t *FakeToken) Pull(_ context.Context, from hedge.AccountID, amount int64) error {
	if t.FailPull != nil {
		return t.FailPull
	}
	return t.Ledger.spendAllowance(from, t.Self, t.Self, amount)
}

func (t *FakeToken) Push(_ context.Context, to hedge.AccountID, amount int64) error {
	if t.FailPush != nil {
		return t.FailPush
	}
	return t.Ledger.transfer(t.Self, to, amount)
}

func (t *FakeToken) Grant(_ context.Context, spender hedge.AccountID, amount int64) error {
	if amount == 0 && t.FailGrantRevoke != nil {
		t.revokes++
		if t.FailGrantRevokeAfter == 0 || t.revokes == t.FailGrantRevokeAfter {
			return t.FailGrantRevoke
		}
	}
	t.Ledger.Approve(t.Self, spender, amount)
	return nil
}

// FakeVault implements collab.Vault. Invested funds land in the vault's own
// spender account; positions are tracked per beneficiary and tranche.
type FakeVault struct {
	Ledger     *FakeLedger
	Account    hedge.AccountID
	Underlying hedge.Ref

	// Consume overrides how much InvestFor actually draws; zero means
	// draw the requested amount exactly.
	Consume int64
	// FailInvest forces InvestFor to fail without drawing funds.
	FailInvest error
	// OnInvest runs after a successful draw, before InvestFor returns.
	// Lets tests simulate a collaborator calling back into the router.
	OnInvest func(ctx context.Context)

	mu        sync.Mutex
	Positions map[string]map[hedge.AccountID]int64 // trancheID -> beneficiary -> amount
	Divests   int
	lastOwner hedge.AccountID
}

func NewFakeVault(ledger *FakeLedger, account hedge.AccountID, underlying hedge.Ref) *FakeVault {
	return &FakeVault{
		Ledger:     ledger,
		Account:    account,
		Underlying: underlying,
		Positions:  make(map[string]map[hedge.AccountID]int64),
	}
}

func (v *FakeVault) Spender() hedge.AccountID {
	return v.Account
}

func (v *FakeVault) UnderlyingAsset(_ context.Context) (hedge.Ref, error) {
	return v.Underlying, nil
}

func (v *FakeVault) InvestFor(ctx context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error {
	if v.FailInvest != nil {
		return v.FailInvest
	}

	draw := amount
	if v.Consume != 0 {
		draw = v.Consume
	}

	// The vault draws from whoever granted it a spending right. In these
	// tests that is always the router.
	owner := routerOwner(v.Ledger, v.Account)
	if err := v.Ledger.spendAllowance(owner, v.Account, v.Account, draw); err != nil {
		return err
	}

	v.mu.Lock()
	if v.Positions[trancheID] == nil {
		v.Positions[trancheID] = make(map[hedge.AccountID]int64)
	}
	v.Positions[trancheID][beneficiary] += draw
	v.lastOwner = owner
	v.mu.Unlock()

	if v.OnInvest != nil {
		v.OnInvest(ctx)
	}
	return nil
}

func (v *FakeVault) DivestFor(_ context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error {
	v.mu.Lock()
	if v.Positions[trancheID] == nil || v.Positions[trancheID][beneficiary] < amount {
		v.mu.Unlock()
		return fmt.Errorf("no position to divest: tranche=%s beneficiary=%s", trancheID, beneficiary)
	}
	v.Positions[trancheID][beneficiary] -= amount
	v.Divests++
	owner := v.lastOwner
	v.mu.Unlock()

	return v.Ledger.transfer(v.Account, owner, amount)
}

// Position returns the beneficiary's tranche position.
func (v *FakeVault) Position(trancheID string, beneficiary hedge.AccountID) int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.Positions[trancheID] == nil {
		return 0
	}
	return v.Positions[trancheID][beneficiary]
}

// FakeProtection implements collab.Protection with a fixed status and terms.
type FakeProtection struct {
	Ledger  *FakeLedger
	Account hedge.AccountID

	CurrentStatus hedge.ProtectionStatus
	ContractTerms hedge.ProtectionTerms

	// Charge is the premium actually drawn by a buy; zero means charge
	// the full maxPremium.
	Charge int64
	// FailBuy forces BuyProtectionFor to fail without drawing funds.
	FailBuy error

	mu        sync.Mutex
	Buyers    map[hedge.AccountID]int64 // beneficiary -> escrowed premium
	Cancels   int
	lastOwner hedge.AccountID
}

func NewFakeProtection(ledger *FakeLedger, account hedge.AccountID, status hedge.ProtectionStatus, terms hedge.ProtectionTerms) *FakeProtection {
	return &FakeProtection{
		Ledger:        ledger,
		Account:       account,
		CurrentStatus: status,
		ContractTerms: terms,
		Buyers:        make(map[hedge.AccountID]int64),
	}
}

func (p *FakeProtection) Spender() hedge.AccountID {
	return p.Account
}

func (p *FakeProtection) Status(_ context.Context) (hedge.ProtectionStatus, error) {
	return p.CurrentStatus, nil
}

func (p *FakeProtection) Terms(_ context.Context) (hedge.ProtectionTerms, error) {
	return p.ContractTerms, nil
}

func (p *FakeProtection) BuyProtectionFor(_ context.Context, notional, maxPremium int64, beneficiary hedge.AccountID) error {
	if p.FailBuy != nil {
		return p.FailBuy
	}

	charge := maxPremium
	if p.Charge != 0 {
		charge = p.Charge
	}

	owner := routerOwner(p.Ledger, p.Account)
	if err := p.Ledger.spendAllowance(owner, p.Account, p.Account, charge); err != nil {
		return err
	}

	p.mu.Lock()
	p.Buyers[beneficiary] += charge
	p.lastOwner = owner
	p.mu.Unlock()
	return nil
}

func (p *FakeProtection) CancelProtectionFor(_ context.Context, beneficiary hedge.AccountID) error {
	p.mu.Lock()
	escrowed, ok := p.Buyers[beneficiary]
	if !ok || escrowed == 0 {
		p.mu.Unlock()
		return fmt.Errorf("no buyer position for %s", beneficiary)
	}
	delete(p.Buyers, beneficiary)
	p.Cancels++
	owner := p.lastOwner
	p.mu.Unlock()

	return p.Ledger.transfer(p.Account, owner, escrowed)
}

// EscrowedPremium returns the premium held for a beneficiary.
func (p *FakeProtection) EscrowedPremium(beneficiary hedge.AccountID) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Buyers[beneficiary]
}

// FakeFactory implements collab.ProtectionFactory, registering created
// contracts in a FakeDirectory.
type FakeFactory struct {
	Ledger    *FakeLedger
	Directory *FakeDirectory

	// NewAccount is the spender account assigned to created contracts.
	NewAccount hedge.AccountID
	// Charge configures the created contract's premium draw.
	Charge int64
	// FailBuyOnCreated makes the created contract reject buys.
	FailBuyOnCreated error
	// FailCreate forces CreateProtection to fail.
	FailCreate error

	mu      sync.Mutex
	counter int
	Created []hedge.Ref
	Retired []hedge.Ref
}

func NewFakeFactory(ledger *FakeLedger, dir *FakeDirectory, newAccount hedge.AccountID) *FakeFactory {
	return &FakeFactory{Ledger: ledger, Directory: dir, NewAccount: newAccount}
}

func (f *FakeFactory) CreateProtection(_ context.Context, underlying hedge.Ref, terms hedge.ProtectionTerms) (hedge.Ref, error) {
	if f.FailCreate != nil {
		return "", f.FailCreate
	}

	f.mu.Lock()
	f.counter++
	ref := hedge.Ref(fmt.Sprintf("protection-created-%d", f.counter))
	f.Created = append(f.Created, ref)
	f.mu.Unlock()

	prot := NewFakeProtection(f.Ledger, f.NewAccount, hedge.StatusUnmatched, terms)
	prot.Charge = f.Charge
	prot.FailBuy = f.FailBuyOnCreated
	f.Directory.AddProtection(ref, prot)
	return ref, nil
}

func (f *FakeFactory) RetireProtection(_ context.Context, ref hedge.Ref) error {
	f.mu.Lock()
	f.Retired = append(f.Retired, ref)
	f.mu.Unlock()
	f.Directory.RemoveProtection(ref)
	return nil
}

// FakeDirectory implements collab.Directory over in-memory fixtures.
type FakeDirectory struct {
	mu          sync.Mutex
	vaults      map[hedge.Ref]collab.Vault
	protections map[hedge.Ref]collab.Protection
}

func NewFakeDirectory() *FakeDirectory {
	return &FakeDirectory{
		vaults:      make(map[hedge.Ref]collab.Vault),
		protections: make(map[hedge.Ref]collab.Protection),
	}
}

func (d *FakeDirectory) AddVault(ref hedge.Ref, v collab.Vault) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vaults[ref] = v
}

func (d *FakeDirectory) AddProtection(ref hedge.Ref, p collab.Protection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.protections[ref] = p
}

func (d *FakeDirectory) RemoveProtection(ref hedge.Ref) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.protections, ref)
}

func (d *FakeDirectory) Vault(ref hedge.Ref) (collab.Vault, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.vaults[ref]
	if !ok {
		return nil, fmt.Errorf("unknown vault %s", ref)
	}
	return v, nil
}

func (d *FakeDirectory) Protection(ref hedge.Ref) (collab.Protection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.protections[ref]
	if !ok {
		return nil, fmt.Errorf("unknown protection %s", ref)
	}
	return p, nil
}

// FlatPricing implements collab.SpreadSource and collab.PremiumModel with a
// fixed spread and the reference day-count formula.
type FlatPricing struct {
	Bps int64
}

func (fp FlatPricing) IndicativeSpread(_ context.Context, _ hedge.Ref, _ int64, _ int32) (int64, error) {
	return fp.Bps, nil
}

func (fp FlatPricing) TotalPremium(_ context.Context, notional, spreadBps int64, tenorDays int32) (int64, error) {
	return hedge.ProratedPremium(notional, spreadBps, tenorDays), nil
}

// routerOwner finds the account that currently grants spender an allowance.
// Fakes use it to identify who is paying, mirroring how the real services
// resolve the transfer-from owner.
func routerOwner(l *FakeLedger, spender hedge.AccountID) hedge.AccountID {
	l.mu.Lock()
	defer l.mu.Unlock()
	for owner, grants := range l.allowances {
		if grants[spender] > 0 {
			return owner
		}
	}
	return hedge.AccountID{}
}
