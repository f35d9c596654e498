package grpcclient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	vaultv1 "HedgeRouter/gen/go/collab/vault/v1"
	"HedgeRouter/internal/hedge"
)

// VaultClient implements collab.Vault against the vault gateway service.
// One gateway fronts many vaults; the vault reference travels on every RPC.
type VaultClient struct {
	stub    vaultv1.VaultServiceClient
	ref     hedge.Ref
	spender hedge.AccountID
}

// NewVaultClient resolves the vault's ledger principal up front so that
// Spender never fails mid-composition.
func NewVaultClient(ctx context.Context, conn *grpc.ClientConn, ref hedge.Ref) (*VaultClient, error) {
	stub := vaultv1.NewVaultServiceClient(conn)

	info, err := stub.GetVaultInfo(ctx, &vaultv1.GetVaultInfoRequest{Vault: string(ref)})
	if err != nil {
		return nil, fmt.Errorf("vault info %s: %w", ref, err)
	}

	spender, err := uuid.Parse(info.SpenderAccount)
	if err != nil {
		return nil, fmt.Errorf("vault %s spender account: %w", ref, err)
	}

	return &VaultClient{stub: stub, ref: ref, spender: spender}, nil
}

func (c *VaultClient) Spender() hedge.AccountID {
	return c.spender
}

func (c *VaultClient) UnderlyingAsset(ctx context.Context) (hedge.Ref, error) {
	resp, err := c.stub.GetUnderlyingAsset(ctx, &vaultv1.GetUnderlyingAssetRequest{
		Vault: string(c.ref),
	})
	if err != nil {
		return "", fmt.Errorf("vault underlying_asset: %w", err)
	}
	return hedge.Ref(resp.Token), nil
}

func (c *VaultClient) InvestFor(ctx context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error {
	_, err := c.stub.InvestFor(ctx, &vaultv1.InvestForRequest{
		Vault:       string(c.ref),
		TrancheId:   trancheID,
		Amount:      amount,
		Beneficiary: beneficiary.String(),
	})
	if err != nil {
		return fmt.Errorf("vault invest_for: %w", err)
	}
	return nil
}

func (c *VaultClient) DivestFor(ctx context.Context, trancheID string, amount int64, beneficiary hedge.AccountID) error {
	_, err := c.stub.DivestFor(ctx, &vaultv1.DivestForRequest{
		Vault:       string(c.ref),
		TrancheId:   trancheID,
		Amount:      amount,
		Beneficiary: beneficiary.String(),
	})
	if err != nil {
		return fmt.Errorf("vault divest_for: %w", err)
	}
	return nil
}
