package grpcclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	tokenv1 "HedgeRouter/gen/go/collab/token/v1"
	"HedgeRouter/internal/hedge"
)

// TokenClient implements collab.FundingToken against the funding-token
// ledger service, acting as the router principal.
type TokenClient struct {
	stub tokenv1.TokenLedgerServiceClient
	self hedge.AccountID
}

// NewTokenClient binds a dialed connection to the router's principal.
func NewTokenClient(conn *grpc.ClientConn, self hedge.AccountID) *TokenClient {
	return &TokenClient{
		stub: tokenv1.NewTokenLedgerServiceClient(conn),
		self: self,
	}
}

func (c *TokenClient) BalanceOf(ctx context.Context, account hedge.AccountID) (int64, error) {
	resp, err := c.stub.BalanceOf(ctx, &tokenv1.BalanceOfRequest{
		Account: account.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("token balance_of: %w", err)
	}
	return resp.Amount, nil
}

func (c *TokenClient) Pull(ctx context.Context, from hedge.AccountID, amount int64) error {
	_, err := c.stub.TransferFrom(ctx, &tokenv1.TransferFromRequest{
		Owner:     from.String(),
		Spender:   c.self.String(),
		Recipient: c.self.String(),
		Amount:    amount,
	})
	if err != nil {
		return fmt.Errorf("token transfer_from: %w", err)
	}
	return nil
}

func (c *TokenClient) Push(ctx context.Context, to hedge.AccountID, amount int64) error {
	_, err := c.stub.Transfer(ctx, &tokenv1.TransferRequest{
		Sender:    c.self.String(),
		Recipient: to.String(),
		Amount:    amount,
	})
	if err != nil {
		return fmt.Errorf("token transfer: %w", err)
	}
	return nil
}

func (c *TokenClient) Grant(ctx context.Context, spender hedge.AccountID, amount int64) error {
	_, err := c.stub.Approve(ctx, &tokenv1.ApproveRequest{
		Owner:   c.self.String(),
		Spender: spender.String(),
		Amount:  amount,
	})
	if err != nil {
		return fmt.Errorf("token approve: %w", err)
	}
	return nil
}
