package grpcclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	pricingv1 "HedgeRouter/gen/go/collab/pricing/v1"
	"HedgeRouter/internal/hedge"
)

// PricingClient implements collab.SpreadSource and collab.PremiumModel
// against the pricing service. Both quotes are advisory; execution always
// re-validates live protection state and the caller's premium cap.
type PricingClient struct {
	stub pricingv1.PricingServiceClient
}

func NewPricingClient(conn *grpc.ClientConn) *PricingClient {
	return &PricingClient{stub: pricingv1.NewPricingServiceClient(conn)}
}

func (c *PricingClient) IndicativeSpread(ctx context.Context, vault hedge.Ref, notional int64, tenorDays int32) (int64, error) {
	resp, err := c.stub.IndicativeSpread(ctx, &pricingv1.IndicativeSpreadRequest{
		Vault:     string(vault),
		Notional:  notional,
		TenorDays: tenorDays,
	})
	if err != nil {
		return 0, fmt.Errorf("pricing indicative_spread: %w", err)
	}
	return resp.SpreadBps, nil
}

func (c *PricingClient) TotalPremium(ctx context.Context, notional, spreadBps int64, tenorDays int32) (int64, error) {
	resp, err := c.stub.TotalPremium(ctx, &pricingv1.TotalPremiumRequest{
		Notional:  notional,
		SpreadBps: spreadBps,
		TenorDays: tenorDays,
	})
	if err != nil {
		return 0, fmt.Errorf("pricing total_premium: %w", err)
	}
	return resp.Premium, nil
}
