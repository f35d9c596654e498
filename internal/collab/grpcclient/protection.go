package grpcclient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"

	protectionv1 "HedgeRouter/gen/go/collab/protection/v1"
	"HedgeRouter/internal/hedge"
)

// ProtectionClient implements collab.Protection against the protection
// issuer's gateway. One gateway fronts many contracts; the contract
// reference travels on every RPC.
type ProtectionClient struct {
	stub    protectionv1.ProtectionServiceClient
	ref     hedge.Ref
	spender hedge.AccountID
}

func NewProtectionClient(ctx context.Context, conn *grpc.ClientConn, ref hedge.Ref) (*ProtectionClient, error) {
	stub := protectionv1.NewProtectionServiceClient(conn)

	info, err := stub.GetContractInfo(ctx, &protectionv1.GetContractInfoRequest{Contract: string(ref)})
	if err != nil {
		return nil, fmt.Errorf("protection info %s: %w", ref, err)
	}

	spender, err := uuid.Parse(info.SpenderAccount)
	if err != nil {
		return nil, fmt.Errorf("protection %s spender account: %w", ref, err)
	}

	return &ProtectionClient{stub: stub, ref: ref, spender: spender}, nil
}

func (c *ProtectionClient) Spender() hedge.AccountID {
	return c.spender
}

func (c *ProtectionClient) Status(ctx context.Context) (hedge.ProtectionStatus, error) {
	resp, err := c.stub.GetStatus(ctx, &protectionv1.GetStatusRequest{Contract: string(c.ref)})
	if err != nil {
		return 0, fmt.Errorf("protection get_status: %w", err)
	}
	return statusFromProto(resp.Status), nil
}

func (c *ProtectionClient) Terms(ctx context.Context) (hedge.ProtectionTerms, error) {
	resp, err := c.stub.GetTerms(ctx, &protectionv1.GetTermsRequest{Contract: string(c.ref)})
	if err != nil {
		return hedge.ProtectionTerms{}, fmt.Errorf("protection get_terms: %w", err)
	}
	return termsFromProto(resp.Terms), nil
}

func (c *ProtectionClient) BuyProtectionFor(ctx context.Context, notional, maxPremium int64, beneficiary hedge.AccountID) error {
	_, err := c.stub.BuyProtectionFor(ctx, &protectionv1.BuyProtectionForRequest{
		Contract:    string(c.ref),
		Notional:    notional,
		MaxPremium:  maxPremium,
		Beneficiary: beneficiary.String(),
	})
	if err != nil {
		return fmt.Errorf("protection buy_protection_for: %w", err)
	}
	return nil
}

func (c *ProtectionClient) CancelProtectionFor(ctx context.Context, beneficiary hedge.AccountID) error {
	_, err := c.stub.CancelProtectionFor(ctx, &protectionv1.CancelProtectionForRequest{
		Contract:    string(c.ref),
		Beneficiary: beneficiary.String(),
	})
	if err != nil {
		return fmt.Errorf("protection cancel_protection_for: %w", err)
	}
	return nil
}

// FactoryClient implements collab.ProtectionFactory.
type FactoryClient struct {
	stub protectionv1.ProtectionFactoryServiceClient
}

func NewFactoryClient(conn *grpc.ClientConn) *FactoryClient {
	return &FactoryClient{stub: protectionv1.NewProtectionFactoryServiceClient(conn)}
}

func (c *FactoryClient) CreateProtection(ctx context.Context, underlying hedge.Ref, terms hedge.ProtectionTerms) (hedge.Ref, error) {
	resp, err := c.stub.CreateProtection(ctx, &protectionv1.CreateProtectionRequest{
		Underlying: string(underlying),
		Terms:      termsToProto(terms),
	})
	if err != nil {
		return "", fmt.Errorf("factory create_protection: %w", err)
	}
	return hedge.Ref(resp.Contract), nil
}

func (c *FactoryClient) RetireProtection(ctx context.Context, ref hedge.Ref) error {
	_, err := c.stub.RetireProtection(ctx, &protectionv1.RetireProtectionRequest{
		Contract: string(ref),
	})
	if err != nil {
		return fmt.Errorf("factory retire_protection: %w", err)
	}
	return nil
}

func statusFromProto(s protectionv1.ProtectionStatus) hedge.ProtectionStatus {
	switch s {
	case protectionv1.ProtectionStatus_PROTECTION_STATUS_ACTIVE:
		return hedge.StatusActive
	case protectionv1.ProtectionStatus_PROTECTION_STATUS_EXPIRED:
		return hedge.StatusExpired
	case protectionv1.ProtectionStatus_PROTECTION_STATUS_CREDIT_EVENT_TRIGGERED:
		return hedge.StatusCreditEventTriggered
	case protectionv1.ProtectionStatus_PROTECTION_STATUS_SETTLED:
		return hedge.StatusSettled
	default:
		return hedge.StatusUnmatched
	}
}

func termsFromProto(t *protectionv1.ProtectionTerms) hedge.ProtectionTerms {
	if t == nil {
		return hedge.ProtectionTerms{}
	}
	var maturity time.Time
	if t.Maturity != nil {
		maturity = t.Maturity.AsTime()
	}
	return hedge.ProtectionTerms{
		Notional:            t.Notional,
		RateBps:             t.RateBps,
		Maturity:            maturity,
		Oracle:              hedge.Ref(t.Oracle),
		PaymentIntervalDays: t.PaymentIntervalDays,
		CollateralToken:     hedge.Ref(t.CollateralToken),
	}
}

func termsToProto(t hedge.ProtectionTerms) *protectionv1.ProtectionTerms {
	return &protectionv1.ProtectionTerms{
		Notional:            t.Notional,
		RateBps:             t.RateBps,
		Maturity:            timestamppb.New(t.Maturity),
		Oracle:              string(t.Oracle),
		PaymentIntervalDays: t.PaymentIntervalDays,
		CollateralToken:     string(t.CollateralToken),
	}
}
