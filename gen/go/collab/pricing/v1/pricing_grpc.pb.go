// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: collab/pricing/v1/pricing.proto

package pricingv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	PricingService_IndicativeSpread_FullMethodName = "/collab.pricing.v1.PricingService/IndicativeSpread"
	PricingService_TotalPremium_FullMethodName     = "/collab.pricing.v1.PricingService/TotalPremium"
)

// PricingServiceClient is the client API for PricingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PricingService quotes indicative protection spreads and premiums.
// Quotes are advisory; execution re-validates against live contract state.
type PricingServiceClient interface {
	IndicativeSpread(ctx context.Context, in *IndicativeSpreadRequest, opts ...grpc.CallOption) (*IndicativeSpreadResponse, error)
	TotalPremium(ctx context.Context, in *TotalPremiumRequest, opts ...grpc.CallOption) (*TotalPremiumResponse, error)
}

type pricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) PricingServiceClient {
	return &pricingServiceClient{cc}
}

func (c *pricingServiceClient) IndicativeSpread(ctx context.Context, in *IndicativeSpreadRequest, opts ...grpc.CallOption) (*IndicativeSpreadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IndicativeSpreadResponse)
	err := c.cc.Invoke(ctx, PricingService_IndicativeSpread_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pricingServiceClient) TotalPremium(ctx context.Context, in *TotalPremiumRequest, opts ...grpc.CallOption) (*TotalPremiumResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TotalPremiumResponse)
	err := c.cc.Invoke(ctx, PricingService_TotalPremium_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PricingServiceServer is the server API for PricingService service.
// All implementations must embed UnimplementedPricingServiceServer
// for forward compatibility
//
// PricingService quotes indicative protection spreads and premiums.
// Quotes are advisory; execution re-validates against live contract state.
type PricingServiceServer interface {
	IndicativeSpread(context.Context, *IndicativeSpreadRequest) (*IndicativeSpreadResponse, error)
	TotalPremium(context.Context, *TotalPremiumRequest) (*TotalPremiumResponse, error)
	mustEmbedUnimplementedPricingServiceServer()
}

// UnimplementedPricingServiceServer must be embedded to have forward compatible implementations.
type UnimplementedPricingServiceServer struct {
}

func (UnimplementedPricingServiceServer) IndicativeSpread(context.Context, *IndicativeSpreadRequest) (*IndicativeSpreadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IndicativeSpread not implemented")
}
func (UnimplementedPricingServiceServer) TotalPremium(context.Context, *TotalPremiumRequest) (*TotalPremiumResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TotalPremium not implemented")
}
func (UnimplementedPricingServiceServer) mustEmbedUnimplementedPricingServiceServer() {}

// UnsafePricingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PricingServiceServer will
// result in compilation errors.
type UnsafePricingServiceServer interface {
	mustEmbedUnimplementedPricingServiceServer()
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingService_ServiceDesc, srv)
}

func _PricingService_IndicativeSpread_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IndicativeSpreadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).IndicativeSpread(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PricingService_IndicativeSpread_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).IndicativeSpread(ctx, req.(*IndicativeSpreadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PricingService_TotalPremium_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TotalPremiumRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).TotalPremium(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PricingService_TotalPremium_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).TotalPremium(ctx, req.(*TotalPremiumRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PricingService_ServiceDesc is the grpc.ServiceDesc for PricingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PricingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.pricing.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IndicativeSpread",
			Handler:    _PricingService_IndicativeSpread_Handler,
		},
		{
			MethodName: "TotalPremium",
			Handler:    _PricingService_TotalPremium_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/pricing/v1/pricing.proto",
}
