// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: hedgerouter/compose/v1/compose.proto

package composev1

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
	ComposeService_ComposeWithExistingProtection_FullMethodName = "/hedgerouter.compose.v1.ComposeService/ComposeWithExistingProtection"
	ComposeService_ComposeWithNewProtection_FullMethodName      = "/hedgerouter.compose.v1.ComposeService/ComposeWithNewProtection"
	ComposeService_QuoteHedge_FullMethodName                    = "/hedgerouter.compose.v1.ComposeService/QuoteHedge"
)

// ComposeServiceClient is the client API for ComposeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ComposeService is the router's caller-facing surface: one indivisible
// operation that invests into a tranche and buys (or creates) default
// protection for the caller.
type ComposeServiceClient interface {
	ComposeWithExistingProtection(ctx context.Context, in *ComposeWithExistingProtectionRequest, opts ...grpc.CallOption) (*ComposeResponse, error)
	ComposeWithNewProtection(ctx context.Context, in *ComposeWithNewProtectionRequest, opts ...grpc.CallOption) (*ComposeResponse, error)
	QuoteHedge(ctx context.Context, in *QuoteHedgeRequest, opts ...grpc.CallOption) (*QuoteHedgeResponse, error)
}

type composeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewComposeServiceClient(cc grpc.ClientConnInterface) ComposeServiceClient {
	return &composeServiceClient{cc}
}

func (c *composeServiceClient) ComposeWithExistingProtection(ctx context.Context, in *ComposeWithExistingProtectionRequest, opts ...grpc.CallOption) (*ComposeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComposeResponse)
	err := c.cc.Invoke(ctx, ComposeService_ComposeWithExistingProtection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *composeServiceClient) ComposeWithNewProtection(ctx context.Context, in *ComposeWithNewProtectionRequest, opts ...grpc.CallOption) (*ComposeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComposeResponse)
	err := c.cc.Invoke(ctx, ComposeService_ComposeWithNewProtection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *composeServiceClient) QuoteHedge(ctx context.Context, in *QuoteHedgeRequest, opts ...grpc.CallOption) (*QuoteHedgeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(QuoteHedgeResponse)
	err := c.cc.Invoke(ctx, ComposeService_QuoteHedge_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ComposeServiceServer is the server API for ComposeService service.
// All implementations must embed UnimplementedComposeServiceServer
// for forward compatibility
//
// ComposeService is the router's caller-facing surface: one indivisible
// operation that invests into a tranche and buys (or creates) default
// protection for the caller.
type ComposeServiceServer interface {
	ComposeWithExistingProtection(context.Context, *ComposeWithExistingProtectionRequest) (*ComposeResponse, error)
	ComposeWithNewProtection(context.Context, *ComposeWithNewProtectionRequest) (*ComposeResponse, error)
	QuoteHedge(context.Context, *QuoteHedgeRequest) (*QuoteHedgeResponse, error)
	mustEmbedUnimplementedComposeServiceServer()
}

// UnimplementedComposeServiceServer must be embedded to have forward compatible implementations.
type UnimplementedComposeServiceServer struct {
}

func (UnimplementedComposeServiceServer) ComposeWithExistingProtection(context.Context, *ComposeWithExistingProtectionRequest) (*ComposeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComposeWithExistingProtection not implemented")
}
func (UnimplementedComposeServiceServer) ComposeWithNewProtection(context.Context, *ComposeWithNewProtectionRequest) (*ComposeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComposeWithNewProtection not implemented")
}
func (UnimplementedComposeServiceServer) QuoteHedge(context.Context, *QuoteHedgeRequest) (*QuoteHedgeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteHedge not implemented")
}
func (UnimplementedComposeServiceServer) mustEmbedUnimplementedComposeServiceServer() {}

// UnsafeComposeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ComposeServiceServer will
// result in compilation errors.
type UnsafeComposeServiceServer interface {
	mustEmbedUnimplementedComposeServiceServer()
}

func RegisterComposeServiceServer(s grpc.ServiceRegistrar, srv ComposeServiceServer) {
	s.RegisterService(&ComposeService_ServiceDesc, srv)
}

func _ComposeService_ComposeWithExistingProtection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComposeWithExistingProtectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComposeServiceServer).ComposeWithExistingProtection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComposeService_ComposeWithExistingProtection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComposeServiceServer).ComposeWithExistingProtection(ctx, req.(*ComposeWithExistingProtectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComposeService_ComposeWithNewProtection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComposeWithNewProtectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComposeServiceServer).ComposeWithNewProtection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComposeService_ComposeWithNewProtection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComposeServiceServer).ComposeWithNewProtection(ctx, req.(*ComposeWithNewProtectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComposeService_QuoteHedge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteHedgeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComposeServiceServer).QuoteHedge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComposeService_QuoteHedge_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComposeServiceServer).QuoteHedge(ctx, req.(*QuoteHedgeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ComposeService_ServiceDesc is the grpc.ServiceDesc for ComposeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ComposeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hedgerouter.compose.v1.ComposeService",
	HandlerType: (*ComposeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ComposeWithExistingProtection",
			Handler:    _ComposeService_ComposeWithExistingProtection_Handler,
		},
		{
			MethodName: "ComposeWithNewProtection",
			Handler:    _ComposeService_ComposeWithNewProtection_Handler,
		},
		{
			MethodName: "QuoteHedge",
			Handler:    _ComposeService_QuoteHedge_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hedgerouter/compose/v1/compose.proto",
}
