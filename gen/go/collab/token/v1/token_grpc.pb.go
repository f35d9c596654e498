// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: collab/token/v1/token.proto

package tokenv1

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
	TokenLedgerService_BalanceOf_FullMethodName    = "/collab.token.v1.TokenLedgerService/BalanceOf"
	TokenLedgerService_Transfer_FullMethodName     = "/collab.token.v1.TokenLedgerService/Transfer"
	TokenLedgerService_TransferFrom_FullMethodName = "/collab.token.v1.TokenLedgerService/TransferFrom"
	TokenLedgerService_Approve_FullMethodName      = "/collab.token.v1.TokenLedgerService/Approve"
)

// TokenLedgerServiceClient is the client API for TokenLedgerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TokenLedgerService is the funding-token ledger the router settles in.
// Amounts are token base units. Accounts are UUIDs.
type TokenLedgerServiceClient interface {
	BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	TransferFrom(ctx context.Context, in *TransferFromRequest, opts ...grpc.CallOption) (*TransferFromResponse, error)
	Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error)
}

type tokenLedgerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTokenLedgerServiceClient(cc grpc.ClientConnInterface) TokenLedgerServiceClient {
	return &tokenLedgerServiceClient{cc}
}

func (c *tokenLedgerServiceClient) BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BalanceOfResponse)
	err := c.cc.Invoke(ctx, TokenLedgerService_BalanceOf_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenLedgerServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransferResponse)
	err := c.cc.Invoke(ctx, TokenLedgerService_Transfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenLedgerServiceClient) TransferFrom(ctx context.Context, in *TransferFromRequest, opts ...grpc.CallOption) (*TransferFromResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransferFromResponse)
	err := c.cc.Invoke(ctx, TokenLedgerService_TransferFrom_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenLedgerServiceClient) Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveResponse)
	err := c.cc.Invoke(ctx, TokenLedgerService_Approve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TokenLedgerServiceServer is the server API for TokenLedgerService service.
// All implementations must embed UnimplementedTokenLedgerServiceServer
// for forward compatibility
//
// TokenLedgerService is the funding-token ledger the router settles in.
// Amounts are token base units. Accounts are UUIDs.
type TokenLedgerServiceServer interface {
	BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error)
	Transfer(context.Context, *TransferRequest) (*TransferResponse, error)
	TransferFrom(context.Context, *TransferFromRequest) (*TransferFromResponse, error)
	Approve(context.Context, *ApproveRequest) (*ApproveResponse, error)
	mustEmbedUnimplementedTokenLedgerServiceServer()
}

// UnimplementedTokenLedgerServiceServer must be embedded to have forward compatible implementations.
type UnimplementedTokenLedgerServiceServer struct {
}

func (UnimplementedTokenLedgerServiceServer) BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BalanceOf not implemented")
}
func (UnimplementedTokenLedgerServiceServer) Transfer(context.Context, *TransferRequest) (*TransferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Transfer not implemented")
}
func (UnimplementedTokenLedgerServiceServer) TransferFrom(context.Context, *TransferFromRequest) (*TransferFromResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransferFrom not implemented")
}
func (UnimplementedTokenLedgerServiceServer) Approve(context.Context, *ApproveRequest) (*ApproveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Approve not implemented")
}
func (UnimplementedTokenLedgerServiceServer) mustEmbedUnimplementedTokenLedgerServiceServer() {}

// UnsafeTokenLedgerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TokenLedgerServiceServer will
// result in compilation errors.
type UnsafeTokenLedgerServiceServer interface {
	mustEmbedUnimplementedTokenLedgerServiceServer()
}

func RegisterTokenLedgerServiceServer(s grpc.ServiceRegistrar, srv TokenLedgerServiceServer) {
	s.RegisterService(&TokenLedgerService_ServiceDesc, srv)
}

func _TokenLedgerService_BalanceOf_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceOfRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenLedgerServiceServer).BalanceOf(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TokenLedgerService_BalanceOf_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenLedgerServiceServer).BalanceOf(ctx, req.(*BalanceOfRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenLedgerService_Transfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenLedgerServiceServer).Transfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TokenLedgerService_Transfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenLedgerServiceServer).Transfer(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenLedgerService_TransferFrom_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferFromRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenLedgerServiceServer).TransferFrom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TokenLedgerService_TransferFrom_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenLedgerServiceServer).TransferFrom(ctx, req.(*TransferFromRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenLedgerService_Approve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenLedgerServiceServer).Approve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TokenLedgerService_Approve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenLedgerServiceServer).Approve(ctx, req.(*ApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TokenLedgerService_ServiceDesc is the grpc.ServiceDesc for TokenLedgerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TokenLedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.token.v1.TokenLedgerService",
	HandlerType: (*TokenLedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BalanceOf",
			Handler:    _TokenLedgerService_BalanceOf_Handler,
		},
		{
			MethodName: "Transfer",
			Handler:    _TokenLedgerService_Transfer_Handler,
		},
		{
			MethodName: "TransferFrom",
			Handler:    _TokenLedgerService_TransferFrom_Handler,
		},
		{
			MethodName: "Approve",
			Handler:    _TokenLedgerService_Approve_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/token/v1/token.proto",
}
