// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: collab/vault/v1/vault.proto

package vaultv1

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
	VaultService_GetVaultInfo_FullMethodName       = "/collab.vault.v1.VaultService/GetVaultInfo"
	VaultService_GetUnderlyingAsset_FullMethodName = "/collab.vault.v1.VaultService/GetUnderlyingAsset"
	VaultService_InvestFor_FullMethodName          = "/collab.vault.v1.VaultService/InvestFor"
	VaultService_DivestFor_FullMethodName          = "/collab.vault.v1.VaultService/DivestFor"
)

// VaultServiceClient is the client API for VaultService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VaultService fronts the yield-tranche vault subsystem. One gateway serves
// many vaults; the vault reference travels on every RPC.
type VaultServiceClient interface {
	GetVaultInfo(ctx context.Context, in *GetVaultInfoRequest, opts ...grpc.CallOption) (*GetVaultInfoResponse, error)
	GetUnderlyingAsset(ctx context.Context, in *GetUnderlyingAssetRequest, opts ...grpc.CallOption) (*GetUnderlyingAssetResponse, error)
	InvestFor(ctx context.Context, in *InvestForRequest, opts ...grpc.CallOption) (*InvestForResponse, error)
	DivestFor(ctx context.Context, in *DivestForRequest, opts ...grpc.CallOption) (*DivestForResponse, error)
}

type vaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultServiceClient(cc grpc.ClientConnInterface) VaultServiceClient {
	return &vaultServiceClient{cc}
}

func (c *vaultServiceClient) GetVaultInfo(ctx context.Context, in *GetVaultInfoRequest, opts ...grpc.CallOption) (*GetVaultInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVaultInfoResponse)
	err := c.cc.Invoke(ctx, VaultService_GetVaultInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetUnderlyingAsset(ctx context.Context, in *GetUnderlyingAssetRequest, opts ...grpc.CallOption) (*GetUnderlyingAssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetUnderlyingAssetResponse)
	err := c.cc.Invoke(ctx, VaultService_GetUnderlyingAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) InvestFor(ctx context.Context, in *InvestForRequest, opts ...grpc.CallOption) (*InvestForResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InvestForResponse)
	err := c.cc.Invoke(ctx, VaultService_InvestFor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) DivestFor(ctx context.Context, in *DivestForRequest, opts ...grpc.CallOption) (*DivestForResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DivestForResponse)
	err := c.cc.Invoke(ctx, VaultService_DivestFor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VaultServiceServer is the server API for VaultService service.
// All implementations must embed UnimplementedVaultServiceServer
// for forward compatibility
//
// VaultService fronts the yield-tranche vault subsystem. One gateway serves
// many vaults; the vault reference travels on every RPC.
type VaultServiceServer interface {
	GetVaultInfo(context.Context, *GetVaultInfoRequest) (*GetVaultInfoResponse, error)
	GetUnderlyingAsset(context.Context, *GetUnderlyingAssetRequest) (*GetUnderlyingAssetResponse, error)
	InvestFor(context.Context, *InvestForRequest) (*InvestForResponse, error)
	DivestFor(context.Context, *DivestForRequest) (*DivestForResponse, error)
	mustEmbedUnimplementedVaultServiceServer()
}

// UnimplementedVaultServiceServer must be embedded to have forward compatible implementations.
type UnimplementedVaultServiceServer struct {
}

func (UnimplementedVaultServiceServer) GetVaultInfo(context.Context, *GetVaultInfoRequest) (*GetVaultInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVaultInfo not implemented")
}
func (UnimplementedVaultServiceServer) GetUnderlyingAsset(context.Context, *GetUnderlyingAssetRequest) (*GetUnderlyingAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUnderlyingAsset not implemented")
}
func (UnimplementedVaultServiceServer) InvestFor(context.Context, *InvestForRequest) (*InvestForResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InvestFor not implemented")
}
func (UnimplementedVaultServiceServer) DivestFor(context.Context, *DivestForRequest) (*DivestForResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DivestFor not implemented")
}
func (UnimplementedVaultServiceServer) mustEmbedUnimplementedVaultServiceServer() {}

// UnsafeVaultServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VaultServiceServer will
// result in compilation errors.
type UnsafeVaultServiceServer interface {
	mustEmbedUnimplementedVaultServiceServer()
}

func RegisterVaultServiceServer(s grpc.ServiceRegistrar, srv VaultServiceServer) {
	s.RegisterService(&VaultService_ServiceDesc, srv)
}

func _VaultService_GetVaultInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetVaultInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetVaultInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetVaultInfo(ctx, req.(*GetVaultInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetUnderlyingAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUnderlyingAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetUnderlyingAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetUnderlyingAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetUnderlyingAsset(ctx, req.(*GetUnderlyingAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_InvestFor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvestForRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).InvestFor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_InvestFor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).InvestFor(ctx, req.(*InvestForRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_DivestFor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DivestForRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).DivestFor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_DivestFor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).DivestFor(ctx, req.(*DivestForRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VaultService_ServiceDesc is the grpc.ServiceDesc for VaultService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.vault.v1.VaultService",
	HandlerType: (*VaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVaultInfo",
			Handler:    _VaultService_GetVaultInfo_Handler,
		},
		{
			MethodName: "GetUnderlyingAsset",
			Handler:    _VaultService_GetUnderlyingAsset_Handler,
		},
		{
			MethodName: "InvestFor",
			Handler:    _VaultService_InvestFor_Handler,
		},
		{
			MethodName: "DivestFor",
			Handler:    _VaultService_DivestFor_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/vault/v1/vault.proto",
}
