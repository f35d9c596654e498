// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: collab/protection/v1/protection.proto

package protectionv1

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
	ProtectionService_GetContractInfo_FullMethodName     = "/collab.protection.v1.ProtectionService/GetContractInfo"
	ProtectionService_GetStatus_FullMethodName           = "/collab.protection.v1.ProtectionService/GetStatus"
	ProtectionService_GetTerms_FullMethodName            = "/collab.protection.v1.ProtectionService/GetTerms"
	ProtectionService_BuyProtectionFor_FullMethodName    = "/collab.protection.v1.ProtectionService/BuyProtectionFor"
	ProtectionService_CancelProtectionFor_FullMethodName = "/collab.protection.v1.ProtectionService/CancelProtectionFor"
)

// ProtectionServiceClient is the client API for ProtectionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProtectionService fronts deployed default-protection contracts. One
// gateway serves many contracts; the contract reference travels on every
// RPC.
type ProtectionServiceClient interface {
	GetContractInfo(ctx context.Context, in *GetContractInfoRequest, opts ...grpc.CallOption) (*GetContractInfoResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	GetTerms(ctx context.Context, in *GetTermsRequest, opts ...grpc.CallOption) (*GetTermsResponse, error)
	BuyProtectionFor(ctx context.Context, in *BuyProtectionForRequest, opts ...grpc.CallOption) (*BuyProtectionForResponse, error)
	CancelProtectionFor(ctx context.Context, in *CancelProtectionForRequest, opts ...grpc.CallOption) (*CancelProtectionForResponse, error)
}

type protectionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProtectionServiceClient(cc grpc.ClientConnInterface) ProtectionServiceClient {
	return &protectionServiceClient{cc}
}

func (c *protectionServiceClient) GetContractInfo(ctx context.Context, in *GetContractInfoRequest, opts ...grpc.CallOption) (*GetContractInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractInfoResponse)
	err := c.cc.Invoke(ctx, ProtectionService_GetContractInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *protectionServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatusResponse)
	err := c.cc.Invoke(ctx, ProtectionService_GetStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *protectionServiceClient) GetTerms(ctx context.Context, in *GetTermsRequest, opts ...grpc.CallOption) (*GetTermsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTermsResponse)
	err := c.cc.Invoke(ctx, ProtectionService_GetTerms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *protectionServiceClient) BuyProtectionFor(ctx context.Context, in *BuyProtectionForRequest, opts ...grpc.CallOption) (*BuyProtectionForResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BuyProtectionForResponse)
	err := c.cc.Invoke(ctx, ProtectionService_BuyProtectionFor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *protectionServiceClient) CancelProtectionFor(ctx context.Context, in *CancelProtectionForRequest, opts ...grpc.CallOption) (*CancelProtectionForResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelProtectionForResponse)
	err := c.cc.Invoke(ctx, ProtectionService_CancelProtectionFor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProtectionServiceServer is the server API for ProtectionService service.
// All implementations must embed UnimplementedProtectionServiceServer
// for forward compatibility
//
// ProtectionService fronts deployed default-protection contracts. One
// gateway serves many contracts; the contract reference travels on every
// RPC.
type ProtectionServiceServer interface {
	GetContractInfo(context.Context, *GetContractInfoRequest) (*GetContractInfoResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	GetTerms(context.Context, *GetTermsRequest) (*GetTermsResponse, error)
	BuyProtectionFor(context.Context, *BuyProtectionForRequest) (*BuyProtectionForResponse, error)
	CancelProtectionFor(context.Context, *CancelProtectionForRequest) (*CancelProtectionForResponse, error)
	mustEmbedUnimplementedProtectionServiceServer()
}

// UnimplementedProtectionServiceServer must be embedded to have forward compatible implementations.
type UnimplementedProtectionServiceServer struct {
}

func (UnimplementedProtectionServiceServer) GetContractInfo(context.Context, *GetContractInfoRequest) (*GetContractInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContractInfo not implemented")
}
func (UnimplementedProtectionServiceServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedProtectionServiceServer) GetTerms(context.Context, *GetTermsRequest) (*GetTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTerms not implemented")
}
func (UnimplementedProtectionServiceServer) BuyProtectionFor(context.Context, *BuyProtectionForRequest) (*BuyProtectionForResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuyProtectionFor not implemented")
}
func (UnimplementedProtectionServiceServer) CancelProtectionFor(context.Context, *CancelProtectionForRequest) (*CancelProtectionForResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelProtectionFor not implemented")
}
func (UnimplementedProtectionServiceServer) mustEmbedUnimplementedProtectionServiceServer() {}

// UnsafeProtectionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProtectionServiceServer will
// result in compilation errors.
type UnsafeProtectionServiceServer interface {
	mustEmbedUnimplementedProtectionServiceServer()
}

func RegisterProtectionServiceServer(s grpc.ServiceRegistrar, srv ProtectionServiceServer) {
	s.RegisterService(&ProtectionService_ServiceDesc, srv)
}

func _ProtectionService_GetContractInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionServiceServer).GetContractInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionService_GetContractInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionServiceServer).GetContractInfo(ctx, req.(*GetContractInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProtectionService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionServiceServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProtectionService_GetTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionServiceServer).GetTerms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionService_GetTerms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionServiceServer).GetTerms(ctx, req.(*GetTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProtectionService_BuyProtectionFor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuyProtectionForRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionServiceServer).BuyProtectionFor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionService_BuyProtectionFor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionServiceServer).BuyProtectionFor(ctx, req.(*BuyProtectionForRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProtectionService_CancelProtectionFor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelProtectionForRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionServiceServer).CancelProtectionFor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionService_CancelProtectionFor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionServiceServer).CancelProtectionFor(ctx, req.(*CancelProtectionForRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProtectionService_ServiceDesc is the grpc.ServiceDesc for ProtectionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProtectionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.protection.v1.ProtectionService",
	HandlerType: (*ProtectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetContractInfo",
			Handler:    _ProtectionService_GetContractInfo_Handler,
		},
		{
			MethodName: "GetStatus",
			Handler:    _ProtectionService_GetStatus_Handler,
		},
		{
			MethodName: "GetTerms",
			Handler:    _ProtectionService_GetTerms_Handler,
		},
		{
			MethodName: "BuyProtectionFor",
			Handler:    _ProtectionService_BuyProtectionFor_Handler,
		},
		{
			MethodName: "CancelProtectionFor",
			Handler:    _ProtectionService_CancelProtectionFor_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/protection/v1/protection.proto",
}

const (
	ProtectionFactoryService_CreateProtection_FullMethodName = "/collab.protection.v1.ProtectionFactoryService/CreateProtection"
	ProtectionFactoryService_RetireProtection_FullMethodName = "/collab.protection.v1.ProtectionFactoryService/RetireProtection"
)

// ProtectionFactoryServiceClient is the client API for ProtectionFactoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProtectionFactoryService deploys and retires protection contracts.
type ProtectionFactoryServiceClient interface {
	CreateProtection(ctx context.Context, in *CreateProtectionRequest, opts ...grpc.CallOption) (*CreateProtectionResponse, error)
	RetireProtection(ctx context.Context, in *RetireProtectionRequest, opts ...grpc.CallOption) (*RetireProtectionResponse, error)
}

type protectionFactoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProtectionFactoryServiceClient(cc grpc.ClientConnInterface) ProtectionFactoryServiceClient {
	return &protectionFactoryServiceClient{cc}
}

func (c *protectionFactoryServiceClient) CreateProtection(ctx context.Context, in *CreateProtectionRequest, opts ...grpc.CallOption) (*CreateProtectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProtectionResponse)
	err := c.cc.Invoke(ctx, ProtectionFactoryService_CreateProtection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *protectionFactoryServiceClient) RetireProtection(ctx context.Context, in *RetireProtectionRequest, opts ...grpc.CallOption) (*RetireProtectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetireProtectionResponse)
	err := c.cc.Invoke(ctx, ProtectionFactoryService_RetireProtection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProtectionFactoryServiceServer is the server API for ProtectionFactoryService service.
// All implementations must embed UnimplementedProtectionFactoryServiceServer
// for forward compatibility
//
// ProtectionFactoryService deploys and retires protection contracts.
type ProtectionFactoryServiceServer interface {
	CreateProtection(context.Context, *CreateProtectionRequest) (*CreateProtectionResponse, error)
	RetireProtection(context.Context, *RetireProtectionRequest) (*RetireProtectionResponse, error)
	mustEmbedUnimplementedProtectionFactoryServiceServer()
}

// UnimplementedProtectionFactoryServiceServer must be embedded to have forward compatible implementations.
type UnimplementedProtectionFactoryServiceServer struct {
}

func (UnimplementedProtectionFactoryServiceServer) CreateProtection(context.Context, *CreateProtectionRequest) (*CreateProtectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProtection not implemented")
}
func (UnimplementedProtectionFactoryServiceServer) RetireProtection(context.Context, *RetireProtectionRequest) (*RetireProtectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetireProtection not implemented")
}
func (UnimplementedProtectionFactoryServiceServer) mustEmbedUnimplementedProtectionFactoryServiceServer() {
}

// UnsafeProtectionFactoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProtectionFactoryServiceServer will
// result in compilation errors.
type UnsafeProtectionFactoryServiceServer interface {
	mustEmbedUnimplementedProtectionFactoryServiceServer()
}

func RegisterProtectionFactoryServiceServer(s grpc.ServiceRegistrar, srv ProtectionFactoryServiceServer) {
	s.RegisterService(&ProtectionFactoryService_ServiceDesc, srv)
}

func _ProtectionFactoryService_CreateProtection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProtectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionFactoryServiceServer).CreateProtection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionFactoryService_CreateProtection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionFactoryServiceServer).CreateProtection(ctx, req.(*CreateProtectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProtectionFactoryService_RetireProtection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetireProtectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProtectionFactoryServiceServer).RetireProtection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProtectionFactoryService_RetireProtection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProtectionFactoryServiceServer).RetireProtection(ctx, req.(*RetireProtectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProtectionFactoryService_ServiceDesc is the grpc.ServiceDesc for ProtectionFactoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProtectionFactoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.protection.v1.ProtectionFactoryService",
	HandlerType: (*ProtectionFactoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProtection",
			Handler:    _ProtectionFactoryService_CreateProtection_Handler,
		},
		{
			MethodName: "RetireProtection",
			Handler:    _ProtectionFactoryService_RetireProtection_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "collab/protection/v1/protection.proto",
}
