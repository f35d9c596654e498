// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: collab/pricing/v1/pricing.proto

package pricingv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IndicativeSpreadRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault     string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	Notional  int64  `protobuf:"varint,2,opt,name=notional,proto3" json:"notional,omitempty"`
	TenorDays int32  `protobuf:"varint,3,opt,name=tenor_days,json=tenorDays,proto3" json:"tenor_days,omitempty"`
}

func (x *IndicativeSpreadRequest) Reset() {
	*x = IndicativeSpreadRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_pricing_v1_pricing_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IndicativeSpreadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IndicativeSpreadRequest) ProtoMessage() {}

func (x *IndicativeSpreadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_pricing_v1_pricing_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IndicativeSpreadRequest.ProtoReflect.Descriptor instead.
func (*IndicativeSpreadRequest) Descriptor() ([]byte, []int) {
	return file_collab_pricing_v1_pricing_proto_rawDescGZIP(), []int{0}
}

func (x *IndicativeSpreadRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *IndicativeSpreadRequest) GetNotional() int64 {
	if x != nil {
		return x.Notional
	}
	return 0
}

func (x *IndicativeSpreadRequest) GetTenorDays() int32 {
	if x != nil {
		return x.TenorDays
	}
	return 0
}

type IndicativeSpreadResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SpreadBps int64 `protobuf:"varint,1,opt,name=spread_bps,json=spreadBps,proto3" json:"spread_bps,omitempty"`
}

func (x *IndicativeSpreadResponse) Reset() {
	*x = IndicativeSpreadResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_pricing_v1_pricing_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *IndicativeSpreadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IndicativeSpreadResponse) ProtoMessage() {}

func (x *IndicativeSpreadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_pricing_v1_pricing_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IndicativeSpreadResponse.ProtoReflect.Descriptor instead.
func (*IndicativeSpreadResponse) Descriptor() ([]byte, []int) {
	return file_collab_pricing_v1_pricing_proto_rawDescGZIP(), []int{1}
}

func (x *IndicativeSpreadResponse) GetSpreadBps() int64 {
	if x != nil {
		return x.SpreadBps
	}
	return 0
}

type TotalPremiumRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Notional  int64 `protobuf:"varint,1,opt,name=notional,proto3" json:"notional,omitempty"`
	SpreadBps int64 `protobuf:"varint,2,opt,name=spread_bps,json=spreadBps,proto3" json:"spread_bps,omitempty"`
	TenorDays int32 `protobuf:"varint,3,opt,name=tenor_days,json=tenorDays,proto3" json:"tenor_days,omitempty"`
}

func (x *TotalPremiumRequest) Reset() {
	*x = TotalPremiumRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_pricing_v1_pricing_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TotalPremiumRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TotalPremiumRequest) ProtoMessage() {}

func (x *TotalPremiumRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_pricing_v1_pricing_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TotalPremiumRequest.ProtoReflect.Descriptor instead.
func (*TotalPremiumRequest) Descriptor() ([]byte, []int) {
	return file_collab_pricing_v1_pricing_proto_rawDescGZIP(), []int{2}
}

func (x *TotalPremiumRequest) GetNotional() int64 {
	if x != nil {
		return x.Notional
	}
	return 0
}

func (x *TotalPremiumRequest) GetSpreadBps() int64 {
	if x != nil {
		return x.SpreadBps
	}
	return 0
}

func (x *TotalPremiumRequest) GetTenorDays() int32 {
	if x != nil {
		return x.TenorDays
	}
	return 0
}

type TotalPremiumResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Premium int64 `protobuf:"varint,1,opt,name=premium,proto3" json:"premium,omitempty"`
}

func (x *TotalPremiumResponse) Reset() {
	*x = TotalPremiumResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_pricing_v1_pricing_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TotalPremiumResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TotalPremiumResponse) ProtoMessage() {}

func (x *TotalPremiumResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_pricing_v1_pricing_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TotalPremiumResponse.ProtoReflect.Descriptor instead.
func (*TotalPremiumResponse) Descriptor() ([]byte, []int) {
	return file_collab_pricing_v1_pricing_proto_rawDescGZIP(), []int{3}
}

func (x *TotalPremiumResponse) GetPremium() int64 {
	if x != nil {
		return x.Premium
	}
	return 0
}

var File_collab_pricing_v1_pricing_proto protoreflect.FileDescriptor

var file_collab_pricing_v1_pricing_proto_rawDesc = []byte{
	0x0a, 0x1f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x70, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67,
	0x2f, 0x76, 0x31, 0x2f, 0x70, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x11, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x69, 0x63, 0x69, 0x6e,
	0x67, 0x2e, 0x76, 0x31, 0x22, 0x6a, 0x0a, 0x17, 0x49, 0x6e, 0x64, 0x69, 0x63, 0x61, 0x74, 0x69,
	0x76, 0x65, 0x53, 0x70, 0x72, 0x65, 0x61, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x14, 0x0a, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x76, 0x61, 0x75, 0x6c, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61,
	0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61,
	0x6c, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x65, 0x6e, 0x6f, 0x72, 0x5f, 0x64, 0x61, 0x79, 0x73, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x74, 0x65, 0x6e, 0x6f, 0x72, 0x44, 0x61, 0x79, 0x73,
	0x22, 0x39, 0x0a, 0x18, 0x49, 0x6e, 0x64, 0x69, 0x63, 0x61, 0x74, 0x69, 0x76, 0x65, 0x53, 0x70,
	0x72, 0x65, 0x61, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1d, 0x0a, 0x0a,
	0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x09, 0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x42, 0x70, 0x73, 0x22, 0x6f, 0x0a, 0x13, 0x54,
	0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x12, 0x1d,
	0x0a, 0x0a, 0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x09, 0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x42, 0x70, 0x73, 0x12, 0x1d, 0x0a,
	0x0a, 0x74, 0x65, 0x6e, 0x6f, 0x72, 0x5f, 0x64, 0x61, 0x79, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x09, 0x74, 0x65, 0x6e, 0x6f, 0x72, 0x44, 0x61, 0x79, 0x73, 0x22, 0x30, 0x0a, 0x14,
	0x54, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x32, 0xde,
	0x01, 0x0a, 0x0e, 0x50, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63,
	0x65, 0x12, 0x6b, 0x0a, 0x10, 0x49, 0x6e, 0x64, 0x69, 0x63, 0x61, 0x74, 0x69, 0x76, 0x65, 0x53,
	0x70, 0x72, 0x65, 0x61, 0x64, 0x12, 0x2a, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70,
	0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x6e, 0x64, 0x69, 0x63, 0x61,
	0x74, 0x69, 0x76, 0x65, 0x53, 0x70, 0x72, 0x65, 0x61, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x2b, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x69, 0x63, 0x69,
	0x6e, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x6e, 0x64, 0x69, 0x63, 0x61, 0x74, 0x69, 0x76, 0x65,
	0x53, 0x70, 0x72, 0x65, 0x61, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5f,
	0x0a, 0x0c, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x12, 0x26,
	0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x2e,
	0x76, 0x31, 0x2e, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e,
	0x70, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x6f, 0x74, 0x61, 0x6c,
	0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42,
	0x30, 0x5a, 0x2e, 0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x67,
	0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x70, 0x72, 0x69,
	0x63, 0x69, 0x6e, 0x67, 0x2f, 0x76, 0x31, 0x3b, 0x70, 0x72, 0x69, 0x63, 0x69, 0x6e, 0x67, 0x76,
	0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_collab_pricing_v1_pricing_proto_rawDescOnce sync.Once
	file_collab_pricing_v1_pricing_proto_rawDescData = file_collab_pricing_v1_pricing_proto_rawDesc
)

func file_collab_pricing_v1_pricing_proto_rawDescGZIP() []byte {
	file_collab_pricing_v1_pricing_proto_rawDescOnce.Do(func() {
		file_collab_pricing_v1_pricing_proto_rawDescData = protoimpl.X.CompressGZIP(file_collab_pricing_v1_pricing_proto_rawDescData)
	})
	return file_collab_pricing_v1_pricing_proto_rawDescData
}

var file_collab_pricing_v1_pricing_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_collab_pricing_v1_pricing_proto_goTypes = []any{
	(*IndicativeSpreadRequest)(nil),  // 0: collab.pricing.v1.IndicativeSpreadRequest
	(*IndicativeSpreadResponse)(nil), // 1: collab.pricing.v1.IndicativeSpreadResponse
	(*TotalPremiumRequest)(nil),      // 2: collab.pricing.v1.TotalPremiumRequest
	(*TotalPremiumResponse)(nil),     // 3: collab.pricing.v1.TotalPremiumResponse
}
var file_collab_pricing_v1_pricing_proto_depIdxs = []int32{
	0, // 0: collab.pricing.v1.PricingService.IndicativeSpread:input_type -> collab.pricing.v1.IndicativeSpreadRequest
	2, // 1: collab.pricing.v1.PricingService.TotalPremium:input_type -> collab.pricing.v1.TotalPremiumRequest
	1, // 2: collab.pricing.v1.PricingService.IndicativeSpread:output_type -> collab.pricing.v1.IndicativeSpreadResponse
	3, // 3: collab.pricing.v1.PricingService.TotalPremium:output_type -> collab.pricing.v1.TotalPremiumResponse
	2, // [2:4] is the sub-list for method output_type
	0, // [0:2] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_collab_pricing_v1_pricing_proto_init() }
func file_collab_pricing_v1_pricing_proto_init() {
	if File_collab_pricing_v1_pricing_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_collab_pricing_v1_pricing_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*IndicativeSpreadRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_collab_pricing_v1_pricing_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*IndicativeSpreadResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_collab_pricing_v1_pricing_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*TotalPremiumRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_collab_pricing_v1_pricing_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*TotalPremiumResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_collab_pricing_v1_pricing_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_collab_pricing_v1_pricing_proto_goTypes,
		DependencyIndexes: file_collab_pricing_v1_pricing_proto_depIdxs,
		MessageInfos:      file_collab_pricing_v1_pricing_proto_msgTypes,
	}.Build()
	File_collab_pricing_v1_pricing_proto = out.File
	file_collab_pricing_v1_pricing_proto_rawDesc = nil
	file_collab_pricing_v1_pricing_proto_goTypes = nil
	file_collab_pricing_v1_pricing_proto_depIdxs = nil
}
