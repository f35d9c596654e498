// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: hedgerouter/compose/v1/compose.proto

package composev1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProtectionTerms struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Notional            int64                  `protobuf:"varint,1,opt,name=notional,proto3" json:"notional,omitempty"`
	RateBps             int64                  `protobuf:"varint,2,opt,name=rate_bps,json=rateBps,proto3" json:"rate_bps,omitempty"`
	Maturity            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=maturity,proto3" json:"maturity,omitempty"`
	Oracle              string                 `protobuf:"bytes,4,opt,name=oracle,proto3" json:"oracle,omitempty"`
	PaymentIntervalDays int32                  `protobuf:"varint,5,opt,name=payment_interval_days,json=paymentIntervalDays,proto3" json:"payment_interval_days,omitempty"`
	CollateralToken     string                 `protobuf:"bytes,6,opt,name=collateral_token,json=collateralToken,proto3" json:"collateral_token,omitempty"`
}

func (x *ProtectionTerms) Reset() {
	*x = ProtectionTerms{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ProtectionTerms) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProtectionTerms) ProtoMessage() {}

func (x *ProtectionTerms) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProtectionTerms.ProtoReflect.Descriptor instead.
func (*ProtectionTerms) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{0}
}

func (x *ProtectionTerms) GetNotional() int64 {
	if x != nil {
		return x.Notional
	}
	return 0
}

func (x *ProtectionTerms) GetRateBps() int64 {
	if x != nil {
		return x.RateBps
	}
	return 0
}

func (x *ProtectionTerms) GetMaturity() *timestamppb.Timestamp {
	if x != nil {
		return x.Maturity
	}
	return nil
}

func (x *ProtectionTerms) GetOracle() string {
	if x != nil {
		return x.Oracle
	}
	return ""
}

func (x *ProtectionTerms) GetPaymentIntervalDays() int32 {
	if x != nil {
		return x.PaymentIntervalDays
	}
	return 0
}

func (x *ProtectionTerms) GetCollateralToken() string {
	if x != nil {
		return x.CollateralToken
	}
	return ""
}

type ComposeWithExistingProtectionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// request_id is the caller-supplied idempotency key (UUID). A reused
	// request_id is rejected before any funds move.
	RequestId    string `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Caller       string `protobuf:"bytes,2,opt,name=caller,proto3" json:"caller,omitempty"`
	Vault        string `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
	TrancheId    string `protobuf:"bytes,4,opt,name=tranche_id,json=trancheId,proto3" json:"tranche_id,omitempty"`
	InvestAmount int64  `protobuf:"varint,5,opt,name=invest_amount,json=investAmount,proto3" json:"invest_amount,omitempty"`
	Protection   string `protobuf:"bytes,6,opt,name=protection,proto3" json:"protection,omitempty"`
	MaxPremium   int64  `protobuf:"varint,7,opt,name=max_premium,json=maxPremium,proto3" json:"max_premium,omitempty"`
}

func (x *ComposeWithExistingProtectionRequest) Reset() {
	*x = ComposeWithExistingProtectionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ComposeWithExistingProtectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComposeWithExistingProtectionRequest) ProtoMessage() {}

func (x *ComposeWithExistingProtectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComposeWithExistingProtectionRequest.ProtoReflect.Descriptor instead.
func (*ComposeWithExistingProtectionRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{1}
}

func (x *ComposeWithExistingProtectionRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ComposeWithExistingProtectionRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ComposeWithExistingProtectionRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *ComposeWithExistingProtectionRequest) GetTrancheId() string {
	if x != nil {
		return x.TrancheId
	}
	return ""
}

func (x *ComposeWithExistingProtectionRequest) GetInvestAmount() int64 {
	if x != nil {
		return x.InvestAmount
	}
	return 0
}

func (x *ComposeWithExistingProtectionRequest) GetProtection() string {
	if x != nil {
		return x.Protection
	}
	return ""
}

func (x *ComposeWithExistingProtectionRequest) GetMaxPremium() int64 {
	if x != nil {
		return x.MaxPremium
	}
	return 0
}

type ComposeWithNewProtectionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	RequestId    string           `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Caller       string           `protobuf:"bytes,2,opt,name=caller,proto3" json:"caller,omitempty"`
	Vault        string           `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
	TrancheId    string           `protobuf:"bytes,4,opt,name=tranche_id,json=trancheId,proto3" json:"tranche_id,omitempty"`
	InvestAmount int64            `protobuf:"varint,5,opt,name=invest_amount,json=investAmount,proto3" json:"invest_amount,omitempty"`
	MaxPremium   int64            `protobuf:"varint,6,opt,name=max_premium,json=maxPremium,proto3" json:"max_premium,omitempty"`
	Terms        *ProtectionTerms `protobuf:"bytes,7,opt,name=terms,proto3" json:"terms,omitempty"`
}

func (x *ComposeWithNewProtectionRequest) Reset() {
	*x = ComposeWithNewProtectionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ComposeWithNewProtectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComposeWithNewProtectionRequest) ProtoMessage() {}

func (x *ComposeWithNewProtectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComposeWithNewProtectionRequest.ProtoReflect.Descriptor instead.
func (*ComposeWithNewProtectionRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{2}
}

func (x *ComposeWithNewProtectionRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ComposeWithNewProtectionRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ComposeWithNewProtectionRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *ComposeWithNewProtectionRequest) GetTrancheId() string {
	if x != nil {
		return x.TrancheId
	}
	return ""
}

func (x *ComposeWithNewProtectionRequest) GetInvestAmount() int64 {
	if x != nil {
		return x.InvestAmount
	}
	return 0
}

func (x *ComposeWithNewProtectionRequest) GetMaxPremium() int64 {
	if x != nil {
		return x.MaxPremium
	}
	return 0
}

func (x *ComposeWithNewProtectionRequest) GetTerms() *ProtectionTerms {
	if x != nil {
		return x.Terms
	}
	return nil
}

type ComposeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Protection   string `protobuf:"bytes,1,opt,name=protection,proto3" json:"protection,omitempty"`
	InvestAmount int64  `protobuf:"varint,2,opt,name=invest_amount,json=investAmount,proto3" json:"invest_amount,omitempty"`
	PremiumPaid  int64  `protobuf:"varint,3,opt,name=premium_paid,json=premiumPaid,proto3" json:"premium_paid,omitempty"`
	Refund       int64  `protobuf:"varint,4,opt,name=refund,proto3" json:"refund,omitempty"`
	Sequence     int64  `protobuf:"varint,5,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (x *ComposeResponse) Reset() {
	*x = ComposeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ComposeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComposeResponse) ProtoMessage() {}

func (x *ComposeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComposeResponse.ProtoReflect.Descriptor instead.
func (*ComposeResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{3}
}

func (x *ComposeResponse) GetProtection() string {
	if x != nil {
		return x.Protection
	}
	return ""
}

func (x *ComposeResponse) GetInvestAmount() int64 {
	if x != nil {
		return x.InvestAmount
	}
	return 0
}

func (x *ComposeResponse) GetPremiumPaid() int64 {
	if x != nil {
		return x.PremiumPaid
	}
	return 0
}

func (x *ComposeResponse) GetRefund() int64 {
	if x != nil {
		return x.Refund
	}
	return 0
}

func (x *ComposeResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type QuoteHedgeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault        string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	InvestAmount int64  `protobuf:"varint,2,opt,name=invest_amount,json=investAmount,proto3" json:"invest_amount,omitempty"`
	TenorDays    int32  `protobuf:"varint,3,opt,name=tenor_days,json=tenorDays,proto3" json:"tenor_days,omitempty"`
}

func (x *QuoteHedgeRequest) Reset() {
	*x = QuoteHedgeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *QuoteHedgeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteHedgeRequest) ProtoMessage() {}

func (x *QuoteHedgeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteHedgeRequest.ProtoReflect.Descriptor instead.
func (*QuoteHedgeRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{4}
}

func (x *QuoteHedgeRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *QuoteHedgeRequest) GetInvestAmount() int64 {
	if x != nil {
		return x.InvestAmount
	}
	return 0
}

func (x *QuoteHedgeRequest) GetTenorDays() int32 {
	if x != nil {
		return x.TenorDays
	}
	return 0
}

type QuoteHedgeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SpreadBps        int64 `protobuf:"varint,1,opt,name=spread_bps,json=spreadBps,proto3" json:"spread_bps,omitempty"`
	EstimatedPremium int64 `protobuf:"varint,2,opt,name=estimated_premium,json=estimatedPremium,proto3" json:"estimated_premium,omitempty"`
	// Carry at the quoted spread over a full year, for cross-tenor comparison.
	AnnualRunningCost int64 `protobuf:"varint,3,opt,name=annual_running_cost,json=annualRunningCost,proto3" json:"annual_running_cost,omitempty"`
}

func (x *QuoteHedgeResponse) Reset() {
	*x = QuoteHedgeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *QuoteHedgeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuoteHedgeResponse) ProtoMessage() {}

func (x *QuoteHedgeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_compose_v1_compose_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuoteHedgeResponse.ProtoReflect.Descriptor instead.
func (*QuoteHedgeResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_compose_v1_compose_proto_rawDescGZIP(), []int{5}
}

func (x *QuoteHedgeResponse) GetSpreadBps() int64 {
	if x != nil {
		return x.SpreadBps
	}
	return 0
}

func (x *QuoteHedgeResponse) GetEstimatedPremium() int64 {
	if x != nil {
		return x.EstimatedPremium
	}
	return 0
}

func (x *QuoteHedgeResponse) GetAnnualRunningCost() int64 {
	if x != nil {
		return x.AnnualRunningCost
	}
	return 0
}

var File_hedgerouter_compose_v1_compose_proto protoreflect.FileDescriptor

var file_hedgerouter_compose_v1_compose_proto_rawDesc = []byte{
	0x0a, 0x24, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x63, 0x6f,
	0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x16, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75,
	0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76, 0x31, 0x1a, 0x1c,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xf7, 0x01,
	0x0a, 0x0f, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x65, 0x72, 0x6d,
	0x73, 0x12, 0x1a, 0x0a, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x12, 0x19, 0x0a,
	0x08, 0x72, 0x61, 0x74, 0x65, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x07, 0x72, 0x61, 0x74, 0x65, 0x42, 0x70, 0x73, 0x12, 0x36, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x75,
	0x72, 0x69, 0x74, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x08, 0x6d, 0x61, 0x74, 0x75, 0x72, 0x69, 0x74, 0x79,
	0x12, 0x16, 0x0a, 0x06, 0x6f, 0x72, 0x61, 0x63, 0x6c, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x6f, 0x72, 0x61, 0x63, 0x6c, 0x65, 0x12, 0x32, 0x0a, 0x15, 0x70, 0x61, 0x79, 0x6d,
	0x65, 0x6e, 0x74, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x76, 0x61, 0x6c, 0x5f, 0x64, 0x61, 0x79,
	0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74,
	0x49, 0x6e, 0x74, 0x65, 0x72, 0x76, 0x61, 0x6c, 0x44, 0x61, 0x79, 0x73, 0x12, 0x29, 0x0a, 0x10,
	0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72,
	0x61, 0x6c, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0xf8, 0x01, 0x0a, 0x24, 0x43, 0x6f, 0x6d, 0x70,
	0x6f, 0x73, 0x65, 0x57, 0x69, 0x74, 0x68, 0x45, 0x78, 0x69, 0x73, 0x74, 0x69, 0x6e, 0x67, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x49, 0x64, 0x12,
	0x16, 0x0a, 0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x12, 0x1d, 0x0a,
	0x0a, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d,
	0x69, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0c, 0x69, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x41, 0x6d, 0x6f, 0x75, 0x6e,
	0x74, 0x12, 0x1e, 0x0a, 0x0a, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x12, 0x1f, 0x0a, 0x0b, 0x6d, 0x61, 0x78, 0x5f, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d,
	0x18, 0x07, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x6d, 0x61, 0x78, 0x50, 0x72, 0x65, 0x6d, 0x69,
	0x75, 0x6d, 0x22, 0x92, 0x02, 0x0a, 0x1f, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x57, 0x69,
	0x74, 0x68, 0x4e, 0x65, 0x77, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x63, 0x61, 0x6c, 0x6c, 0x65, 0x72, 0x12, 0x14, 0x0a,
	0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61,
	0x75, 0x6c, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65, 0x5f, 0x69,
	0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65,
	0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x69, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x5f, 0x61, 0x6d, 0x6f,
	0x75, 0x6e, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x69, 0x6e, 0x76, 0x65, 0x73,
	0x74, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x6d, 0x61, 0x78, 0x5f, 0x70,
	0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x6d, 0x61,
	0x78, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x12, 0x3d, 0x0a, 0x05, 0x74, 0x65, 0x72, 0x6d,
	0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x27, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x65, 0x72, 0x6d, 0x73,
	0x52, 0x05, 0x74, 0x65, 0x72, 0x6d, 0x73, 0x22, 0xad, 0x01, 0x0a, 0x0f, 0x43, 0x6f, 0x6d, 0x70,
	0x6f, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x70,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0a, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x23, 0x0a, 0x0d, 0x69,
	0x6e, 0x76, 0x65, 0x73, 0x74, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x0c, 0x69, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x12, 0x21, 0x0a, 0x0c, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x5f, 0x70, 0x61, 0x69, 0x64,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x50,
	0x61, 0x69, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x06, 0x72, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x12, 0x1a, 0x0a, 0x08, 0x73,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x73,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x6d, 0x0a, 0x11, 0x51, 0x75, 0x6f, 0x74, 0x65,
	0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05,
	0x76, 0x61, 0x75, 0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x75,
	0x6c, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x69, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x5f, 0x61, 0x6d, 0x6f,
	0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x69, 0x6e, 0x76, 0x65, 0x73,
	0x74, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x65, 0x6e, 0x6f, 0x72,
	0x5f, 0x64, 0x61, 0x79, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x09, 0x74, 0x65, 0x6e,
	0x6f, 0x72, 0x44, 0x61, 0x79, 0x73, 0x22, 0x90, 0x01, 0x0a, 0x12, 0x51, 0x75, 0x6f, 0x74, 0x65,
	0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1d, 0x0a,
	0x0a, 0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x09, 0x73, 0x70, 0x72, 0x65, 0x61, 0x64, 0x42, 0x70, 0x73, 0x12, 0x2b, 0x0a, 0x11,
	0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75,
	0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x10, 0x65, 0x73, 0x74, 0x69, 0x6d, 0x61, 0x74,
	0x65, 0x64, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x12, 0x2e, 0x0a, 0x13, 0x61, 0x6e, 0x6e,
	0x75, 0x61, 0x6c, 0x5f, 0x72, 0x75, 0x6e, 0x6e, 0x69, 0x6e, 0x67, 0x5f, 0x63, 0x6f, 0x73, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x11, 0x61, 0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x52, 0x75,
	0x6e, 0x6e, 0x69, 0x6e, 0x67, 0x43, 0x6f, 0x73, 0x74, 0x32, 0xdb, 0x03, 0x0a, 0x0e, 0x43, 0x6f,
	0x6d, 0x70, 0x6f, 0x73, 0x65, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0xac, 0x01, 0x0a,
	0x1d, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x57, 0x69, 0x74, 0x68, 0x45, 0x78, 0x69, 0x73,
	0x74, 0x69, 0x6e, 0x67, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x3c,
	0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d,
	0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x57,
	0x69, 0x74, 0x68, 0x45, 0x78, 0x69, 0x73, 0x74, 0x69, 0x6e, 0x67, 0x50, 0x72, 0x6f, 0x74, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x68,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f,
	0x73, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x24, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1e, 0x3a, 0x01, 0x2a,
	0x22, 0x19, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f,
	0x6e, 0x73, 0x2f, 0x65, 0x78, 0x69, 0x73, 0x74, 0x69, 0x6e, 0x67, 0x12, 0x9d, 0x01, 0x0a, 0x18,
	0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x57, 0x69, 0x74, 0x68, 0x4e, 0x65, 0x77, 0x50, 0x72,
	0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x37, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x57, 0x69, 0x74, 0x68, 0x4e, 0x65, 0x77,
	0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x27, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e,
	0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x6f,
	0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1f, 0x82, 0xd3, 0xe4, 0x93,
	0x02, 0x19, 0x3a, 0x01, 0x2a, 0x22, 0x14, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x70, 0x6f,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2f, 0x6e, 0x65, 0x77, 0x12, 0x7a, 0x0a, 0x0a, 0x51,
	0x75, 0x6f, 0x74, 0x65, 0x48, 0x65, 0x64, 0x67, 0x65, 0x12, 0x29, 0x2e, 0x68, 0x65, 0x64, 0x67,
	0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x51, 0x75, 0x6f, 0x74, 0x65, 0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74,
	0x65, 0x72, 0x2e, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x51, 0x75,
	0x6f, 0x74, 0x65, 0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x22, 0x15, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x0f, 0x3a, 0x01, 0x2a, 0x22, 0x0a, 0x2f, 0x76, 0x31,
	0x2f, 0x71, 0x75, 0x6f, 0x74, 0x65, 0x73, 0x42, 0x35, 0x5a, 0x33, 0x48, 0x65, 0x64, 0x67, 0x65,
	0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x68, 0x65,
	0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73,
	0x65, 0x2f, 0x76, 0x31, 0x3b, 0x63, 0x6f, 0x6d, 0x70, 0x6f, 0x73, 0x65, 0x76, 0x31, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_hedgerouter_compose_v1_compose_proto_rawDescOnce sync.Once
	file_hedgerouter_compose_v1_compose_proto_rawDescData = file_hedgerouter_compose_v1_compose_proto_rawDesc
)

func file_hedgerouter_compose_v1_compose_proto_rawDescGZIP() []byte {
	file_hedgerouter_compose_v1_compose_proto_rawDescOnce.Do(func() {
		file_hedgerouter_compose_v1_compose_proto_rawDescData = protoimpl.X.CompressGZIP(file_hedgerouter_compose_v1_compose_proto_rawDescData)
	})
	return file_hedgerouter_compose_v1_compose_proto_rawDescData
}

var file_hedgerouter_compose_v1_compose_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_hedgerouter_compose_v1_compose_proto_goTypes = []any{
	(*ProtectionTerms)(nil),                      // 0: hedgerouter.compose.v1.ProtectionTerms
	(*ComposeWithExistingProtectionRequest)(nil), // 1: hedgerouter.compose.v1.ComposeWithExistingProtectionRequest
	(*ComposeWithNewProtectionRequest)(nil),      // 2: hedgerouter.compose.v1.ComposeWithNewProtectionRequest
	(*ComposeResponse)(nil),                      // 3: hedgerouter.compose.v1.ComposeResponse
	(*QuoteHedgeRequest)(nil),                    // 4: hedgerouter.compose.v1.QuoteHedgeRequest
	(*QuoteHedgeResponse)(nil),                   // 5: hedgerouter.compose.v1.QuoteHedgeResponse
	(*timestamppb.Timestamp)(nil),                // 6: google.protobuf.Timestamp
}
var file_hedgerouter_compose_v1_compose_proto_depIdxs = []int32{
	6, // 0: hedgerouter.compose.v1.ProtectionTerms.maturity:type_name -> google.protobuf.Timestamp
	0, // 1: hedgerouter.compose.v1.ComposeWithNewProtectionRequest.terms:type_name -> hedgerouter.compose.v1.ProtectionTerms
	1, // 2: hedgerouter.compose.v1.ComposeService.ComposeWithExistingProtection:input_type -> hedgerouter.compose.v1.ComposeWithExistingProtectionRequest
	2, // 3: hedgerouter.compose.v1.ComposeService.ComposeWithNewProtection:input_type -> hedgerouter.compose.v1.ComposeWithNewProtectionRequest
	4, // 4: hedgerouter.compose.v1.ComposeService.QuoteHedge:input_type -> hedgerouter.compose.v1.QuoteHedgeRequest
	3, // 5: hedgerouter.compose.v1.ComposeService.ComposeWithExistingProtection:output_type -> hedgerouter.compose.v1.ComposeResponse
	3, // 6: hedgerouter.compose.v1.ComposeService.ComposeWithNewProtection:output_type -> hedgerouter.compose.v1.ComposeResponse
	5, // 7: hedgerouter.compose.v1.ComposeService.QuoteHedge:output_type -> hedgerouter.compose.v1.QuoteHedgeResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_hedgerouter_compose_v1_compose_proto_init() }
func file_hedgerouter_compose_v1_compose_proto_init() {
	if File_hedgerouter_compose_v1_compose_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_hedgerouter_compose_v1_compose_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*ProtectionTerms); i {
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
		file_hedgerouter_compose_v1_compose_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*ComposeWithExistingProtectionRequest); i {
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
		file_hedgerouter_compose_v1_compose_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*ComposeWithNewProtectionRequest); i {
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
		file_hedgerouter_compose_v1_compose_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*ComposeResponse); i {
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
		file_hedgerouter_compose_v1_compose_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*QuoteHedgeRequest); i {
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
		file_hedgerouter_compose_v1_compose_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*QuoteHedgeResponse); i {
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
			RawDescriptor: file_hedgerouter_compose_v1_compose_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_hedgerouter_compose_v1_compose_proto_goTypes,
		DependencyIndexes: file_hedgerouter_compose_v1_compose_proto_depIdxs,
		MessageInfos:      file_hedgerouter_compose_v1_compose_proto_msgTypes,
	}.Build()
	File_hedgerouter_compose_v1_compose_proto = out.File
	file_hedgerouter_compose_v1_compose_proto_rawDesc = nil
	file_hedgerouter_compose_v1_compose_proto_goTypes = nil
	file_hedgerouter_compose_v1_compose_proto_depIdxs = nil
}
