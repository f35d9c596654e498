// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: collab/protection/v1/protection.proto

package protectionv1

import (
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

type ProtectionStatus int32

const (
	ProtectionStatus_PROTECTION_STATUS_UNMATCHED              ProtectionStatus = 0
	ProtectionStatus_PROTECTION_STATUS_ACTIVE                 ProtectionStatus = 1
	ProtectionStatus_PROTECTION_STATUS_EXPIRED                ProtectionStatus = 2
	ProtectionStatus_PROTECTION_STATUS_CREDIT_EVENT_TRIGGERED ProtectionStatus = 3
	ProtectionStatus_PROTECTION_STATUS_SETTLED                ProtectionStatus = 4
)

// Enum value maps for ProtectionStatus.
var (
	ProtectionStatus_name = map[int32]string{
		0: "PROTECTION_STATUS_UNMATCHED",
		1: "PROTECTION_STATUS_ACTIVE",
		2: "PROTECTION_STATUS_EXPIRED",
		3: "PROTECTION_STATUS_CREDIT_EVENT_TRIGGERED",
		4: "PROTECTION_STATUS_SETTLED",
	}
	ProtectionStatus_value = map[string]int32{
		"PROTECTION_STATUS_UNMATCHED":              0,
		"PROTECTION_STATUS_ACTIVE":                 1,
		"PROTECTION_STATUS_EXPIRED":                2,
		"PROTECTION_STATUS_CREDIT_EVENT_TRIGGERED": 3,
		"PROTECTION_STATUS_SETTLED":                4,
	}
)

func (x ProtectionStatus) Enum() *ProtectionStatus {
	p := new(ProtectionStatus)
	*p = x
	return p
}

func (x ProtectionStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ProtectionStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_collab_protection_v1_protection_proto_enumTypes[0].Descriptor()
}

func (ProtectionStatus) Type() protoreflect.EnumType {
	return &file_collab_protection_v1_protection_proto_enumTypes[0]
}

func (x ProtectionStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ProtectionStatus.Descriptor instead.
func (ProtectionStatus) EnumDescriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{0}
}

type ProtectionTerms struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Notional int64 `protobuf:"varint,1,opt,name=notional,proto3" json:"notional,omitempty"`
	// Annualized premium rate in basis points.
	RateBps             int64                  `protobuf:"varint,2,opt,name=rate_bps,json=rateBps,proto3" json:"rate_bps,omitempty"`
	Maturity            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=maturity,proto3" json:"maturity,omitempty"`
	Oracle              string                 `protobuf:"bytes,4,opt,name=oracle,proto3" json:"oracle,omitempty"`
	PaymentIntervalDays int32                  `protobuf:"varint,5,opt,name=payment_interval_days,json=paymentIntervalDays,proto3" json:"payment_interval_days,omitempty"`
	CollateralToken     string                 `protobuf:"bytes,6,opt,name=collateral_token,json=collateralToken,proto3" json:"collateral_token,omitempty"`
}

func (x *ProtectionTerms) Reset() {
	*x = ProtectionTerms{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ProtectionTerms) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProtectionTerms) ProtoMessage() {}

func (x *ProtectionTerms) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[0]
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
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{0}
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

type GetContractInfoRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *GetContractInfoRequest) Reset() {
	*x = GetContractInfoRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetContractInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractInfoRequest) ProtoMessage() {}

func (x *GetContractInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractInfoRequest.ProtoReflect.Descriptor instead.
func (*GetContractInfoRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{1}
}

func (x *GetContractInfoRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type GetContractInfoResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// spender_account is the ledger principal the contract pulls premium as.
	SpenderAccount string `protobuf:"bytes,1,opt,name=spender_account,json=spenderAccount,proto3" json:"spender_account,omitempty"`
}

func (x *GetContractInfoResponse) Reset() {
	*x = GetContractInfoResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetContractInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractInfoResponse) ProtoMessage() {}

func (x *GetContractInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractInfoResponse.ProtoReflect.Descriptor instead.
func (*GetContractInfoResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{2}
}

func (x *GetContractInfoResponse) GetSpenderAccount() string {
	if x != nil {
		return x.SpenderAccount
	}
	return ""
}

type GetStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *GetStatusRequest) Reset() {
	*x = GetStatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusRequest) ProtoMessage() {}

func (x *GetStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusRequest.ProtoReflect.Descriptor instead.
func (*GetStatusRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{3}
}

func (x *GetStatusRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type GetStatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status ProtectionStatus `protobuf:"varint,1,opt,name=status,proto3,enum=collab.protection.v1.ProtectionStatus" json:"status,omitempty"`
}

func (x *GetStatusResponse) Reset() {
	*x = GetStatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusResponse) ProtoMessage() {}

func (x *GetStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusResponse.ProtoReflect.Descriptor instead.
func (*GetStatusResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{4}
}

func (x *GetStatusResponse) GetStatus() ProtectionStatus {
	if x != nil {
		return x.Status
	}
	return ProtectionStatus_PROTECTION_STATUS_UNMATCHED
}

type GetTermsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *GetTermsRequest) Reset() {
	*x = GetTermsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetTermsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTermsRequest) ProtoMessage() {}

func (x *GetTermsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTermsRequest.ProtoReflect.Descriptor instead.
func (*GetTermsRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{5}
}

func (x *GetTermsRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type GetTermsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Terms *ProtectionTerms `protobuf:"bytes,1,opt,name=terms,proto3" json:"terms,omitempty"`
}

func (x *GetTermsResponse) Reset() {
	*x = GetTermsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetTermsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTermsResponse) ProtoMessage() {}

func (x *GetTermsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTermsResponse.ProtoReflect.Descriptor instead.
func (*GetTermsResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{6}
}

func (x *GetTermsResponse) GetTerms() *ProtectionTerms {
	if x != nil {
		return x.Terms
	}
	return nil
}

type BuyProtectionForRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract    string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Notional    int64  `protobuf:"varint,2,opt,name=notional,proto3" json:"notional,omitempty"`
	MaxPremium  int64  `protobuf:"varint,3,opt,name=max_premium,json=maxPremium,proto3" json:"max_premium,omitempty"`
	Beneficiary string `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
}

func (x *BuyProtectionForRequest) Reset() {
	*x = BuyProtectionForRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BuyProtectionForRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuyProtectionForRequest) ProtoMessage() {}

func (x *BuyProtectionForRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuyProtectionForRequest.ProtoReflect.Descriptor instead.
func (*BuyProtectionForRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{7}
}

func (x *BuyProtectionForRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

func (x *BuyProtectionForRequest) GetNotional() int64 {
	if x != nil {
		return x.Notional
	}
	return 0
}

func (x *BuyProtectionForRequest) GetMaxPremium() int64 {
	if x != nil {
		return x.MaxPremium
	}
	return 0
}

func (x *BuyProtectionForRequest) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

type BuyProtectionForResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *BuyProtectionForResponse) Reset() {
	*x = BuyProtectionForResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BuyProtectionForResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuyProtectionForResponse) ProtoMessage() {}

func (x *BuyProtectionForResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuyProtectionForResponse.ProtoReflect.Descriptor instead.
func (*BuyProtectionForResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{8}
}

type CancelProtectionForRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract    string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Beneficiary string `protobuf:"bytes,2,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
}

func (x *CancelProtectionForRequest) Reset() {
	*x = CancelProtectionForRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelProtectionForRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelProtectionForRequest) ProtoMessage() {}

func (x *CancelProtectionForRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelProtectionForRequest.ProtoReflect.Descriptor instead.
func (*CancelProtectionForRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{9}
}

func (x *CancelProtectionForRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

func (x *CancelProtectionForRequest) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

type CancelProtectionForResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *CancelProtectionForResponse) Reset() {
	*x = CancelProtectionForResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CancelProtectionForResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelProtectionForResponse) ProtoMessage() {}

func (x *CancelProtectionForResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelProtectionForResponse.ProtoReflect.Descriptor instead.
func (*CancelProtectionForResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{10}
}

type CreateProtectionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Underlying string           `protobuf:"bytes,1,opt,name=underlying,proto3" json:"underlying,omitempty"`
	Terms      *ProtectionTerms `protobuf:"bytes,2,opt,name=terms,proto3" json:"terms,omitempty"`
}

func (x *CreateProtectionRequest) Reset() {
	*x = CreateProtectionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateProtectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProtectionRequest) ProtoMessage() {}

func (x *CreateProtectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProtectionRequest.ProtoReflect.Descriptor instead.
func (*CreateProtectionRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{11}
}

func (x *CreateProtectionRequest) GetUnderlying() string {
	if x != nil {
		return x.Underlying
	}
	return ""
}

func (x *CreateProtectionRequest) GetTerms() *ProtectionTerms {
	if x != nil {
		return x.Terms
	}
	return nil
}

type CreateProtectionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *CreateProtectionResponse) Reset() {
	*x = CreateProtectionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateProtectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProtectionResponse) ProtoMessage() {}

func (x *CreateProtectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProtectionResponse.ProtoReflect.Descriptor instead.
func (*CreateProtectionResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{12}
}

func (x *CreateProtectionResponse) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type RetireProtectionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *RetireProtectionRequest) Reset() {
	*x = RetireProtectionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RetireProtectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetireProtectionRequest) ProtoMessage() {}

func (x *RetireProtectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetireProtectionRequest.ProtoReflect.Descriptor instead.
func (*RetireProtectionRequest) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{13}
}

func (x *RetireProtectionRequest) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type RetireProtectionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *RetireProtectionResponse) Reset() {
	*x = RetireProtectionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_protection_v1_protection_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RetireProtectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetireProtectionResponse) ProtoMessage() {}

func (x *RetireProtectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_protection_v1_protection_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetireProtectionResponse.ProtoReflect.Descriptor instead.
func (*RetireProtectionResponse) Descriptor() ([]byte, []int) {
	return file_collab_protection_v1_protection_proto_rawDescGZIP(), []int{14}
}

var File_collab_protection_v1_protection_proto protoreflect.FileDescriptor

var file_collab_protection_v1_protection_proto_rawDesc = []byte{
	0x0a, 0x25, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x14, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67,
	0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74,
	0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xf7,
	0x01, 0x0a, 0x0f, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x65, 0x72,
	0x6d, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x12, 0x19,
	0x0a, 0x08, 0x72, 0x61, 0x74, 0x65, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x07, 0x72, 0x61, 0x74, 0x65, 0x42, 0x70, 0x73, 0x12, 0x36, 0x0a, 0x08, 0x6d, 0x61, 0x74,
	0x75, 0x72, 0x69, 0x74, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x08, 0x6d, 0x61, 0x74, 0x75, 0x72, 0x69, 0x74,
	0x79, 0x12, 0x16, 0x0a, 0x06, 0x6f, 0x72, 0x61, 0x63, 0x6c, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x6f, 0x72, 0x61, 0x63, 0x6c, 0x65, 0x12, 0x32, 0x0a, 0x15, 0x70, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x76, 0x61, 0x6c, 0x5f, 0x64, 0x61,
	0x79, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e,
	0x74, 0x49, 0x6e, 0x74, 0x65, 0x72, 0x76, 0x61, 0x6c, 0x44, 0x61, 0x79, 0x73, 0x12, 0x29, 0x0a,
	0x10, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x5f, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x74, 0x65,
	0x72, 0x61, 0x6c, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0x34, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x43,
	0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x22, 0x42,
	0x0a, 0x17, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x49, 0x6e, 0x66,
	0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x70, 0x65,
	0x6e, 0x64, 0x65, 0x72, 0x5f, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0e, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x65, 0x72, 0x41, 0x63, 0x63, 0x6f, 0x75,
	0x6e, 0x74, 0x22, 0x2e, 0x0a, 0x10, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61,
	0x63, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61,
	0x63, 0x74, 0x22, 0x53, 0x0a, 0x11, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3e, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x26, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52,
	0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x22, 0x2d, 0x0a, 0x0f, 0x47, 0x65, 0x74, 0x54, 0x65,
	0x72, 0x6d, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f,
	0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f,
	0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x22, 0x4f, 0x0a, 0x10, 0x47, 0x65, 0x74, 0x54, 0x65, 0x72,
	0x6d, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3b, 0x0a, 0x05, 0x74, 0x65,
	0x72, 0x6d, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x25, 0x2e, 0x63, 0x6f, 0x6c, 0x6c,
	0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x65, 0x72, 0x6d, 0x73,
	0x52, 0x05, 0x74, 0x65, 0x72, 0x6d, 0x73, 0x22, 0x94, 0x01, 0x0a, 0x17, 0x42, 0x75, 0x79, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x12,
	0x1a, 0x0a, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x08, 0x6e, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x61, 0x6c, 0x12, 0x1f, 0x0a, 0x0b, 0x6d,
	0x61, 0x78, 0x5f, 0x70, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0a, 0x6d, 0x61, 0x78, 0x50, 0x72, 0x65, 0x6d, 0x69, 0x75, 0x6d, 0x12, 0x20, 0x0a, 0x0b,
	0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63, 0x69, 0x61, 0x72, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63, 0x69, 0x61, 0x72, 0x79, 0x22, 0x1a,
	0x0a, 0x18, 0x42, 0x75, 0x79, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46,
	0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x5a, 0x0a, 0x1a, 0x43, 0x61,
	0x6e, 0x63, 0x65, 0x6c, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74,
	0x72, 0x61, 0x63, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74,
	0x72, 0x61, 0x63, 0x74, 0x12, 0x20, 0x0a, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63, 0x69,
	0x61, 0x72, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66,
	0x69, 0x63, 0x69, 0x61, 0x72, 0x79, 0x22, 0x1d, 0x0a, 0x1b, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c,
	0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x76, 0x0a, 0x17, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1e, 0x0a, 0x0a, 0x75, 0x6e, 0x64, 0x65, 0x72, 0x6c, 0x79, 0x69, 0x6e, 0x67, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x75, 0x6e, 0x64, 0x65, 0x72, 0x6c, 0x79, 0x69, 0x6e, 0x67,
	0x12, 0x3b, 0x0a, 0x05, 0x74, 0x65, 0x72, 0x6d, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x25, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x54, 0x65, 0x72, 0x6d, 0x73, 0x52, 0x05, 0x74, 0x65, 0x72, 0x6d, 0x73, 0x22, 0x36, 0x0a,
	0x18, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e,
	0x74, 0x72, 0x61, 0x63, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e,
	0x74, 0x72, 0x61, 0x63, 0x74, 0x22, 0x35, 0x0a, 0x17, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x22, 0x1a, 0x0a, 0x18,
	0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2a, 0xbd, 0x01, 0x0a, 0x10, 0x50, 0x72, 0x6f,
	0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1f, 0x0a,
	0x1b, 0x50, 0x52, 0x4f, 0x54, 0x45, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x41, 0x54,
	0x55, 0x53, 0x5f, 0x55, 0x4e, 0x4d, 0x41, 0x54, 0x43, 0x48, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1c,
	0x0a, 0x18, 0x50, 0x52, 0x4f, 0x54, 0x45, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x41,
	0x54, 0x55, 0x53, 0x5f, 0x41, 0x43, 0x54, 0x49, 0x56, 0x45, 0x10, 0x01, 0x12, 0x1d, 0x0a, 0x19,
	0x50, 0x52, 0x4f, 0x54, 0x45, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55,
	0x53, 0x5f, 0x45, 0x58, 0x50, 0x49, 0x52, 0x45, 0x44, 0x10, 0x02, 0x12, 0x2c, 0x0a, 0x28, 0x50,
	0x52, 0x4f, 0x54, 0x45, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53,
	0x5f, 0x43, 0x52, 0x45, 0x44, 0x49, 0x54, 0x5f, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x52,
	0x49, 0x47, 0x47, 0x45, 0x52, 0x45, 0x44, 0x10, 0x03, 0x12, 0x1d, 0x0a, 0x19, 0x50, 0x52, 0x4f,
	0x54, 0x45, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x55, 0x53, 0x5f, 0x53,
	0x45, 0x54, 0x54, 0x4c, 0x45, 0x44, 0x10, 0x04, 0x32, 0xab, 0x04, 0x0a, 0x11, 0x50, 0x72, 0x6f,
	0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x6e,
	0x0a, 0x0f, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74, 0x49, 0x6e, 0x66,
	0x6f, 0x12, 0x2c, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74,
	0x72, 0x61, 0x63, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x2d, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x61,
	0x63, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5c,
	0x0a, 0x09, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x26, 0x2e, 0x63, 0x6f,
	0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x59, 0x0a, 0x08,
	0x47, 0x65, 0x74, 0x54, 0x65, 0x72, 0x6d, 0x73, 0x12, 0x25, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61,
	0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e,
	0x47, 0x65, 0x74, 0x54, 0x65, 0x72, 0x6d, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x26, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x54, 0x65, 0x72, 0x6d, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x71, 0x0a, 0x10, 0x42, 0x75, 0x79, 0x50, 0x72,
	0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f, 0x72, 0x12, 0x2d, 0x2e, 0x63, 0x6f,
	0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e,
	0x76, 0x31, 0x2e, 0x42, 0x75, 0x79, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x46, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2e, 0x2e, 0x63, 0x6f, 0x6c,
	0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76,
	0x31, 0x2e, 0x42, 0x75, 0x79, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46,
	0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x7a, 0x0a, 0x13, 0x43, 0x61,
	0x6e, 0x63, 0x65, 0x6c, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f,
	0x72, 0x12, 0x30, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65, 0x6c, 0x50,
	0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x31, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x61, 0x6e, 0x63, 0x65,
	0x6c, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x6f, 0x72, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x32, 0x80, 0x02, 0x0a, 0x18, 0x50, 0x72, 0x6f, 0x74, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x46, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x79, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x71, 0x0a, 0x10, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x72, 0x6f,
	0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2d, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2e, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x71, 0x0a, 0x10, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65,
	0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x2d, 0x2e, 0x63, 0x6f, 0x6c,
	0x6c, 0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76,
	0x31, 0x2e, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69,
	0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2e, 0x2e, 0x63, 0x6f, 0x6c, 0x6c,
	0x61, 0x62, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x2e, 0x76, 0x31,
	0x2e, 0x52, 0x65, 0x74, 0x69, 0x72, 0x65, 0x50, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x36, 0x5a, 0x34, 0x48, 0x65, 0x64,
	0x67, 0x65, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f,
	0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x2f, 0x76, 0x31, 0x3b, 0x70, 0x72, 0x6f, 0x74, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x76,
	0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_collab_protection_v1_protection_proto_rawDescOnce sync.Once
	file_collab_protection_v1_protection_proto_rawDescData = file_collab_protection_v1_protection_proto_rawDesc
)

func file_collab_protection_v1_protection_proto_rawDescGZIP() []byte {
	file_collab_protection_v1_protection_proto_rawDescOnce.Do(func() {
		file_collab_protection_v1_protection_proto_rawDescData = protoimpl.X.CompressGZIP(file_collab_protection_v1_protection_proto_rawDescData)
	})
	return file_collab_protection_v1_protection_proto_rawDescData
}

var file_collab_protection_v1_protection_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_collab_protection_v1_protection_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_collab_protection_v1_protection_proto_goTypes = []any{
	(ProtectionStatus)(0),               // 0: collab.protection.v1.ProtectionStatus
	(*ProtectionTerms)(nil),             // 1: collab.protection.v1.ProtectionTerms
	(*GetContractInfoRequest)(nil),      // 2: collab.protection.v1.GetContractInfoRequest
	(*GetContractInfoResponse)(nil),     // 3: collab.protection.v1.GetContractInfoResponse
	(*GetStatusRequest)(nil),            // 4: collab.protection.v1.GetStatusRequest
	(*GetStatusResponse)(nil),           // 5: collab.protection.v1.GetStatusResponse
	(*GetTermsRequest)(nil),             // 6: collab.protection.v1.GetTermsRequest
	(*GetTermsResponse)(nil),            // 7: collab.protection.v1.GetTermsResponse
	(*BuyProtectionForRequest)(nil),     // 8: collab.protection.v1.BuyProtectionForRequest
	(*BuyProtectionForResponse)(nil),    // 9: collab.protection.v1.BuyProtectionForResponse
	(*CancelProtectionForRequest)(nil),  // 10: collab.protection.v1.CancelProtectionForRequest
	(*CancelProtectionForResponse)(nil), // 11: collab.protection.v1.CancelProtectionForResponse
	(*CreateProtectionRequest)(nil),     // 12: collab.protection.v1.CreateProtectionRequest
	(*CreateProtectionResponse)(nil),    // 13: collab.protection.v1.CreateProtectionResponse
	(*RetireProtectionRequest)(nil),     // 14: collab.protection.v1.RetireProtectionRequest
	(*RetireProtectionResponse)(nil),    // 15: collab.protection.v1.RetireProtectionResponse
	(*timestamppb.Timestamp)(nil),       // 16: google.protobuf.Timestamp
}
var file_collab_protection_v1_protection_proto_depIdxs = []int32{
	16, // 0: collab.protection.v1.ProtectionTerms.maturity:type_name -> google.protobuf.Timestamp
	0,  // 1: collab.protection.v1.GetStatusResponse.status:type_name -> collab.protection.v1.ProtectionStatus
	1,  // 2: collab.protection.v1.GetTermsResponse.terms:type_name -> collab.protection.v1.ProtectionTerms
	1,  // 3: collab.protection.v1.CreateProtectionRequest.terms:type_name -> collab.protection.v1.ProtectionTerms
	2,  // 4: collab.protection.v1.ProtectionService.GetContractInfo:input_type -> collab.protection.v1.GetContractInfoRequest
	4,  // 5: collab.protection.v1.ProtectionService.GetStatus:input_type -> collab.protection.v1.GetStatusRequest
	6,  // 6: collab.protection.v1.ProtectionService.GetTerms:input_type -> collab.protection.v1.GetTermsRequest
	8,  // 7: collab.protection.v1.ProtectionService.BuyProtectionFor:input_type -> collab.protection.v1.BuyProtectionForRequest
	10, // 8: collab.protection.v1.ProtectionService.CancelProtectionFor:input_type -> collab.protection.v1.CancelProtectionForRequest
	12, // 9: collab.protection.v1.ProtectionFactoryService.CreateProtection:input_type -> collab.protection.v1.CreateProtectionRequest
	14, // 10: collab.protection.v1.ProtectionFactoryService.RetireProtection:input_type -> collab.protection.v1.RetireProtectionRequest
	3,  // 11: collab.protection.v1.ProtectionService.GetContractInfo:output_type -> collab.protection.v1.GetContractInfoResponse
	5,  // 12: collab.protection.v1.ProtectionService.GetStatus:output_type -> collab.protection.v1.GetStatusResponse
	7,  // 13: collab.protection.v1.ProtectionService.GetTerms:output_type -> collab.protection.v1.GetTermsResponse
	9,  // 14: collab.protection.v1.ProtectionService.BuyProtectionFor:output_type -> collab.protection.v1.BuyProtectionForResponse
	11, // 15: collab.protection.v1.ProtectionService.CancelProtectionFor:output_type -> collab.protection.v1.CancelProtectionForResponse
	13, // 16: collab.protection.v1.ProtectionFactoryService.CreateProtection:output_type -> collab.protection.v1.CreateProtectionResponse
	15, // 17: collab.protection.v1.ProtectionFactoryService.RetireProtection:output_type -> collab.protection.v1.RetireProtectionResponse
	11, // [11:18] is the sub-list for method output_type
	4,  // [4:11] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_collab_protection_v1_protection_proto_init() }
func file_collab_protection_v1_protection_proto_init() {
	if File_collab_protection_v1_protection_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_collab_protection_v1_protection_proto_msgTypes[0].Exporter = func(v any, i int) any {
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
		file_collab_protection_v1_protection_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*GetContractInfoRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*GetContractInfoResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*GetStatusRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*GetStatusResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*GetTermsRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*GetTermsResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*BuyProtectionForRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*BuyProtectionForResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*CancelProtectionForRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*CancelProtectionForResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*CreateProtectionRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*CreateProtectionResponse); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*RetireProtectionRequest); i {
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
		file_collab_protection_v1_protection_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*RetireProtectionResponse); i {
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
			RawDescriptor: file_collab_protection_v1_protection_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_collab_protection_v1_protection_proto_goTypes,
		DependencyIndexes: file_collab_protection_v1_protection_proto_depIdxs,
		EnumInfos:         file_collab_protection_v1_protection_proto_enumTypes,
		MessageInfos:      file_collab_protection_v1_protection_proto_msgTypes,
	}.Build()
	File_collab_protection_v1_protection_proto = out.File
	file_collab_protection_v1_protection_proto_rawDesc = nil
	file_collab_protection_v1_protection_proto_goTypes = nil
	file_collab_protection_v1_protection_proto_depIdxs = nil
}
