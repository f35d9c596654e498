// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: collab/vault/v1/vault.proto

package vaultv1

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

type GetVaultInfoRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
}

func (x *GetVaultInfoRequest) Reset() {
	*x = GetVaultInfoRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetVaultInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultInfoRequest) ProtoMessage() {}

func (x *GetVaultInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVaultInfoRequest.ProtoReflect.Descriptor instead.
func (*GetVaultInfoRequest) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{0}
}

func (x *GetVaultInfoRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

type GetVaultInfoResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// spender_account is the ledger principal the vault pulls funds as.
	SpenderAccount string `protobuf:"bytes,1,opt,name=spender_account,json=spenderAccount,proto3" json:"spender_account,omitempty"`
}

func (x *GetVaultInfoResponse) Reset() {
	*x = GetVaultInfoResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetVaultInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultInfoResponse) ProtoMessage() {}

func (x *GetVaultInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVaultInfoResponse.ProtoReflect.Descriptor instead.
func (*GetVaultInfoResponse) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{1}
}

func (x *GetVaultInfoResponse) GetSpenderAccount() string {
	if x != nil {
		return x.SpenderAccount
	}
	return ""
}

type GetUnderlyingAssetRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
}

func (x *GetUnderlyingAssetRequest) Reset() {
	*x = GetUnderlyingAssetRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetUnderlyingAssetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUnderlyingAssetRequest) ProtoMessage() {}

func (x *GetUnderlyingAssetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUnderlyingAssetRequest.ProtoReflect.Descriptor instead.
func (*GetUnderlyingAssetRequest) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{2}
}

func (x *GetUnderlyingAssetRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

type GetUnderlyingAssetResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (x *GetUnderlyingAssetResponse) Reset() {
	*x = GetUnderlyingAssetResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetUnderlyingAssetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUnderlyingAssetResponse) ProtoMessage() {}

func (x *GetUnderlyingAssetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUnderlyingAssetResponse.ProtoReflect.Descriptor instead.
func (*GetUnderlyingAssetResponse) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{3}
}

func (x *GetUnderlyingAssetResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type InvestForRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault       string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	TrancheId   string `protobuf:"bytes,2,opt,name=tranche_id,json=trancheId,proto3" json:"tranche_id,omitempty"`
	Amount      int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Beneficiary string `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
}

func (x *InvestForRequest) Reset() {
	*x = InvestForRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InvestForRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvestForRequest) ProtoMessage() {}

func (x *InvestForRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvestForRequest.ProtoReflect.Descriptor instead.
func (*InvestForRequest) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{4}
}

func (x *InvestForRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *InvestForRequest) GetTrancheId() string {
	if x != nil {
		return x.TrancheId
	}
	return ""
}

func (x *InvestForRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *InvestForRequest) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

type InvestForResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *InvestForResponse) Reset() {
	*x = InvestForResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InvestForResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvestForResponse) ProtoMessage() {}

func (x *InvestForResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvestForResponse.ProtoReflect.Descriptor instead.
func (*InvestForResponse) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{5}
}

type DivestForRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Vault       string `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	TrancheId   string `protobuf:"bytes,2,opt,name=tranche_id,json=trancheId,proto3" json:"tranche_id,omitempty"`
	Amount      int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Beneficiary string `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
}

func (x *DivestForRequest) Reset() {
	*x = DivestForRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DivestForRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DivestForRequest) ProtoMessage() {}

func (x *DivestForRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DivestForRequest.ProtoReflect.Descriptor instead.
func (*DivestForRequest) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{6}
}

func (x *DivestForRequest) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *DivestForRequest) GetTrancheId() string {
	if x != nil {
		return x.TrancheId
	}
	return ""
}

func (x *DivestForRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *DivestForRequest) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

type DivestForResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *DivestForResponse) Reset() {
	*x = DivestForResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_collab_vault_v1_vault_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DivestForResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DivestForResponse) ProtoMessage() {}

func (x *DivestForResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_vault_v1_vault_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DivestForResponse.ProtoReflect.Descriptor instead.
func (*DivestForResponse) Descriptor() ([]byte, []int) {
	return file_collab_vault_v1_vault_proto_rawDescGZIP(), []int{7}
}

var File_collab_vault_v1_vault_proto protoreflect.FileDescriptor

var file_collab_vault_v1_vault_proto_rawDesc = []byte{
	0x0a, 0x1b, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2f, 0x76,
	0x31, 0x2f, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0f, 0x63,
	0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x22, 0x2b,
	0x0a, 0x13, 0x47, 0x65, 0x74, 0x56, 0x61, 0x75, 0x6c, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x22, 0x3f, 0x0a, 0x14, 0x47,
	0x65, 0x74, 0x56, 0x61, 0x75, 0x6c, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x70, 0x65, 0x6e, 0x64, 0x65, 0x72, 0x5f, 0x61,
	0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x73, 0x70,
	0x65, 0x6e, 0x64, 0x65, 0x72, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x31, 0x0a, 0x19,
	0x47, 0x65, 0x74, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x6c, 0x79, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73,
	0x65, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x75,
	0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x22,
	0x32, 0x0a, 0x1a, 0x47, 0x65, 0x74, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x6c, 0x79, 0x69, 0x6e, 0x67,
	0x41, 0x73, 0x73, 0x65, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a,
	0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x74, 0x6f,
	0x6b, 0x65, 0x6e, 0x22, 0x81, 0x01, 0x0a, 0x10, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x75, 0x6c,
	0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x12, 0x1d,
	0x0a, 0x0a, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x74, 0x72, 0x61, 0x6e, 0x63, 0x68, 0x65, 0x49, 0x64, 0x12, 0x16, 0x0a,
	0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x20, 0x0a, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63,
	0x69, 0x61, 0x72, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x62, 0x65, 0x6e, 0x65,
	0x66, 0x69, 0x63, 0x69, 0x61, 0x72, 0x79, 0x22, 0x13, 0x0a, 0x11, 0x49, 0x6e, 0x76, 0x65, 0x73,
	0x74, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x81, 0x01, 0x0a,
	0x10, 0x44, 0x69, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x05, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x72, 0x61, 0x6e, 0x63,
	0x68, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x74, 0x72, 0x61,
	0x6e, 0x63, 0x68, 0x65, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x20,
	0x0a, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63, 0x69, 0x61, 0x72, 0x79, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x62, 0x65, 0x6e, 0x65, 0x66, 0x69, 0x63, 0x69, 0x61, 0x72, 0x79,
	0x22, 0x13, 0x0a, 0x11, 0x44, 0x69, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x32, 0x82, 0x03, 0x0a, 0x0c, 0x56, 0x61, 0x75, 0x6c, 0x74, 0x53,
	0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x5b, 0x0a, 0x0c, 0x47, 0x65, 0x74, 0x56, 0x61, 0x75,
	0x6c, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x24, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e,
	0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x56, 0x61, 0x75, 0x6c,
	0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x63,
	0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x56, 0x61, 0x75, 0x6c, 0x74, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x6d, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x55, 0x6e, 0x64, 0x65, 0x72, 0x6c,
	0x79, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x65, 0x74, 0x12, 0x2a, 0x2e, 0x63, 0x6f, 0x6c, 0x6c,
	0x61, 0x62, 0x2e, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x55,
	0x6e, 0x64, 0x65, 0x72, 0x6c, 0x79, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x65, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76,
	0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x55, 0x6e, 0x64, 0x65, 0x72,
	0x6c, 0x79, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x65, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x52, 0x0a, 0x09, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x12,
	0x21, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x22, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76, 0x61, 0x75, 0x6c,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x6e, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a, 0x09, 0x44, 0x69, 0x76, 0x65, 0x73, 0x74,
	0x46, 0x6f, 0x72, 0x12, 0x21, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e, 0x76, 0x61, 0x75,
	0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x69, 0x76, 0x65, 0x73, 0x74, 0x46, 0x6f, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x22, 0x2e, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2e,
	0x76, 0x61, 0x75, 0x6c, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x69, 0x76, 0x65, 0x73, 0x74, 0x46,
	0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x2c, 0x5a, 0x2a, 0x48, 0x65,
	0x64, 0x67, 0x65, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f,
	0x2f, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x62, 0x2f, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x2f, 0x76, 0x31,
	0x3b, 0x76, 0x61, 0x75, 0x6c, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_collab_vault_v1_vault_proto_rawDescOnce sync.Once
	file_collab_vault_v1_vault_proto_rawDescData = file_collab_vault_v1_vault_proto_rawDesc
)

func file_collab_vault_v1_vault_proto_rawDescGZIP() []byte {
	file_collab_vault_v1_vault_proto_rawDescOnce.Do(func() {
		file_collab_vault_v1_vault_proto_rawDescData = protoimpl.X.CompressGZIP(file_collab_vault_v1_vault_proto_rawDescData)
	})
	return file_collab_vault_v1_vault_proto_rawDescData
}

var file_collab_vault_v1_vault_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_collab_vault_v1_vault_proto_goTypes = []any{
	(*GetVaultInfoRequest)(nil),        // 0: collab.vault.v1.GetVaultInfoRequest
	(*GetVaultInfoResponse)(nil),       // 1: collab.vault.v1.GetVaultInfoResponse
	(*GetUnderlyingAssetRequest)(nil),  // 2: collab.vault.v1.GetUnderlyingAssetRequest
	(*GetUnderlyingAssetResponse)(nil), // 3: collab.vault.v1.GetUnderlyingAssetResponse
	(*InvestForRequest)(nil),           // 4: collab.vault.v1.InvestForRequest
	(*InvestForResponse)(nil),          // 5: collab.vault.v1.InvestForResponse
	(*DivestForRequest)(nil),           // 6: collab.vault.v1.DivestForRequest
	(*DivestForResponse)(nil),          // 7: collab.vault.v1.DivestForResponse
}
var file_collab_vault_v1_vault_proto_depIdxs = []int32{
	0, // 0: collab.vault.v1.VaultService.GetVaultInfo:input_type -> collab.vault.v1.GetVaultInfoRequest
	2, // 1: collab.vault.v1.VaultService.GetUnderlyingAsset:input_type -> collab.vault.v1.GetUnderlyingAssetRequest
	4, // 2: collab.vault.v1.VaultService.InvestFor:input_type -> collab.vault.v1.InvestForRequest
	6, // 3: collab.vault.v1.VaultService.DivestFor:input_type -> collab.vault.v1.DivestForRequest
	1, // 4: collab.vault.v1.VaultService.GetVaultInfo:output_type -> collab.vault.v1.GetVaultInfoResponse
	3, // 5: collab.vault.v1.VaultService.GetUnderlyingAsset:output_type -> collab.vault.v1.GetUnderlyingAssetResponse
	5, // 6: collab.vault.v1.VaultService.InvestFor:output_type -> collab.vault.v1.InvestForResponse
	7, // 7: collab.vault.v1.VaultService.DivestFor:output_type -> collab.vault.v1.DivestForResponse
	4, // [4:8] is the sub-list for method output_type
	0, // [0:4] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_collab_vault_v1_vault_proto_init() }
func file_collab_vault_v1_vault_proto_init() {
	if File_collab_vault_v1_vault_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_collab_vault_v1_vault_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*GetVaultInfoRequest); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*GetVaultInfoResponse); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*GetUnderlyingAssetRequest); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*GetUnderlyingAssetResponse); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*InvestForRequest); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*InvestForResponse); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*DivestForRequest); i {
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
		file_collab_vault_v1_vault_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*DivestForResponse); i {
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
			RawDescriptor: file_collab_vault_v1_vault_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_collab_vault_v1_vault_proto_goTypes,
		DependencyIndexes: file_collab_vault_v1_vault_proto_depIdxs,
		MessageInfos:      file_collab_vault_v1_vault_proto_msgTypes,
	}.Build()
	File_collab_vault_v1_vault_proto = out.File
	file_collab_vault_v1_vault_proto_rawDesc = nil
	file_collab_vault_v1_vault_proto_goTypes = nil
	file_collab_vault_v1_vault_proto_depIdxs = nil
}
