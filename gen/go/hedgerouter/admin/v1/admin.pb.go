// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: hedgerouter/admin/v1/admin.proto

package adminv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
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

type PauseRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
}

func (x *PauseRequest) Reset() {
	*x = PauseRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PauseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseRequest) ProtoMessage() {}

func (x *PauseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseRequest.ProtoReflect.Descriptor instead.
func (*PauseRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{0}
}

func (x *PauseRequest) GetAuthority() string {
	if x != nil {
		return x.Authority
	}
	return ""
}

type PauseResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Paused   bool  `protobuf:"varint,1,opt,name=paused,proto3" json:"paused,omitempty"`
	Sequence int64 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (x *PauseResponse) Reset() {
	*x = PauseResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PauseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseResponse) ProtoMessage() {}

func (x *PauseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseResponse.ProtoReflect.Descriptor instead.
func (*PauseResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *PauseResponse) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

func (x *PauseResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type UnpauseRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
}

func (x *UnpauseRequest) Reset() {
	*x = UnpauseRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UnpauseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpauseRequest) ProtoMessage() {}

func (x *UnpauseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpauseRequest.ProtoReflect.Descriptor instead.
func (*UnpauseRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{2}
}

func (x *UnpauseRequest) GetAuthority() string {
	if x != nil {
		return x.Authority
	}
	return ""
}

type UnpauseResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Paused   bool  `protobuf:"varint,1,opt,name=paused,proto3" json:"paused,omitempty"`
	Sequence int64 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (x *UnpauseResponse) Reset() {
	*x = UnpauseResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UnpauseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpauseResponse) ProtoMessage() {}

func (x *UnpauseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpauseResponse.ProtoReflect.Descriptor instead.
func (*UnpauseResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *UnpauseResponse) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

func (x *UnpauseResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type GetRouterStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetRouterStatusRequest) Reset() {
	*x = GetRouterStatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRouterStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRouterStatusRequest) ProtoMessage() {}

func (x *GetRouterStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRouterStatusRequest.ProtoReflect.Descriptor instead.
func (*GetRouterStatusRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{4}
}

type GetRouterStatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Paused        bool   `protobuf:"varint,1,opt,name=paused,proto3" json:"paused,omitempty"`
	Authority     string `protobuf:"bytes,2,opt,name=authority,proto3" json:"authority,omitempty"`
	LastSequence  int64  `protobuf:"varint,3,opt,name=last_sequence,json=lastSequence,proto3" json:"last_sequence,omitempty"`
	UptimeSeconds int64  `protobuf:"varint,4,opt,name=uptime_seconds,json=uptimeSeconds,proto3" json:"uptime_seconds,omitempty"`
}

func (x *GetRouterStatusResponse) Reset() {
	*x = GetRouterStatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRouterStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRouterStatusResponse) ProtoMessage() {}

func (x *GetRouterStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRouterStatusResponse.ProtoReflect.Descriptor instead.
func (*GetRouterStatusResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *GetRouterStatusResponse) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

func (x *GetRouterStatusResponse) GetAuthority() string {
	if x != nil {
		return x.Authority
	}
	return ""
}

func (x *GetRouterStatusResponse) GetLastSequence() int64 {
	if x != nil {
		return x.LastSequence
	}
	return 0
}

func (x *GetRouterStatusResponse) GetUptimeSeconds() int64 {
	if x != nil {
		return x.UptimeSeconds
	}
	return 0
}

type VerifyIntegrityRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *VerifyIntegrityRequest) Reset() {
	*x = VerifyIntegrityRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *VerifyIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityRequest) ProtoMessage() {}

func (x *VerifyIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{6}
}

type VerifyIntegrityResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Passed                bool   `protobuf:"varint,1,opt,name=passed,proto3" json:"passed,omitempty"`
	MaxSequence           int64  `protobuf:"varint,2,opt,name=max_sequence,json=maxSequence,proto3" json:"max_sequence,omitempty"`
	FirstMismatchSequence int64  `protobuf:"varint,3,opt,name=first_mismatch_sequence,json=firstMismatchSequence,proto3" json:"first_mismatch_sequence,omitempty"`
	ErrorDetail           string `protobuf:"bytes,4,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
}

func (x *VerifyIntegrityResponse) Reset() {
	*x = VerifyIntegrityResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *VerifyIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityResponse) ProtoMessage() {}

func (x *VerifyIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_hedgerouter_admin_v1_admin_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_hedgerouter_admin_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *VerifyIntegrityResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *VerifyIntegrityResponse) GetMaxSequence() int64 {
	if x != nil {
		return x.MaxSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetFirstMismatchSequence() int64 {
	if x != nil {
		return x.FirstMismatchSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

var File_hedgerouter_admin_v1_admin_proto protoreflect.FileDescriptor

var file_hedgerouter_admin_v1_admin_proto_rawDesc = []byte{
	0x0a, 0x20, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x61, 0x64,
	0x6d, 0x69, 0x6e, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x14, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e,
	0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x2c, 0x0a, 0x0c, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72,
	0x69, 0x74, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61, 0x75, 0x74, 0x68, 0x6f,
	0x72, 0x69, 0x74, 0x79, 0x22, 0x43, 0x0a, 0x0d, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x12, 0x1a, 0x0a,
	0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x2e, 0x0a, 0x0e, 0x55, 0x6e, 0x70,
	0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x61,
	0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x22, 0x45, 0x0a, 0x0f, 0x55, 0x6e, 0x70,
	0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06,
	0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61,
	0x75, 0x73, 0x65, 0x64, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65,
	0x22, 0x18, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x53, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x9b, 0x01, 0x0a, 0x17, 0x47,
	0x65, 0x74, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x12, 0x1c,
	0x0a, 0x09, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x12, 0x23, 0x0a, 0x0d,
	0x6c, 0x61, 0x73, 0x74, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0c, 0x6c, 0x61, 0x73, 0x74, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x12, 0x25, 0x0a, 0x0e, 0x75, 0x70, 0x74, 0x69, 0x6d, 0x65, 0x5f, 0x73, 0x65, 0x63, 0x6f,
	0x6e, 0x64, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x75, 0x70, 0x74, 0x69, 0x6d,
	0x65, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x22, 0x18, 0x0a, 0x16, 0x56, 0x65, 0x72, 0x69,
	0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x22, 0xaf, 0x01, 0x0a, 0x17, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74,
	0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16,
	0x0a, 0x06, 0x70, 0x61, 0x73, 0x73, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06,
	0x70, 0x61, 0x73, 0x73, 0x65, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x6d, 0x61, 0x78, 0x5f, 0x73, 0x65,
	0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x6d, 0x61,
	0x78, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x36, 0x0a, 0x17, 0x66, 0x69, 0x72,
	0x73, 0x74, 0x5f, 0x6d, 0x69, 0x73, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x73, 0x65, 0x71, 0x75,
	0x65, 0x6e, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x15, 0x66, 0x69, 0x72, 0x73,
	0x74, 0x4d, 0x69, 0x73, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x12, 0x21, 0x0a, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x64, 0x65, 0x74, 0x61, 0x69,
	0x6c, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x44, 0x65,
	0x74, 0x61, 0x69, 0x6c, 0x32, 0x95, 0x04, 0x0a, 0x0c, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x53, 0x65,
	0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x6c, 0x0a, 0x05, 0x50, 0x61, 0x75, 0x73, 0x65, 0x12, 0x22,
	0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x23, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72,
	0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1a, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x14, 0x3a,
	0x01, 0x2a, 0x22, 0x0f, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x70, 0x61,
	0x75, 0x73, 0x65, 0x12, 0x74, 0x0a, 0x07, 0x55, 0x6e, 0x70, 0x61, 0x75, 0x73, 0x65, 0x12, 0x24,
	0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x6e, 0x70, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74,
	0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x6e, 0x70, 0x61,
	0x75, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1c, 0x82, 0xd3, 0xe4,
	0x93, 0x02, 0x16, 0x3a, 0x01, 0x2a, 0x22, 0x11, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69,
	0x6e, 0x2f, 0x75, 0x6e, 0x70, 0x61, 0x75, 0x73, 0x65, 0x12, 0x88, 0x01, 0x0a, 0x0f, 0x47, 0x65,
	0x74, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x2c, 0x2e,
	0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69,
	0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x68, 0x65,
	0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x18, 0x82, 0xd3, 0xe4, 0x93,
	0x02, 0x12, 0x12, 0x10, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x73, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x12, 0x95, 0x01, 0x0a, 0x0f, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49,
	0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x12, 0x2c, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e,
	0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2d, 0x2e, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f,
	0x75, 0x74, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65,
	0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x25, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1f, 0x3a, 0x01, 0x2a,
	0x22, 0x1a, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x76, 0x65, 0x72, 0x69,
	0x66, 0x79, 0x2d, 0x69, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x42, 0x31, 0x5a, 0x2f,
	0x48, 0x65, 0x64, 0x67, 0x65, 0x52, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f,
	0x67, 0x6f, 0x2f, 0x68, 0x65, 0x64, 0x67, 0x65, 0x72, 0x6f, 0x75, 0x74, 0x65, 0x72, 0x2f, 0x61,
	0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x76, 0x31, 0x3b, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x76, 0x31, 0x62,
	0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_hedgerouter_admin_v1_admin_proto_rawDescOnce sync.Once
	file_hedgerouter_admin_v1_admin_proto_rawDescData = file_hedgerouter_admin_v1_admin_proto_rawDesc
)

func file_hedgerouter_admin_v1_admin_proto_rawDescGZIP() []byte {
	file_hedgerouter_admin_v1_admin_proto_rawDescOnce.Do(func() {
		file_hedgerouter_admin_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(file_hedgerouter_admin_v1_admin_proto_rawDescData)
	})
	return file_hedgerouter_admin_v1_admin_proto_rawDescData
}

var file_hedgerouter_admin_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_hedgerouter_admin_v1_admin_proto_goTypes = []any{
	(*PauseRequest)(nil),            // 0: hedgerouter.admin.v1.PauseRequest
	(*PauseResponse)(nil),           // 1: hedgerouter.admin.v1.PauseResponse
	(*UnpauseRequest)(nil),          // 2: hedgerouter.admin.v1.UnpauseRequest
	(*UnpauseResponse)(nil),         // 3: hedgerouter.admin.v1.UnpauseResponse
	(*GetRouterStatusRequest)(nil),  // 4: hedgerouter.admin.v1.GetRouterStatusRequest
	(*GetRouterStatusResponse)(nil), // 5: hedgerouter.admin.v1.GetRouterStatusResponse
	(*VerifyIntegrityRequest)(nil),  // 6: hedgerouter.admin.v1.VerifyIntegrityRequest
	(*VerifyIntegrityResponse)(nil), // 7: hedgerouter.admin.v1.VerifyIntegrityResponse
}
var file_hedgerouter_admin_v1_admin_proto_depIdxs = []int32{
	0, // 0: hedgerouter.admin.v1.AdminService.Pause:input_type -> hedgerouter.admin.v1.PauseRequest
	2, // 1: hedgerouter.admin.v1.AdminService.Unpause:input_type -> hedgerouter.admin.v1.UnpauseRequest
	4, // 2: hedgerouter.admin.v1.AdminService.GetRouterStatus:input_type -> hedgerouter.admin.v1.GetRouterStatusRequest
	6, // 3: hedgerouter.admin.v1.AdminService.VerifyIntegrity:input_type -> hedgerouter.admin.v1.VerifyIntegrityRequest
	1, // 4: hedgerouter.admin.v1.AdminService.Pause:output_type -> hedgerouter.admin.v1.PauseResponse
	3, // 5: hedgerouter.admin.v1.AdminService.Unpause:output_type -> hedgerouter.admin.v1.UnpauseResponse
	5, // 6: hedgerouter.admin.v1.AdminService.GetRouterStatus:output_type -> hedgerouter.admin.v1.GetRouterStatusResponse
	7, // 7: hedgerouter.admin.v1.AdminService.VerifyIntegrity:output_type -> hedgerouter.admin.v1.VerifyIntegrityResponse
	4, // [4:8] is the sub-list for method output_type
	0, // [0:4] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_hedgerouter_admin_v1_admin_proto_init() }
func file_hedgerouter_admin_v1_admin_proto_init() {
	if File_hedgerouter_admin_v1_admin_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_hedgerouter_admin_v1_admin_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*PauseRequest); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*PauseResponse); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*UnpauseRequest); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*UnpauseResponse); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*GetRouterStatusRequest); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*GetRouterStatusResponse); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*VerifyIntegrityRequest); i {
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
		file_hedgerouter_admin_v1_admin_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*VerifyIntegrityResponse); i {
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
			RawDescriptor: file_hedgerouter_admin_v1_admin_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_hedgerouter_admin_v1_admin_proto_goTypes,
		DependencyIndexes: file_hedgerouter_admin_v1_admin_proto_depIdxs,
		MessageInfos:      file_hedgerouter_admin_v1_admin_proto_msgTypes,
	}.Build()
	File_hedgerouter_admin_v1_admin_proto = out.File
	file_hedgerouter_admin_v1_admin_proto_rawDesc = nil
	file_hedgerouter_admin_v1_admin_proto_goTypes = nil
	file_hedgerouter_admin_v1_admin_proto_depIdxs = nil
}
