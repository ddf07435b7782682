// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FileUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileUpload) Reset() {
	*x = FileUpload{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileUpload) ProtoMessage() {}

func (x *FileUpload) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileUpload.ProtoReflect.Descriptor instead.
func (*FileUpload) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *FileUpload) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *FileUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Files         []*FileUpload          `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestBatchRequest) Reset() {
	*x = IngestBatchRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBatchRequest) ProtoMessage() {}

func (x *IngestBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBatchRequest.ProtoReflect.Descriptor instead.
func (*IngestBatchRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *IngestBatchRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *IngestBatchRequest) GetFiles() []*FileUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

// FileOutcome is the per-file line of the batch summary.
type FileOutcome struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	FileName string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	// ACCEPTED | DUPLICATE | OVERSIZED | INVALID_TYPE | FAILED
	Outcome     string `protobuf:"bytes,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	InvoiceId   string `protobuf:"bytes,3,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	TaskId      string `protobuf:"bytes,4,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	ContentHash string `protobuf:"bytes,5,opt,name=content_hash,json=contentHash,proto3" json:"content_hash,omitempty"`
	CanRestore  bool   `protobuf:"varint,6,opt,name=can_restore,json=canRestore,proto3" json:"can_restore,omitempty"`
	// other owners already holding the same bytes; informational only
	CrossOwnerIds []string `protobuf:"bytes,7,rep,name=cross_owner_ids,json=crossOwnerIds,proto3" json:"cross_owner_ids,omitempty"`
	Error         string   `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileOutcome) Reset() {
	*x = FileOutcome{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileOutcome) ProtoMessage() {}

func (x *FileOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileOutcome.ProtoReflect.Descriptor instead.
func (*FileOutcome) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *FileOutcome) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *FileOutcome) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *FileOutcome) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *FileOutcome) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *FileOutcome) GetContentHash() string {
	if x != nil {
		return x.ContentHash
	}
	return ""
}

func (x *FileOutcome) GetCanRestore() bool {
	if x != nil {
		return x.CanRestore
	}
	return false
}

func (x *FileOutcome) GetCrossOwnerIds() []string {
	if x != nil {
		return x.CrossOwnerIds
	}
	return nil
}

func (x *FileOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      int32                  `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Duplicates    int32                  `protobuf:"varint,2,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	Oversized     int32                  `protobuf:"varint,3,opt,name=oversized,proto3" json:"oversized,omitempty"`
	InvalidType   int32                  `protobuf:"varint,4,opt,name=invalid_type,json=invalidType,proto3" json:"invalid_type,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Truncated     int32                  `protobuf:"varint,6,opt,name=truncated,proto3" json:"truncated,omitempty"`
	Outcomes      []*FileOutcome         `protobuf:"bytes,7,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestBatchResponse) Reset() {
	*x = IngestBatchResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestBatchResponse) ProtoMessage() {}

func (x *IngestBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestBatchResponse.ProtoReflect.Descriptor instead.
func (*IngestBatchResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *IngestBatchResponse) GetAccepted() int32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *IngestBatchResponse) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *IngestBatchResponse) GetOversized() int32 {
	if x != nil {
		return x.Oversized
	}
	return 0
}

func (x *IngestBatchResponse) GetInvalidType() int32 {
	if x != nil {
		return x.InvalidType
	}
	return 0
}

func (x *IngestBatchResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestBatchResponse) GetTruncated() int32 {
	if x != nil {
		return x.Truncated
	}
	return 0
}

func (x *IngestBatchResponse) GetOutcomes() []*FileOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

type Invoice struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId              string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ContentHash          string                 `protobuf:"bytes,3,opt,name=content_hash,json=contentHash,proto3" json:"content_hash,omitempty"`
	FileSize             int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	FileName             string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileExt              string                 `protobuf:"bytes,6,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt           *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	InvoiceNumber        string                 `protobuf:"bytes,8,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate          string                 `protobuf:"bytes,9,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	IssuerName           string                 `protobuf:"bytes,10,opt,name=issuer_name,json=issuerName,proto3" json:"issuer_name,omitempty"`
	PayerName            string                 `protobuf:"bytes,11,opt,name=payer_name,json=payerName,proto3" json:"payer_name,omitempty"`
	Amount               float64                `protobuf:"fixed64,12,opt,name=amount,proto3" json:"amount,omitempty"`
	TaxAmount            float64                `protobuf:"fixed64,13,opt,name=tax_amount,json=taxAmount,proto3" json:"tax_amount,omitempty"`
	TotalAmount          float64                `protobuf:"fixed64,14,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	CurrencyCode         string                 `protobuf:"bytes,15,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Status               string                 `protobuf:"bytes,16,opt,name=status,proto3" json:"status,omitempty"`
	ReimbursementStatus  string                 `protobuf:"bytes,17,opt,name=reimbursement_status,json=reimbursementStatus,proto3" json:"reimbursement_status,omitempty"`
	ProviderName         string                 `protobuf:"bytes,18,opt,name=provider_name,json=providerName,proto3" json:"provider_name,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,19,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	NeedsReview          bool                   `protobuf:"varint,20,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	Verified             bool                   `protobuf:"varint,21,opt,name=verified,proto3" json:"verified,omitempty"`
	VerificationNotes    string                 `protobuf:"bytes,22,opt,name=verification_notes,json=verificationNotes,proto3" json:"verification_notes,omitempty"`
	DeletedAt            *timestamppb.Timestamp `protobuf:"bytes,23,opt,name=deleted_at,json=deletedAt,proto3" json:"deleted_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Invoice) GetContentHash() string {
	if x != nil {
		return x.ContentHash
	}
	return ""
}

func (x *Invoice) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Invoice) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Invoice) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Invoice) GetUploadedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UploadedAt
	}
	return nil
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetIssuerName() string {
	if x != nil {
		return x.IssuerName
	}
	return ""
}

func (x *Invoice) GetPayerName() string {
	if x != nil {
		return x.PayerName
	}
	return ""
}

func (x *Invoice) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Invoice) GetTaxAmount() float64 {
	if x != nil {
		return x.TaxAmount
	}
	return 0
}

func (x *Invoice) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *Invoice) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Invoice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Invoice) GetReimbursementStatus() string {
	if x != nil {
		return x.ReimbursementStatus
	}
	return ""
}

func (x *Invoice) GetProviderName() string {
	if x != nil {
		return x.ProviderName
	}
	return ""
}

func (x *Invoice) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Invoice) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Invoice) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *Invoice) GetVerificationNotes() string {
	if x != nil {
		return x.VerificationNotes
	}
	return ""
}

func (x *Invoice) GetDeletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.DeletedAt
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *GetInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ListInvoicesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OwnerId        string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	IncludeDeleted bool                   `protobuf:"varint,2,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ListInvoicesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListInvoicesRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type DeleteInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInvoiceRequest) Reset() {
	*x = DeleteInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInvoiceRequest) ProtoMessage() {}

func (x *DeleteInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInvoiceRequest.ProtoReflect.Descriptor instead.
func (*DeleteInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type RestoreInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RestoreInvoiceRequest) Reset() {
	*x = RestoreInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RestoreInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RestoreInvoiceRequest) ProtoMessage() {}

func (x *RestoreInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RestoreInvoiceRequest.ProtoReflect.Descriptor instead.
func (*RestoreInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *RestoreInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ArchiveInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArchiveInvoiceRequest) Reset() {
	*x = ArchiveInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArchiveInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArchiveInvoiceRequest) ProtoMessage() {}

func (x *ArchiveInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArchiveInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ArchiveInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *ArchiveInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type RetryExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionRequest) Reset() {
	*x = RetryExtractionRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionRequest) ProtoMessage() {}

func (x *RetryExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionRequest.ProtoReflect.Descriptor instead.
func (*RetryExtractionRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *RetryExtractionRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type RetryExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *ExtractionTask        `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionResponse) Reset() {
	*x = RetryExtractionResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionResponse) ProtoMessage() {}

func (x *RetryExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionResponse.ProtoReflect.Descriptor instead.
func (*RetryExtractionResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *RetryExtractionResponse) GetTask() *ExtractionTask {
	if x != nil {
		return x.Task
	}
	return nil
}

type CancelExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelExtractionRequest) Reset() {
	*x = CancelExtractionRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelExtractionRequest) ProtoMessage() {}

func (x *CancelExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelExtractionRequest.ProtoReflect.Descriptor instead.
func (*CancelExtractionRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *CancelExtractionRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type GetExtractionTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionTaskRequest) Reset() {
	*x = GetExtractionTaskRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionTaskRequest) ProtoMessage() {}

func (x *GetExtractionTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionTaskRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionTaskRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *GetExtractionTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type ExtractionTask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,3,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	Format        string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	RetryCount    int32                  `protobuf:"varint,6,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	MaxRetries    int32                  `protobuf:"varint,7,opt,name=max_retries,json=maxRetries,proto3" json:"max_retries,omitempty"`
	NextRetryAt   *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=next_retry_at,json=nextRetryAt,proto3" json:"next_retry_at,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProviderName  string                 `protobuf:"bytes,12,opt,name=provider_name,json=providerName,proto3" json:"provider_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionTask) Reset() {
	*x = ExtractionTask{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionTask) ProtoMessage() {}

func (x *ExtractionTask) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionTask.ProtoReflect.Descriptor instead.
func (*ExtractionTask) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *ExtractionTask) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionTask) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExtractionTask) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ExtractionTask) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractionTask) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractionTask) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *ExtractionTask) GetMaxRetries() int32 {
	if x != nil {
		return x.MaxRetries
	}
	return 0
}

func (x *ExtractionTask) GetNextRetryAt() *timestamppb.Timestamp {
	if x != nil {
		return x.NextRetryAt
	}
	return nil
}

func (x *ExtractionTask) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *ExtractionTask) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *ExtractionTask) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractionTask) GetProviderName() string {
	if x != nil {
		return x.ProviderName
	}
	return ""
}

type VerifyInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	VerifierId    string                 `protobuf:"bytes,2,opt,name=verifier_id,json=verifierId,proto3" json:"verifier_id,omitempty"`
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyInvoiceRequest) Reset() {
	*x = VerifyInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyInvoiceRequest) ProtoMessage() {}

func (x *VerifyInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyInvoiceRequest.ProtoReflect.Descriptor instead.
func (*VerifyInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *VerifyInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *VerifyInvoiceRequest) GetVerifierId() string {
	if x != nil {
		return x.VerifierId
	}
	return ""
}

func (x *VerifyInvoiceRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type SetReimbursementStatusRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId           string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	ReimbursementStatus string                 `protobuf:"bytes,2,opt,name=reimbursement_status,json=reimbursementStatus,proto3" json:"reimbursement_status,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *SetReimbursementStatusRequest) Reset() {
	*x = SetReimbursementStatusRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetReimbursementStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetReimbursementStatusRequest) ProtoMessage() {}

func (x *SetReimbursementStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetReimbursementStatusRequest.ProtoReflect.Descriptor instead.
func (*SetReimbursementStatusRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{17}
}

func (x *SetReimbursementStatusRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *SetReimbursementStatusRequest) GetReimbursementStatus() string {
	if x != nil {
		return x.ReimbursementStatus
	}
	return ""
}

// ReopenReimbursement is the audited exception to the forward-only
// reimbursement progression.
type ReopenReimbursementRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId           string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	ActorId             string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Reason              string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	ReimbursementStatus string                 `protobuf:"bytes,4,opt,name=reimbursement_status,json=reimbursementStatus,proto3" json:"reimbursement_status,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ReopenReimbursementRequest) Reset() {
	*x = ReopenReimbursementRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReopenReimbursementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReopenReimbursementRequest) ProtoMessage() {}

func (x *ReopenReimbursementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReopenReimbursementRequest.ProtoReflect.Descriptor instead.
func (*ReopenReimbursementRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{18}
}

func (x *ReopenReimbursementRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ReopenReimbursementRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ReopenReimbursementRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *ReopenReimbursementRequest) GetReimbursementStatus() string {
	if x != nil {
		return x.ReimbursementStatus
	}
	return ""
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{19}
}

func (x *ExportInvoicesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{20}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportInvoicesResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"C\n" +
	"\n" +
	"FileUpload\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"^\n" +
	"\x12IngestBatchRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12-\n" +
	"\x05files\x18\x02 \x03(\v2\x17.invoices.v1.FileUploadR\x05files\"\xfe\x01\n" +
	"\vFileOutcome\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\aoutcome\x18\x02 \x01(\tR\aoutcome\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x03 \x01(\tR\tinvoiceId\x12\x17\n" +
	"\atask_id\x18\x04 \x01(\tR\x06taskId\x12!\n" +
	"\fcontent_hash\x18\x05 \x01(\tR\vcontentHash\x12\x1f\n" +
	"\vcan_restore\x18\x06 \x01(\bR\n" +
	"canRestore\x12&\n" +
	"\x0fcross_owner_ids\x18\a \x03(\tR\rcrossOwnerIds\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"\xfe\x01\n" +
	"\x13IngestBatchResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\x05R\baccepted\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x02 \x01(\x05R\n" +
	"duplicates\x12\x1c\n" +
	"\toversized\x18\x03 \x01(\x05R\toversized\x12!\n" +
	"\finvalid_type\x18\x04 \x01(\x05R\vinvalidType\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x12\x1c\n" +
	"\ttruncated\x18\x06 \x01(\x05R\ttruncated\x124\n" +
	"\boutcomes\x18\a \x03(\v2\x18.invoices.v1.FileOutcomeR\boutcomes\"\xc0\x06\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12!\n" +
	"\fcontent_hash\x18\x03 \x01(\tR\vcontentHash\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\x12\x19\n" +
	"\bfile_ext\x18\x06 \x01(\tR\afileExt\x12;\n" +
	"\vuploaded_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"uploadedAt\x12%\n" +
	"\x0einvoice_number\x18\b \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\t \x01(\tR\vinvoiceDate\x12\x1f\n" +
	"\vissuer_name\x18\n" +
	" \x01(\tR\n" +
	"issuerName\x12\x1d\n" +
	"\n" +
	"payer_name\x18\v \x01(\tR\tpayerName\x12\x16\n" +
	"\x06amount\x18\f \x01(\x01R\x06amount\x12\x1d\n" +
	"\n" +
	"tax_amount\x18\r \x01(\x01R\ttaxAmount\x12!\n" +
	"\ftotal_amount\x18\x0e \x01(\x01R\vtotalAmount\x12#\n" +
	"\rcurrency_code\x18\x0f \x01(\tR\fcurrencyCode\x12\x16\n" +
	"\x06status\x18\x10 \x01(\tR\x06status\x121\n" +
	"\x14reimbursement_status\x18\x11 \x01(\tR\x13reimbursementStatus\x12#\n" +
	"\rprovider_name\x18\x12 \x01(\tR\fproviderName\x123\n" +
	"\x15extraction_confidence\x18\x13 \x01(\x02R\x14extractionConfidence\x12!\n" +
	"\fneeds_review\x18\x14 \x01(\bR\vneedsReview\x12\x1a\n" +
	"\bverified\x18\x15 \x01(\bR\bverified\x12-\n" +
	"\x12verification_notes\x18\x16 \x01(\tR\x11verificationNotes\x129\n" +
	"\n" +
	"deleted_at\x18\x17 \x01(\v2\x1a.google.protobuf.TimestampR\tdeletedAt\"2\n" +
	"\x11GetInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"Y\n" +
	"\x13ListInvoicesRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12'\n" +
	"\x0finclude_deleted\x18\x02 \x01(\bR\x0eincludeDeleted\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"5\n" +
	"\x14DeleteInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"6\n" +
	"\x15RestoreInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"6\n" +
	"\x15ArchiveInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"7\n" +
	"\x16RetryExtractionRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"J\n" +
	"\x17RetryExtractionResponse\x12/\n" +
	"\x04task\x18\x01 \x01(\v2\x1b.invoices.v1.ExtractionTaskR\x04task\"2\n" +
	"\x17CancelExtractionRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"3\n" +
	"\x18GetExtractionTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"\xd0\x03\n" +
	"\x0eExtractionTask\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x03 \x01(\tR\tinvoiceId\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1f\n" +
	"\vretry_count\x18\x06 \x01(\x05R\n" +
	"retryCount\x12\x1f\n" +
	"\vmax_retries\x18\a \x01(\x05R\n" +
	"maxRetries\x12>\n" +
	"\rnext_retry_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\vnextRetryAt\x129\n" +
	"\n" +
	"started_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12=\n" +
	"\fcompleted_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12#\n" +
	"\rprovider_name\x18\f \x01(\tR\fproviderName\"l\n" +
	"\x14VerifyInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x1f\n" +
	"\vverifier_id\x18\x02 \x01(\tR\n" +
	"verifierId\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"q\n" +
	"\x1dSetReimbursementStatusRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x121\n" +
	"\x14reimbursement_status\x18\x02 \x01(\tR\x13reimbursementStatus\"\xa1\x01\n" +
	"\x1aReopenReimbursementRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x121\n" +
	"\x14reimbursement_status\x18\x04 \x01(\tR\x13reimbursementStatus\"h\n" +
	"\x15ExportInvoicesRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"I\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName2\xc2\b\n" +
	"\x0eInvoiceService\x12P\n" +
	"\vIngestBatch\x12\x1f.invoices.v1.IngestBatchRequest\x1a .invoices.v1.IngestBatchResponse\x12B\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x14.invoices.v1.Invoice\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse\x12H\n" +
	"\rDeleteInvoice\x12!.invoices.v1.DeleteInvoiceRequest\x1a\x14.invoices.v1.Invoice\x12J\n" +
	"\x0eRestoreInvoice\x12\".invoices.v1.RestoreInvoiceRequest\x1a\x14.invoices.v1.Invoice\x12J\n" +
	"\x0eArchiveInvoice\x12\".invoices.v1.ArchiveInvoiceRequest\x1a\x14.invoices.v1.Invoice\x12\\\n" +
	"\x0fRetryExtraction\x12#.invoices.v1.RetryExtractionRequest\x1a$.invoices.v1.RetryExtractionResponse\x12U\n" +
	"\x10CancelExtraction\x12$.invoices.v1.CancelExtractionRequest\x1a\x1b.invoices.v1.ExtractionTask\x12W\n" +
	"\x11GetExtractionTask\x12%.invoices.v1.GetExtractionTaskRequest\x1a\x1b.invoices.v1.ExtractionTask\x12H\n" +
	"\rVerifyInvoice\x12!.invoices.v1.VerifyInvoiceRequest\x1a\x14.invoices.v1.Invoice\x12Z\n" +
	"\x16SetReimbursementStatus\x12*.invoices.v1.SetReimbursementStatusRequest\x1a\x14.invoices.v1.Invoice\x12T\n" +
	"\x13ReopenReimbursement\x12'.invoices.v1.ReopenReimbursementRequest\x1a\x14.invoices.v1.Invoice\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponseBDZBgithub.com/luminexhq/invoicevault/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*FileUpload)(nil),                    // 0: invoices.v1.FileUpload
	(*IngestBatchRequest)(nil),            // 1: invoices.v1.IngestBatchRequest
	(*FileOutcome)(nil),                   // 2: invoices.v1.FileOutcome
	(*IngestBatchResponse)(nil),           // 3: invoices.v1.IngestBatchResponse
	(*Invoice)(nil),                       // 4: invoices.v1.Invoice
	(*GetInvoiceRequest)(nil),             // 5: invoices.v1.GetInvoiceRequest
	(*ListInvoicesRequest)(nil),           // 6: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),          // 7: invoices.v1.ListInvoicesResponse
	(*DeleteInvoiceRequest)(nil),          // 8: invoices.v1.DeleteInvoiceRequest
	(*RestoreInvoiceRequest)(nil),         // 9: invoices.v1.RestoreInvoiceRequest
	(*ArchiveInvoiceRequest)(nil),         // 10: invoices.v1.ArchiveInvoiceRequest
	(*RetryExtractionRequest)(nil),        // 11: invoices.v1.RetryExtractionRequest
	(*RetryExtractionResponse)(nil),       // 12: invoices.v1.RetryExtractionResponse
	(*CancelExtractionRequest)(nil),       // 13: invoices.v1.CancelExtractionRequest
	(*GetExtractionTaskRequest)(nil),      // 14: invoices.v1.GetExtractionTaskRequest
	(*ExtractionTask)(nil),                // 15: invoices.v1.ExtractionTask
	(*VerifyInvoiceRequest)(nil),          // 16: invoices.v1.VerifyInvoiceRequest
	(*SetReimbursementStatusRequest)(nil), // 17: invoices.v1.SetReimbursementStatusRequest
	(*ReopenReimbursementRequest)(nil),    // 18: invoices.v1.ReopenReimbursementRequest
	(*ExportInvoicesRequest)(nil),         // 19: invoices.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),        // 20: invoices.v1.ExportInvoicesResponse
	(*timestamppb.Timestamp)(nil),         // 21: google.protobuf.Timestamp
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	0,  // 0: invoices.v1.IngestBatchRequest.files:type_name -> invoices.v1.FileUpload
	2,  // 1: invoices.v1.IngestBatchResponse.outcomes:type_name -> invoices.v1.FileOutcome
	21, // 2: invoices.v1.Invoice.uploaded_at:type_name -> google.protobuf.Timestamp
	21, // 3: invoices.v1.Invoice.deleted_at:type_name -> google.protobuf.Timestamp
	4,  // 4: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	15, // 5: invoices.v1.RetryExtractionResponse.task:type_name -> invoices.v1.ExtractionTask
	21, // 6: invoices.v1.ExtractionTask.next_retry_at:type_name -> google.protobuf.Timestamp
	21, // 7: invoices.v1.ExtractionTask.started_at:type_name -> google.protobuf.Timestamp
	21, // 8: invoices.v1.ExtractionTask.completed_at:type_name -> google.protobuf.Timestamp
	1,  // 9: invoices.v1.InvoiceService.IngestBatch:input_type -> invoices.v1.IngestBatchRequest
	5,  // 10: invoices.v1.InvoiceService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	6,  // 11: invoices.v1.InvoiceService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	8,  // 12: invoices.v1.InvoiceService.DeleteInvoice:input_type -> invoices.v1.DeleteInvoiceRequest
	9,  // 13: invoices.v1.InvoiceService.RestoreInvoice:input_type -> invoices.v1.RestoreInvoiceRequest
	10, // 14: invoices.v1.InvoiceService.ArchiveInvoice:input_type -> invoices.v1.ArchiveInvoiceRequest
	11, // 15: invoices.v1.InvoiceService.RetryExtraction:input_type -> invoices.v1.RetryExtractionRequest
	13, // 16: invoices.v1.InvoiceService.CancelExtraction:input_type -> invoices.v1.CancelExtractionRequest
	14, // 17: invoices.v1.InvoiceService.GetExtractionTask:input_type -> invoices.v1.GetExtractionTaskRequest
	16, // 18: invoices.v1.InvoiceService.VerifyInvoice:input_type -> invoices.v1.VerifyInvoiceRequest
	17, // 19: invoices.v1.InvoiceService.SetReimbursementStatus:input_type -> invoices.v1.SetReimbursementStatusRequest
	18, // 20: invoices.v1.InvoiceService.ReopenReimbursement:input_type -> invoices.v1.ReopenReimbursementRequest
	19, // 21: invoices.v1.InvoiceService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	3,  // 22: invoices.v1.InvoiceService.IngestBatch:output_type -> invoices.v1.IngestBatchResponse
	4,  // 23: invoices.v1.InvoiceService.GetInvoice:output_type -> invoices.v1.Invoice
	7,  // 24: invoices.v1.InvoiceService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	4,  // 25: invoices.v1.InvoiceService.DeleteInvoice:output_type -> invoices.v1.Invoice
	4,  // 26: invoices.v1.InvoiceService.RestoreInvoice:output_type -> invoices.v1.Invoice
	4,  // 27: invoices.v1.InvoiceService.ArchiveInvoice:output_type -> invoices.v1.Invoice
	12, // 28: invoices.v1.InvoiceService.RetryExtraction:output_type -> invoices.v1.RetryExtractionResponse
	15, // 29: invoices.v1.InvoiceService.CancelExtraction:output_type -> invoices.v1.ExtractionTask
	15, // 30: invoices.v1.InvoiceService.GetExtractionTask:output_type -> invoices.v1.ExtractionTask
	4,  // 31: invoices.v1.InvoiceService.VerifyInvoice:output_type -> invoices.v1.Invoice
	4,  // 32: invoices.v1.InvoiceService.SetReimbursementStatus:output_type -> invoices.v1.Invoice
	4,  // 33: invoices.v1.InvoiceService.ReopenReimbursement:output_type -> invoices.v1.Invoice
	20, // 34: invoices.v1.InvoiceService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	22, // [22:35] is the sub-list for method output_type
	9,  // [9:22] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
