// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InvoiceService_IngestBatch_FullMethodName            = "/invoices.v1.InvoiceService/IngestBatch"
	InvoiceService_GetInvoice_FullMethodName             = "/invoices.v1.InvoiceService/GetInvoice"
	InvoiceService_ListInvoices_FullMethodName           = "/invoices.v1.InvoiceService/ListInvoices"
	InvoiceService_DeleteInvoice_FullMethodName          = "/invoices.v1.InvoiceService/DeleteInvoice"
	InvoiceService_RestoreInvoice_FullMethodName         = "/invoices.v1.InvoiceService/RestoreInvoice"
	InvoiceService_ArchiveInvoice_FullMethodName         = "/invoices.v1.InvoiceService/ArchiveInvoice"
	InvoiceService_RetryExtraction_FullMethodName        = "/invoices.v1.InvoiceService/RetryExtraction"
	InvoiceService_CancelExtraction_FullMethodName       = "/invoices.v1.InvoiceService/CancelExtraction"
	InvoiceService_GetExtractionTask_FullMethodName      = "/invoices.v1.InvoiceService/GetExtractionTask"
	InvoiceService_VerifyInvoice_FullMethodName          = "/invoices.v1.InvoiceService/VerifyInvoice"
	InvoiceService_SetReimbursementStatus_FullMethodName = "/invoices.v1.InvoiceService/SetReimbursementStatus"
	InvoiceService_ReopenReimbursement_FullMethodName    = "/invoices.v1.InvoiceService/ReopenReimbursement"
	InvoiceService_ExportInvoices_FullMethodName         = "/invoices.v1.InvoiceService/ExportInvoices"
)

// InvoiceServiceClient is the client API for InvoiceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InvoiceService is the external surface of the ingestion and extraction
// pipeline. Batch ingestion is atomic per file, never per batch: one rejected
// file does not abort the others.
type InvoiceServiceClient interface {
	IngestBatch(ctx context.Context, in *IngestBatchRequest, opts ...grpc.CallOption) (*IngestBatchResponse, error)
	GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	DeleteInvoice(ctx context.Context, in *DeleteInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error)
	RestoreInvoice(ctx context.Context, in *RestoreInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error)
	ArchiveInvoice(ctx context.Context, in *ArchiveInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error)
	RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*RetryExtractionResponse, error)
	CancelExtraction(ctx context.Context, in *CancelExtractionRequest, opts ...grpc.CallOption) (*ExtractionTask, error)
	GetExtractionTask(ctx context.Context, in *GetExtractionTaskRequest, opts ...grpc.CallOption) (*ExtractionTask, error)
	VerifyInvoice(ctx context.Context, in *VerifyInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error)
	SetReimbursementStatus(ctx context.Context, in *SetReimbursementStatusRequest, opts ...grpc.CallOption) (*Invoice, error)
	ReopenReimbursement(ctx context.Context, in *ReopenReimbursementRequest, opts ...grpc.CallOption) (*Invoice, error)
	ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error)
}

type invoiceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoiceServiceClient(cc grpc.ClientConnInterface) InvoiceServiceClient {
	return &invoiceServiceClient{cc}
}

func (c *invoiceServiceClient) IngestBatch(ctx context.Context, in *IngestBatchRequest, opts ...grpc.CallOption) (*IngestBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestBatchResponse)
	err := c.cc.Invoke(ctx, InvoiceService_IngestBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_GetInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoiceService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) DeleteInvoice(ctx context.Context, in *DeleteInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_DeleteInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) RestoreInvoice(ctx context.Context, in *RestoreInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_RestoreInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) ArchiveInvoice(ctx context.Context, in *ArchiveInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_ArchiveInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*RetryExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryExtractionResponse)
	err := c.cc.Invoke(ctx, InvoiceService_RetryExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) CancelExtraction(ctx context.Context, in *CancelExtractionRequest, opts ...grpc.CallOption) (*ExtractionTask, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractionTask)
	err := c.cc.Invoke(ctx, InvoiceService_CancelExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) GetExtractionTask(ctx context.Context, in *GetExtractionTaskRequest, opts ...grpc.CallOption) (*ExtractionTask, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractionTask)
	err := c.cc.Invoke(ctx, InvoiceService_GetExtractionTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) VerifyInvoice(ctx context.Context, in *VerifyInvoiceRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_VerifyInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) SetReimbursementStatus(ctx context.Context, in *SetReimbursementStatusRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_SetReimbursementStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) ReopenReimbursement(ctx context.Context, in *ReopenReimbursementRequest, opts ...grpc.CallOption) (*Invoice, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Invoice)
	err := c.cc.Invoke(ctx, InvoiceService_ReopenReimbursement_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoiceServiceClient) ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoiceService_ExportInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoiceServiceServer is the server API for InvoiceService service.
// All implementations must embed UnimplementedInvoiceServiceServer
// for forward compatibility.
//
// InvoiceService is the external surface of the ingestion and extraction
// pipeline. Batch ingestion is atomic per file, never per batch: one rejected
// file does not abort the others.
type InvoiceServiceServer interface {
	IngestBatch(context.Context, *IngestBatchRequest) (*IngestBatchResponse, error)
	GetInvoice(context.Context, *GetInvoiceRequest) (*Invoice, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	DeleteInvoice(context.Context, *DeleteInvoiceRequest) (*Invoice, error)
	RestoreInvoice(context.Context, *RestoreInvoiceRequest) (*Invoice, error)
	ArchiveInvoice(context.Context, *ArchiveInvoiceRequest) (*Invoice, error)
	RetryExtraction(context.Context, *RetryExtractionRequest) (*RetryExtractionResponse, error)
	CancelExtraction(context.Context, *CancelExtractionRequest) (*ExtractionTask, error)
	GetExtractionTask(context.Context, *GetExtractionTaskRequest) (*ExtractionTask, error)
	VerifyInvoice(context.Context, *VerifyInvoiceRequest) (*Invoice, error)
	SetReimbursementStatus(context.Context, *SetReimbursementStatusRequest) (*Invoice, error)
	ReopenReimbursement(context.Context, *ReopenReimbursementRequest) (*Invoice, error)
	ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error)
	mustEmbedUnimplementedInvoiceServiceServer()
}

// UnimplementedInvoiceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoiceServiceServer struct{}

func (UnimplementedInvoiceServiceServer) IngestBatch(context.Context, *IngestBatchRequest) (*IngestBatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestBatch not implemented")
}
func (UnimplementedInvoiceServiceServer) GetInvoice(context.Context, *GetInvoiceRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvoice not implemented")
}
func (UnimplementedInvoiceServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedInvoiceServiceServer) DeleteInvoice(context.Context, *DeleteInvoiceRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteInvoice not implemented")
}
func (UnimplementedInvoiceServiceServer) RestoreInvoice(context.Context, *RestoreInvoiceRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method RestoreInvoice not implemented")
}
func (UnimplementedInvoiceServiceServer) ArchiveInvoice(context.Context, *ArchiveInvoiceRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method ArchiveInvoice not implemented")
}
func (UnimplementedInvoiceServiceServer) RetryExtraction(context.Context, *RetryExtractionRequest) (*RetryExtractionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryExtraction not implemented")
}
func (UnimplementedInvoiceServiceServer) CancelExtraction(context.Context, *CancelExtractionRequest) (*ExtractionTask, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelExtraction not implemented")
}
func (UnimplementedInvoiceServiceServer) GetExtractionTask(context.Context, *GetExtractionTaskRequest) (*ExtractionTask, error) {
	return nil, status.Error(codes.Unimplemented, "method GetExtractionTask not implemented")
}
func (UnimplementedInvoiceServiceServer) VerifyInvoice(context.Context, *VerifyInvoiceRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyInvoice not implemented")
}
func (UnimplementedInvoiceServiceServer) SetReimbursementStatus(context.Context, *SetReimbursementStatusRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method SetReimbursementStatus not implemented")
}
func (UnimplementedInvoiceServiceServer) ReopenReimbursement(context.Context, *ReopenReimbursementRequest) (*Invoice, error) {
	return nil, status.Error(codes.Unimplemented, "method ReopenReimbursement not implemented")
}
func (UnimplementedInvoiceServiceServer) ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportInvoices not implemented")
}
func (UnimplementedInvoiceServiceServer) mustEmbedUnimplementedInvoiceServiceServer() {}
func (UnimplementedInvoiceServiceServer) testEmbeddedByValue()                        {}

// UnsafeInvoiceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoiceServiceServer will
// result in compilation errors.
type UnsafeInvoiceServiceServer interface {
	mustEmbedUnimplementedInvoiceServiceServer()
}

func RegisterInvoiceServiceServer(s grpc.ServiceRegistrar, srv InvoiceServiceServer) {
	// If the following call panics, it indicates UnimplementedInvoiceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoiceService_ServiceDesc, srv)
}

func _InvoiceService_IngestBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).IngestBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_IngestBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).IngestBatch(ctx, req.(*IngestBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_GetInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).GetInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_GetInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).GetInvoice(ctx, req.(*GetInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_DeleteInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).DeleteInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_DeleteInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).DeleteInvoice(ctx, req.(*DeleteInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_RestoreInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RestoreInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).RestoreInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_RestoreInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).RestoreInvoice(ctx, req.(*RestoreInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_ArchiveInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ArchiveInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).ArchiveInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_ArchiveInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).ArchiveInvoice(ctx, req.(*ArchiveInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_RetryExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).RetryExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_RetryExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).RetryExtraction(ctx, req.(*RetryExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_CancelExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).CancelExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_CancelExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).CancelExtraction(ctx, req.(*CancelExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_GetExtractionTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).GetExtractionTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_GetExtractionTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).GetExtractionTask(ctx, req.(*GetExtractionTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_VerifyInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).VerifyInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_VerifyInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).VerifyInvoice(ctx, req.(*VerifyInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_SetReimbursementStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetReimbursementStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).SetReimbursementStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_SetReimbursementStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).SetReimbursementStatus(ctx, req.(*SetReimbursementStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_ReopenReimbursement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReopenReimbursementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).ReopenReimbursement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_ReopenReimbursement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).ReopenReimbursement(ctx, req.(*ReopenReimbursementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoiceService_ExportInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoiceServiceServer).ExportInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoiceService_ExportInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoiceServiceServer).ExportInvoices(ctx, req.(*ExportInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoiceService_ServiceDesc is the grpc.ServiceDesc for InvoiceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.InvoiceService",
	HandlerType: (*InvoiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestBatch",
			Handler:    _InvoiceService_IngestBatch_Handler,
		},
		{
			MethodName: "GetInvoice",
			Handler:    _InvoiceService_GetInvoice_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _InvoiceService_ListInvoices_Handler,
		},
		{
			MethodName: "DeleteInvoice",
			Handler:    _InvoiceService_DeleteInvoice_Handler,
		},
		{
			MethodName: "RestoreInvoice",
			Handler:    _InvoiceService_RestoreInvoice_Handler,
		},
		{
			MethodName: "ArchiveInvoice",
			Handler:    _InvoiceService_ArchiveInvoice_Handler,
		},
		{
			MethodName: "RetryExtraction",
			Handler:    _InvoiceService_RetryExtraction_Handler,
		},
		{
			MethodName: "CancelExtraction",
			Handler:    _InvoiceService_CancelExtraction_Handler,
		},
		{
			MethodName: "GetExtractionTask",
			Handler:    _InvoiceService_GetExtractionTask_Handler,
		},
		{
			MethodName: "VerifyInvoice",
			Handler:    _InvoiceService_VerifyInvoice_Handler,
		},
		{
			MethodName: "SetReimbursementStatus",
			Handler:    _InvoiceService_SetReimbursementStatus_Handler,
		},
		{
			MethodName: "ReopenReimbursement",
			Handler:    _InvoiceService_ReopenReimbursement_Handler,
		},
		{
			MethodName: "ExportInvoices",
			Handler:    _InvoiceService_ExportInvoices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}
