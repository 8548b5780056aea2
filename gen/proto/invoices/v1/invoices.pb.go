// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Invoice struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Num              string                 `protobuf:"bytes,2,opt,name=num,proto3" json:"num,omitempty"`
	IssueDate        string                 `protobuf:"bytes,3,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	SoNum            string                 `protobuf:"bytes,4,opt,name=so_num,json=soNum,proto3" json:"so_num,omitempty"`
	Incoterm         string                 `protobuf:"bytes,5,opt,name=incoterm,proto3" json:"incoterm,omitempty"`
	PaymentTerms     string                 `protobuf:"bytes,6,opt,name=payment_terms,json=paymentTerms,proto3" json:"payment_terms,omitempty"`
	ShipDate         string                 `protobuf:"bytes,7,opt,name=ship_date,json=shipDate,proto3" json:"ship_date,omitempty"`
	DueDate          string                 `protobuf:"bytes,8,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	MethodOfShipment string                 `protobuf:"bytes,9,opt,name=method_of_shipment,json=methodOfShipment,proto3" json:"method_of_shipment,omitempty"`
	ShipTo           string                 `protobuf:"bytes,10,opt,name=ship_to,json=shipTo,proto3" json:"ship_to,omitempty"`
	BillTo           string                 `protobuf:"bytes,11,opt,name=bill_to,json=billTo,proto3" json:"bill_to,omitempty"`
	ProductNo        string                 `protobuf:"bytes,12,opt,name=product_no,json=productNo,proto3" json:"product_no,omitempty"`
	ItemQty          float64                `protobuf:"fixed64,13,opt,name=item_qty,json=itemQty,proto3" json:"item_qty,omitempty"`
	Um               string                 `protobuf:"bytes,14,opt,name=um,proto3" json:"um,omitempty"`
	Description      string                 `protobuf:"bytes,15,opt,name=description,proto3" json:"description,omitempty"`
	Notes            string                 `protobuf:"bytes,16,opt,name=notes,proto3" json:"notes,omitempty"`
	PriceEach        float64                `protobuf:"fixed64,17,opt,name=price_each,json=priceEach,proto3" json:"price_each,omitempty"`
	Amount           float64                `protobuf:"fixed64,18,opt,name=amount,proto3" json:"amount,omitempty"`
	Subtotal         float64                `protobuf:"fixed64,19,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Total            float64                `protobuf:"fixed64,20,opt,name=total,proto3" json:"total,omitempty"`
	NeedsReview      bool                   `protobuf:"varint,21,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	Fingerprint      string                 `protobuf:"bytes,22,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,23,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,24,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetNum() string {
	if x != nil {
		return x.Num
	}
	return ""
}

func (x *Invoice) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *Invoice) GetSoNum() string {
	if x != nil {
		return x.SoNum
	}
	return ""
}

func (x *Invoice) GetIncoterm() string {
	if x != nil {
		return x.Incoterm
	}
	return ""
}

func (x *Invoice) GetPaymentTerms() string {
	if x != nil {
		return x.PaymentTerms
	}
	return ""
}

func (x *Invoice) GetShipDate() string {
	if x != nil {
		return x.ShipDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetMethodOfShipment() string {
	if x != nil {
		return x.MethodOfShipment
	}
	return ""
}

func (x *Invoice) GetShipTo() string {
	if x != nil {
		return x.ShipTo
	}
	return ""
}

func (x *Invoice) GetBillTo() string {
	if x != nil {
		return x.BillTo
	}
	return ""
}

func (x *Invoice) GetProductNo() string {
	if x != nil {
		return x.ProductNo
	}
	return ""
}

func (x *Invoice) GetItemQty() float64 {
	if x != nil {
		return x.ItemQty
	}
	return 0
}

func (x *Invoice) GetUm() string {
	if x != nil {
		return x.Um
	}
	return ""
}

func (x *Invoice) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Invoice) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Invoice) GetPriceEach() float64 {
	if x != nil {
		return x.PriceEach
	}
	return 0
}

func (x *Invoice) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Invoice) GetSubtotal() float64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

func (x *Invoice) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Invoice) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Invoice) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetInvoiceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
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
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type RunBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunBatchRequest) Reset() {
	*x = RunBatchRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunBatchRequest) ProtoMessage() {}

func (x *RunBatchRequest) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use RunBatchRequest.ProtoReflect.Descriptor instead.
func (*RunBatchRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

type RunBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Duplicate     int32                  `protobuf:"varint,2,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	Incomplete    int32                  `protobuf:"varint,3,opt,name=incomplete,proto3" json:"incomplete,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Documents     []*BatchDocument       `protobuf:"bytes,5,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunBatchResponse) Reset() {
	*x = RunBatchResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunBatchResponse) ProtoMessage() {}

func (x *RunBatchResponse) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use RunBatchResponse.ProtoReflect.Descriptor instead.
func (*RunBatchResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *RunBatchResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *RunBatchResponse) GetDuplicate() int32 {
	if x != nil {
		return x.Duplicate
	}
	return 0
}

func (x *RunBatchResponse) GetIncomplete() int32 {
	if x != nil {
		return x.Incomplete
	}
	return 0
}

func (x *RunBatchResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *RunBatchResponse) GetDocuments() []*BatchDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type BatchDocument struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          string                 `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	InvoiceNo     string                 `protobuf:"bytes,3,opt,name=invoice_no,json=invoiceNo,proto3" json:"invoice_no,omitempty"`
	MissingFields []string               `protobuf:"bytes,4,rep,name=missing_fields,json=missingFields,proto3" json:"missing_fields,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchDocument) Reset() {
	*x = BatchDocument{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchDocument) ProtoMessage() {}

func (x *BatchDocument) ProtoReflect() protoreflect.Message {
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

// Deprecated: Use BatchDocument.ProtoReflect.Descriptor instead.
func (*BatchDocument) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *BatchDocument) GetFile() string {
	if x != nil {
		return x.File
	}
	return ""
}

func (x *BatchDocument) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BatchDocument) GetInvoiceNo() string {
	if x != nil {
		return x.InvoiceNo
	}
	return ""
}

func (x *BatchDocument) GetMissingFields() []string {
	if x != nil {
		return x.MissingFields
	}
	return nil
}

func (x *BatchDocument) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xa8\x05\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03num\x18\x02 \x01(\tR\x03num\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x03 \x01(\tR\tissueDate\x12\x15\n" +
	"\x06so_num\x18\x04 \x01(\tR\x05soNum\x12\x1a\n" +
	"\bincoterm\x18\x05 \x01(\tR\bincoterm\x12#\n" +
	"\rpayment_terms\x18\x06 \x01(\tR\fpaymentTerms\x12\x1b\n" +
	"\tship_date\x18\a \x01(\tR\bshipDate\x12\x19\n" +
	"\bdue_date\x18\b \x01(\tR\adueDate\x12,\n" +
	"\x12method_of_shipment\x18\t \x01(\tR\x10methodOfShipment\x12\x17\n" +
	"\aship_to\x18\n" +
	" \x01(\tR\x06shipTo\x12\x17\n" +
	"\abill_to\x18\v \x01(\tR\x06billTo\x12\x1d\n" +
	"\n" +
	"product_no\x18\f \x01(\tR\tproductNo\x12\x19\n" +
	"\bitem_qty\x18\r \x01(\x01R\aitemQty\x12\x0e\n" +
	"\x02um\x18\x0e \x01(\tR\x02um\x12 \n" +
	"\vdescription\x18\x0f \x01(\tR\vdescription\x12\x14\n" +
	"\x05notes\x18\x10 \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"price_each\x18\x11 \x01(\x01R\tpriceEach\x12\x16\n" +
	"\x06amount\x18\x12 \x01(\x01R\x06amount\x12\x1a\n" +
	"\bsubtotal\x18\x13 \x01(\x01R\bsubtotal\x12\x14\n" +
	"\x05total\x18\x14 \x01(\x01R\x05total\x12!\n" +
	"\fneeds_review\x18\x15 \x01(\bR\vneedsReview\x12 \n" +
	"\vfingerprint\x18\x16 \x01(\tR\vfingerprint\x12\x1d\n" +
	"\n" +
	"created_at\x18\x17 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x18 \x01(\tR\tupdatedAt\"K\n" +
	"\x13ListInvoicesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"#\n" +
	"\x11GetInvoiceRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"M\n" +
	"\x15ExportInvoicesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x11\n" +
	"\x0fRunBatchRequest\"\xc0\x01\n" +
	"\x10RunBatchResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x1c\n" +
	"\tduplicate\x18\x02 \x01(\x05R\tduplicate\x12\x1e\n" +
	"\n" +
	"incomplete\x18\x03 \x01(\x05R\n" +
	"incomplete\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\x128\n" +
	"\tdocuments\x18\x05 \x03(\v2\x1a.invoices.v1.BatchDocumentR\tdocuments\"\x97\x01\n" +
	"\rBatchDocument\x12\x12\n" +
	"\x04file\x18\x01 \x01(\tR\x04file\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"invoice_no\x18\x03 \x01(\tR\tinvoiceNo\x12%\n" +
	"\x0emissing_fields\x18\x04 \x03(\tR\rmissingFields\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error2\xb5\x01\n" +
	"\x0fInvoicesService\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse\x12M\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x1f.invoices.v1.GetInvoiceResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponse2W\n" +
	"\fBatchService\x12G\n" +
	"\bRunBatch\x12\x1c.invoices.v1.RunBatchRequest\x1a\x1d.invoices.v1.RunBatchResponseBFZDgithub.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1;invoicesv1b\x06proto3"

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

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*Invoice)(nil),                // 0: invoices.v1.Invoice
	(*ListInvoicesRequest)(nil),    // 1: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),   // 2: invoices.v1.ListInvoicesResponse
	(*GetInvoiceRequest)(nil),      // 3: invoices.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),     // 4: invoices.v1.GetInvoiceResponse
	(*ExportInvoicesRequest)(nil),  // 5: invoices.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil), // 6: invoices.v1.ExportInvoicesResponse
	(*RunBatchRequest)(nil),        // 7: invoices.v1.RunBatchRequest
	(*RunBatchResponse)(nil),       // 8: invoices.v1.RunBatchResponse
	(*BatchDocument)(nil),          // 9: invoices.v1.BatchDocument
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	0, // 0: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	0, // 1: invoices.v1.GetInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	9, // 2: invoices.v1.RunBatchResponse.documents:type_name -> invoices.v1.BatchDocument
	1, // 3: invoices.v1.InvoicesService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	3, // 4: invoices.v1.InvoicesService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	5, // 5: invoices.v1.ExportService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	7, // 6: invoices.v1.BatchService.RunBatch:input_type -> invoices.v1.RunBatchRequest
	2, // 7: invoices.v1.InvoicesService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	4, // 8: invoices.v1.InvoicesService.GetInvoice:output_type -> invoices.v1.GetInvoiceResponse
	6, // 9: invoices.v1.ExportService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	8, // 10: invoices.v1.BatchService.RunBatch:output_type -> invoices.v1.RunBatchResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
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
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
