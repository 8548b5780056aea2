package constants

// Output field keys. These form the stable key set of an extracted record
// (spelling matters: downstream sinks and the dedup fingerprint use them).
const (
	FieldFile             = "File"
	FieldInvoiceNo        = "Invoice No"
	FieldInvoiceDate      = "Invoice Date"
	FieldSalesOrderNo     = "S/O#"
	FieldIncoterm         = "Incoterm"
	FieldPaymentTerms     = "Payment Terms"
	FieldShipDate         = "Ship Date"
	FieldDueDate          = "Due Date"
	FieldMethodOfShipment = "Method of Shipment"
	FieldShipTo           = "Ship To"
	FieldBillTo           = "Bill To"
	FieldSubtotal         = "Subtotal"
	FieldTotal            = "Total"

	FieldProductNo   = "Product No."
	FieldItemQty     = "Item Qty"
	FieldUnit        = "U/M"
	FieldDescription = "Description"
	FieldTransportNo = "Transport No."
	FieldPriceEach   = "Price Each"
	FieldAmount      = "Amount"
)

// TransportModes are the keywords that introduce a transport/vehicle id
// inside a product line ("RAILCAR # FPAX214289" and friends).
var TransportModes = []string{"RAILCAR", "TRUCK", "VESSEL"}
