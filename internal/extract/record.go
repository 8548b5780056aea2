package extract

// ProductLineItem is one parsed line of the invoice product table.
// Numeric fields are nil when the line could not be decomposed.
type ProductLineItem struct {
	ProductNo   *string  `json:"product_no"`
	ItemQty     *float64 `json:"item_qty"`
	UnitMeasure *string  `json:"unit_measure"`
	Description *string  `json:"description"`
	TransportNo *string  `json:"transport_no"`
	PriceEach   *float64 `json:"price_each"`
	Amount      *float64 `json:"amount"`
}

// InvoiceRecord is the structured result of extracting one document.
// String fields hold the raw extracted value; dates stay in the free-form
// M/D/YY shape the documents carry and are only converted at persistence.
type InvoiceRecord struct {
	File     string `json:"file"`
	FilePath string `json:"file_path"`

	InvoiceNo    *string `json:"invoice_no"`
	InvoiceDate  *string `json:"invoice_date"`
	SalesOrderNo *string `json:"sales_order_no"`
	Incoterm     *string `json:"incoterm"`
	PaymentTerms *string `json:"payment_terms"`
	ShipDate     *string `json:"ship_date"`
	DueDate      *string `json:"due_date"`
	Method       *string `json:"method_of_shipment"`

	ShipTo string `json:"ship_to"`
	BillTo string `json:"bill_to"`

	Subtotal *float64 `json:"subtotal"`
	Total    *float64 `json:"total"`

	Products []ProductLineItem `json:"product_details"`

	// NeedsReview is set when the resolved Ship To looks like the
	// intermediary rather than a consignee, which means the address
	// decision fell through to a fallback branch.
	NeedsReview bool `json:"needs_review"`

	OriginPath     string `json:"origin_path,omitempty"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

func strptr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
