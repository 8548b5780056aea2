package extract

import (
	"github.com/arrowtc/invoice-pipeline/constants"
)

// MissingFields reports which mandatory fields the record lacks, in a
// fixed order. Ship To, description and the transport id are deliberately
// not mandatory: they are the fields recognition most often degrades, and
// a record is still usable without them.
func MissingFields(r InvoiceRecord) []string {
	var missing []string

	check := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}

	check(constants.FieldInvoiceNo, deref(r.InvoiceNo) != "")
	check(constants.FieldInvoiceDate, deref(r.InvoiceDate) != "")
	check(constants.FieldSalesOrderNo, deref(r.SalesOrderNo) != "")
	check(constants.FieldIncoterm, deref(r.Incoterm) != "")
	check(constants.FieldPaymentTerms, deref(r.PaymentTerms) != "")
	check(constants.FieldBillTo, r.BillTo != "" && r.BillTo != BillToNotFound)
	check(constants.FieldTotal, r.Total != nil)

	if len(r.Products) == 0 {
		missing = append(missing,
			constants.FieldProductNo, constants.FieldItemQty, constants.FieldUnit)
		return missing
	}
	p := r.Products[0]
	check(constants.FieldProductNo, deref(p.ProductNo) != "")
	check(constants.FieldItemQty, p.ItemQty != nil)
	check(constants.FieldUnit, deref(p.UnitMeasure) != "")
	return missing
}

// IsComplete reports whether the record carries every mandatory field.
func IsComplete(r InvoiceRecord) bool {
	return len(MissingFields(r)) == 0
}
