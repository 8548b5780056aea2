package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrowtc/invoice-pipeline/constants"
)

func completeRecord() InvoiceRecord {
	qty := 195800.0
	total := 112585.0
	return InvoiceRecord{
		InvoiceNo:    strptr("103694"),
		InvoiceDate:  strptr("10/28/25"),
		SalesOrderNo: strptr("45122"),
		Incoterm:     strptr("DAP Laredo"),
		PaymentTerms: strptr("Net 30 Days"),
		BillTo:       "Arrow Trading LLC",
		Total:        &total,
		Products: []ProductLineItem{{
			ProductNo:   strptr("HDPE-01"),
			ItemQty:     &qty,
			UnitMeasure: strptr("LBS"),
		}},
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	rec := completeRecord()
	assert.Empty(t, MissingFields(rec))
	assert.True(t, IsComplete(rec))
}

func TestMissingFieldsReportsInOrder(t *testing.T) {
	rec := completeRecord()
	rec.InvoiceDate = nil
	rec.Incoterm = strptr("")
	rec.Total = nil
	rec.Products[0].ItemQty = nil

	assert.Equal(t, []string{
		constants.FieldInvoiceDate,
		constants.FieldIncoterm,
		constants.FieldTotal,
		constants.FieldItemQty,
	}, MissingFields(rec))
	assert.False(t, IsComplete(rec))
}

func TestMissingFieldsBillToSentinel(t *testing.T) {
	rec := completeRecord()
	rec.BillTo = BillToNotFound
	assert.Equal(t, []string{constants.FieldBillTo}, MissingFields(rec))
}

func TestMissingFieldsNoProducts(t *testing.T) {
	rec := completeRecord()
	rec.Products = nil
	assert.Equal(t, []string{
		constants.FieldProductNo,
		constants.FieldItemQty,
		constants.FieldUnit,
	}, MissingFields(rec))
}

func TestShipToAndTransportAreOptional(t *testing.T) {
	rec := completeRecord()
	rec.ShipTo = ShipToNotFound
	rec.Products[0].TransportNo = nil
	assert.Empty(t, MissingFields(rec))
}
