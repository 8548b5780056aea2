package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const termsRow = "Incoterm Payment Terms Ship Date Due Date Method of Shipment " +
	"DAP Laredo: Net 30 Days 10/26/25 11/25/25 RAILCAR Product No."

func TestExtractShippingTerms(t *testing.T) {
	got := ExtractShippingTerms(termsRow)

	require.NotNil(t, got.Incoterm)
	assert.Equal(t, "DAP Laredo", *got.Incoterm, "trailing colon is stripped")
	require.NotNil(t, got.PaymentTerms)
	assert.Equal(t, "Net 30 Days", *got.PaymentTerms)
	require.NotNil(t, got.ShipDate)
	assert.Equal(t, "10/26/25", *got.ShipDate)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "11/25/25", *got.DueDate)
	require.NotNil(t, got.Method)
	assert.Equal(t, "RAILCAR", *got.Method)
}

func TestExtractShippingTermsMisreadHeader(t *testing.T) {
	row := "lncotenn Payment Terms Ship Date Due Date Method of Shipment " +
		"DAP Eagle Pass Prepaid 10/26/25 11/25/25 TRUCK Product No."
	got := ExtractShippingTerms(row)
	require.NotNil(t, got.Incoterm)
	assert.Equal(t, "DAP Eagle Pass", *got.Incoterm)
	require.NotNil(t, got.PaymentTerms)
	assert.Equal(t, "Prepaid", *got.PaymentTerms)
}

func TestExtractShippingTermsBrokenDueDate(t *testing.T) {
	// a due date the scanner split, "11/2 5/25", fails the date group and
	// lands in the method capture
	row := "Incoterm Payment Terms Ship Date Due Date Method of Shipment " +
		"DAP Laredo Net 30 Days 10/26/25 11/2 5/25 RAILCAR Product No."
	got := ExtractShippingTerms(row)

	require.NotNil(t, got.DueDate)
	assert.Equal(t, "11/2 5/25", *got.DueDate)
	require.NotNil(t, got.Method)
	assert.Equal(t, "RAILCAR", *got.Method)
}

func TestExtractShippingTermsNoMatch(t *testing.T) {
	got := ExtractShippingTerms("PACKING LIST with no terms row")
	assert.Nil(t, got.Incoterm)
	assert.Nil(t, got.PaymentTerms)
	assert.Nil(t, got.ShipDate)
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.Method)
}
