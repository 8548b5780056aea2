package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProductDetail(t *testing.T) {
	text := "Product No. Item Qty U/M Description Price Each Amount " +
		"HDPE-01 195,800/LBS HDPE Resin Pellets RAILCAR # FPAX214289 0.57500 112,585.00 " +
		"Subtotal 112,585.00"
	got := ExtractProductDetail(text)

	require.NotNil(t, got.ProductNo)
	assert.Equal(t, "HDPE-01", *got.ProductNo)
	require.NotNil(t, got.ItemQty)
	assert.Equal(t, 195800.0, *got.ItemQty)
	require.NotNil(t, got.UnitMeasure)
	assert.Equal(t, "LBS", *got.UnitMeasure)
	require.NotNil(t, got.Description)
	assert.Equal(t, "HDPE Resin Pellets", *got.Description)
	require.NotNil(t, got.TransportNo)
	assert.Equal(t, "RAILCAR # FPAX214289", *got.TransportNo)
	require.NotNil(t, got.PriceEach)
	assert.Equal(t, 0.575, *got.PriceEach)
	require.NotNil(t, got.Amount)
	assert.Equal(t, 112585.0, *got.Amount)
}

func TestExtractProductDetailQtySpaceForm(t *testing.T) {
	text := "Product No. LDPE-02 44,000 LBS LDPE Film Grade 0.62 27,280.00 TOTAL 27,280.00"
	got := ExtractProductDetail(text)

	require.NotNil(t, got.ItemQty)
	assert.Equal(t, 44000.0, *got.ItemQty)
	require.NotNil(t, got.UnitMeasure)
	assert.Equal(t, "LBS", *got.UnitMeasure)
	require.NotNil(t, got.Description)
	assert.Equal(t, "LDPE Film Grade", *got.Description)
}

func TestExtractProductDetailSplitAmountRepair(t *testing.T) {
	// the leading digits of the amount split into the price column:
	// "112" + "585.00" is really 112585.00, with the true unit price
	// trailing the description
	text := "Product No. HDPE-01 195,800/LBS HDPE Resin 0.57500 112 585.00 Subtotal 112,585.00"
	got := ExtractProductDetail(text)

	require.NotNil(t, got.PriceEach)
	assert.Equal(t, 0.575, *got.PriceEach)
	require.NotNil(t, got.Amount)
	assert.Equal(t, 112585.0, *got.Amount)
}

func TestExtractProductDetailTrailingModeScrubbedFromDescription(t *testing.T) {
	text := "Product No. HDPE-01 195,800/LBS HDPE Resin RAIL 0.57500 112,585.00 Subtotal"
	got := ExtractProductDetail(text)
	require.NotNil(t, got.Description)
	assert.Equal(t, "HDPE Resin", *got.Description)
}

func TestExtractProductDetailNoBlock(t *testing.T) {
	got := ExtractProductDetail("no product table here")
	assert.Nil(t, got.ProductNo)
	assert.Nil(t, got.ItemQty)
	assert.Nil(t, got.Amount)
}
