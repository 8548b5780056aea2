package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeaders(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		h := ExtractHeaders("Invoice No: 103694 Invoice Date: 10/28/25 S/O# 45122")
		require.NotNil(t, h.InvoiceNo)
		assert.Equal(t, "103694", *h.InvoiceNo)
		require.NotNil(t, h.InvoiceDate)
		assert.Equal(t, "10/28/25", *h.InvoiceDate)
		require.NotNil(t, h.SalesOrderNo)
		assert.Equal(t, "45122", *h.SalesOrderNo)
	})

	t.Run("zero misread as letter O in label", func(t *testing.T) {
		h := ExtractHeaders("S/0# 45122")
		require.NotNil(t, h.SalesOrderNo)
		assert.Equal(t, "45122", *h.SalesOrderNo)
	})

	t.Run("date with internal spaces is squeezed", func(t *testing.T) {
		h := ExtractHeaders("Invoice Date: 10 /28/ 25 S/O# 1")
		require.NotNil(t, h.InvoiceDate)
		assert.Equal(t, "10/28/25", *h.InvoiceDate)
	})

	t.Run("missing fields stay nil", func(t *testing.T) {
		h := ExtractHeaders("PACKING LIST")
		assert.Nil(t, h.InvoiceNo)
		assert.Nil(t, h.InvoiceDate)
		assert.Nil(t, h.SalesOrderNo)
	})
}

func TestExtractSalesOrderNo(t *testing.T) {
	t.Run("colon form from a packing page wins", func(t *testing.T) {
		text := "invoice page S/O# 99999\npacking page S/O NO: 45122"
		got := ExtractSalesOrderNo(text)
		require.NotNil(t, got)
		assert.Equal(t, "45122", *got)
	})

	t.Run("hash form is the fallback", func(t *testing.T) {
		got := ExtractSalesOrderNo("S/O# 45122")
		require.NotNil(t, got)
		assert.Equal(t, "45122", *got)
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, ExtractSalesOrderNo("no order number here"))
	})
}
