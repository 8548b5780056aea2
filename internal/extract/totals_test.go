package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTotals(t *testing.T) {
	t.Run("plain comma separated", func(t *testing.T) {
		got := ExtractTotals("Subtotal 112,585.00 TOTAL 112,585.00")
		require.NotNil(t, got.Subtotal)
		assert.Equal(t, 112585.0, *got.Subtotal)
		require.NotNil(t, got.Total)
		assert.Equal(t, 112585.0, *got.Total)
	})

	t.Run("misread point as thousands separator", func(t *testing.T) {
		// the trailing ".dd" is authoritative; every separator before it,
		// points included, is noise
		got := ExtractTotals("Subtotal 114.371.50 TOTAL 114.371.50")
		require.NotNil(t, got.Subtotal)
		assert.Equal(t, 114371.50, *got.Subtotal)
	})

	t.Run("spaces inside the number", func(t *testing.T) {
		got := ExtractTotals("Subtotal 114 371.50 TOTAL 114 371.50")
		require.NotNil(t, got.Subtotal)
		assert.Equal(t, 114371.50, *got.Subtotal)
	})

	t.Run("absent", func(t *testing.T) {
		got := ExtractTotals("no money here")
		assert.Nil(t, got.Subtotal)
		assert.Nil(t, got.Total)
	})
}
