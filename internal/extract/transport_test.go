package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTransportNo(t *testing.T) {
	t.Run("railcar mark with internal space", func(t *testing.T) {
		got := ExtractTransportNo("shipped via RAILCAR # FPAX21 4289 seal intact")
		require.NotNil(t, got)
		assert.Equal(t, "FPAX214289", *got)
	})

	t.Run("numeric truck id", func(t *testing.T) {
		got := ExtractTransportNo("TRUCK # 1454 crossing at Laredo")
		require.NotNil(t, got)
		assert.Equal(t, "1454", *got)
	})

	t.Run("missing hash sign", func(t *testing.T) {
		got := ExtractTransportNo("RAILCAR TILX 290442")
		require.NotNil(t, got)
		assert.Equal(t, "TILX290442", *got)
	})

	t.Run("bleed from the neighboring column is cut off", func(t *testing.T) {
		got := ExtractTransportNo("RAILCAR # FPAX214289 CUSTID 7731")
		require.NotNil(t, got)
		assert.Equal(t, "FPAX214289", *got)
	})

	t.Run("too short after cleanup is noise", func(t *testing.T) {
		assert.Nil(t, ExtractTransportNo("TRUCK # 12"))
	})

	t.Run("label bleed leaves nothing behind", func(t *testing.T) {
		assert.Nil(t, ExtractTransportNo("Method of Shipment RAILCAR Subtotal 112,585.00"))
	})

	t.Run("keyword captured as its own id is rejected", func(t *testing.T) {
		assert.Nil(t, ExtractTransportNo("RAILCAR # TRUCK"))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, ExtractTransportNo("no transport mentioned"))
	})
}
