package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePartiesForwarderRouting(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name      string
		text      string
		wantShip  string
		wantShip2 string // second line of the resolved address
	}{
		{
			name:      "medina routes to laredo",
			text:      "Ship To: Grupo Industrial Reyma SA de CV c/o Medina Logistic Services, Inc. Laredo, TX Bill To: Arrow Trading LLC Magnolia, TX 77394 Incoterm",
			wantShip:  "Grupo Industrial Reyma S.A. de C.V.",
			wantShip2: "c/o Medina Logistic Services, Inc.",
		},
		{
			name:      "villarreal routes to eagle pass",
			text:      "Ship To: Polietilenos del Centro SA de CV c/o Villarreal & Medina Forwarding Inc. Eagle Pass Bill To: Arrow Trading LLC Magnolia, TX 77394 Incoterm",
			wantShip:  "Polietilenos del Centro S.A. de C.V.",
			wantShip2: "c/o Villarreal & Medina Forwarding Inc.",
		},
		{
			name:      "bdp routes to grapevine",
			text:      "Ship To: Reyma Del Noroeste SA de CV c/o BDP International Grapevine TX Bill To: Arrow Trading LLC Magnolia, TX 77394 Incoterm",
			wantShip:  "Reyma Del Noroeste SA de CV",
			wantShip2: "c/o BDP International",
		},
		{
			name:      "no forwarder defaults to grapevine",
			text:      "Ship To: Grupo Industrial Reyma SA de CV Bill To: Arrow Trading LLC Magnolia, TX 77394 Incoterm",
			wantShip:  "Grupo Industrial Reyma S.A. de C.V.",
			wantShip2: "c/o BDP International",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveParties(reg, tt.text)
			lines := strings.Split(got.ShipTo, "\n")
			assert.Equal(t, tt.wantShip, lines[0])
			assert.Equal(t, tt.wantShip2, lines[1])
		})
	}
}

func TestResolvePartiesBillTo(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("alt zip selects the alternate magnolia address", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Grupo Industrial Reyma Bill To: Arrow Trading LLC Magnolia, TX 77354 Incoterm")
		assert.Contains(t, got.BillTo, "77354")
	})

	t.Run("default magnolia address otherwise", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Grupo Industrial Reyma Bill To: Arrow Trading LLC Magnolia, TX 77394 Incoterm")
		assert.Contains(t, got.BillTo, "77394")
	})

	t.Run("intermediary absent from its block still resolves", func(t *testing.T) {
		got := ResolveParties(reg, "Grupo Industrial Reyma somewhere Arrow Trading LLC elsewhere")
		assert.True(t, strings.HasPrefix(got.BillTo, "Arrow Trading LLC"))
		assert.Contains(t, got.BillTo, "77354")
	})
}

func TestResolvePartiesSinglePartyFallbacks(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("lone manufacturer billed at its mexican plant", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Plasticos Adheribles del Bajio Bill To: Plasticos Adheribles del Bajio Incoterm")
		assert.Contains(t, got.BillTo, "Cuerámaro")
		assert.Contains(t, got.ShipTo, "Grapevine")
	})

	t.Run("lone reyma manufacturer billed at nogales", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Grupo Industrial Reyma Bill To: Grupo Industrial Reyma Incoterm")
		assert.Contains(t, got.BillTo, "Nogales")
	})

	t.Run("lone intermediary flags itself on both sides", func(t *testing.T) {
		got := ResolveParties(reg, "Bill To: Arrow Trading LLC Magnolia TX Incoterm")
		assert.True(t, strings.HasPrefix(got.ShipTo, "Arrow Trading LLC"))
		assert.True(t, strings.HasPrefix(got.BillTo, "Arrow Trading LLC"))
	})

	t.Run("nothing recognized", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Acme Corp Bill To: Other Corp Incoterm")
		assert.Equal(t, ShipToNotFound, got.ShipTo)
		assert.Equal(t, BillToNotFound, got.BillTo)
	})
}

func TestResolvePartiesOCRCorrections(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("misread forwarder and split names repaired", func(t *testing.T) {
		got := ResolveParties(reg, "Ship To: Plasticos Adherib les del Bajio clo BDP Internatemational Bill To: ArrowTrading LLC Magnolia TX 77394 Incoterm")
		assert.True(t, strings.HasPrefix(got.ShipTo, "Plasticos Adheribles del Bajio"), got.ShipTo)
		assert.Contains(t, got.ShipTo, "Grapevine")
	})

	t.Run("merged block forces manufacturer lookup in bill to", func(t *testing.T) {
		got := ResolveParties(reg, "Bill To: Grupo Industrial Reyma c/o Medina Logistic Services Arrow Trading LLC Incoterm")
		assert.Contains(t, got.ShipTo, "Laredo")
	})
}
