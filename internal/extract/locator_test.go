package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindInvoicePage(t *testing.T) {
	packing := "PACKING LIST\nGross Weight: 44,000 LBS\nS/O NO: 45122"
	invoice := "Invoice No: 103694 Invoice Date: 10/28/25\nShip To: Grupo Industrial Reyma\nBill To: Arrow Trading LLC"

	t.Run("picks the page with header and party indicators", func(t *testing.T) {
		got := FindInvoicePage([]string{packing, invoice, packing})
		assert.Equal(t, invoice, got)
	})

	t.Run("header indicator alone is not enough", func(t *testing.T) {
		headerOnly := "Invoice No: 103694\nsome body text"
		got := FindInvoicePage([]string{headerOnly, invoice})
		assert.Equal(t, invoice, got)
	})

	t.Run("falls back to the first page", func(t *testing.T) {
		got := FindInvoicePage([]string{packing, packing})
		assert.Equal(t, packing, got)
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Equal(t, "", FindInvoicePage(nil))
	})
}

func TestScoreInvoicePage(t *testing.T) {
	invoice := "invoice no 103694 invoice date ship to bill to subtotal total payment terms"
	packing := "packing list customer order"
	terms := "subtotal total due date"

	t.Run("highest scoring page wins", func(t *testing.T) {
		assert.Equal(t, 1, ScoreInvoicePage([]string{packing, invoice, terms}))
	})

	t.Run("tie goes to the earlier page", func(t *testing.T) {
		assert.Equal(t, 0, ScoreInvoicePage([]string{invoice, invoice}))
	})

	t.Run("nothing scores falls back to zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreInvoicePage([]string{"lorem", "ipsum"}))
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Equal(t, 0, ScoreInvoicePage(nil))
	})

	t.Run("both-families bonus outweighs keyword count", func(t *testing.T) {
		// one invoice keyword + one address keyword + bonus (4) beats
		// three financial keywords (3)
		financial := "subtotal total due date"
		mixed := "invoice no ship to"
		assert.Equal(t, 1, ScoreInvoicePage([]string{financial, mixed}))
	})
}
