// Package dedup recognizes invoices the pipeline has already handled.
// Identity is a content fingerprint over the fields that name the business
// transaction, so the same invoice arriving under a different filename, or
// rescanned with different layout noise, still matches.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/arrowtc/invoice-pipeline/constants"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

// Fingerprint returns the hex SHA-256 of the record's identity fields,
// serialized as JSON with sorted keys. File name, paths, addresses and
// product details deliberately stay out of the hash.
func Fingerprint(r extract.InvoiceRecord) (string, error) {
	key := map[string]any{
		constants.FieldInvoiceNo:        r.InvoiceNo,
		constants.FieldInvoiceDate:      r.InvoiceDate,
		constants.FieldSalesOrderNo:     r.SalesOrderNo,
		constants.FieldIncoterm:         r.Incoterm,
		constants.FieldPaymentTerms:     r.PaymentTerms,
		constants.FieldShipDate:         r.ShipDate,
		constants.FieldDueDate:          r.DueDate,
		constants.FieldMethodOfShipment: r.Method,
		constants.FieldSubtotal:         r.Subtotal,
		constants.FieldTotal:            r.Total,
	}
	// map keys marshal in sorted order, which keeps the hash stable
	b, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("marshal fingerprint key: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
