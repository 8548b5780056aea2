// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arrowtc/invoice-pipeline/db/ent/schema"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoice"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescNum is the schema descriptor for num field.
	invoiceDescNum := invoiceFields[1].Descriptor()
	// invoice.NumValidator is a validator for the "num" field. It is called by the builders before save.
	invoice.NumValidator = invoiceDescNum.Validators[0].(func(string) error)
	// invoiceDescNeedsReview is the schema descriptor for needs_review field.
	invoiceDescNeedsReview := invoiceFields[20].Descriptor()
	// invoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	invoice.DefaultNeedsReview = invoiceDescNeedsReview.Default.(bool)
	// invoiceDescFingerprint is the schema descriptor for fingerprint field.
	invoiceDescFingerprint := invoiceFields[21].Descriptor()
	// invoice.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	invoice.FingerprintValidator = func() func(string) error {
		validators := invoiceDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[22].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[23].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescPath is the schema descriptor for path field.
	invoicefileDescPath := invoicefileFields[3].Descriptor()
	// invoicefile.PathValidator is a validator for the "path" field. It is called by the builders before save.
	invoicefile.PathValidator = invoicefileDescPath.Validators[0].(func(string) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[4].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescCreatedAt is the schema descriptor for created_at field.
	invoicefileDescCreatedAt := invoicefileFields[5].Descriptor()
	// invoicefile.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicefile.DefaultCreatedAt = invoicefileDescCreatedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
}
