// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the invoice type in the database.
	Label = "invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNum holds the string denoting the num field in the database.
	FieldNum = "num"
	// FieldIssueDate holds the string denoting the issue_date field in the database.
	FieldIssueDate = "issue_date"
	// FieldSoNum holds the string denoting the so_num field in the database.
	FieldSoNum = "so_num"
	// FieldIncoterm holds the string denoting the incoterm field in the database.
	FieldIncoterm = "incoterm"
	// FieldPaymentTerms holds the string denoting the payment_terms field in the database.
	FieldPaymentTerms = "payment_terms"
	// FieldShipDate holds the string denoting the ship_date field in the database.
	FieldShipDate = "ship_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldMethodOfShipment holds the string denoting the method_of_shipment field in the database.
	FieldMethodOfShipment = "method_of_shipment"
	// FieldShipTo holds the string denoting the ship_to field in the database.
	FieldShipTo = "ship_to"
	// FieldBillTo holds the string denoting the bill_to field in the database.
	FieldBillTo = "bill_to"
	// FieldProductNo holds the string denoting the product_no field in the database.
	FieldProductNo = "product_no"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldUm holds the string denoting the um field in the database.
	FieldUm = "um"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldItemQty holds the string denoting the item_qty field in the database.
	FieldItemQty = "item_qty"
	// FieldPriceEach holds the string denoting the price_each field in the database.
	FieldPriceEach = "price_each"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// Table holds the table name of the invoice in the database.
	Table = "invoices"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "invoice_files"
	// FilesInverseTable is the table name for the InvoiceFile entity.
	// It exists in this package in order to avoid circular dependency with the "invoicefile" package.
	FilesInverseTable = "invoice_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "invoice_id"
)

// Columns holds all SQL columns for invoice fields.
var Columns = []string{
	FieldID,
	FieldNum,
	FieldIssueDate,
	FieldSoNum,
	FieldIncoterm,
	FieldPaymentTerms,
	FieldShipDate,
	FieldDueDate,
	FieldMethodOfShipment,
	FieldShipTo,
	FieldBillTo,
	FieldProductNo,
	FieldDescription,
	FieldUm,
	FieldNotes,
	FieldItemQty,
	FieldPriceEach,
	FieldAmount,
	FieldSubtotal,
	FieldTotal,
	FieldNeedsReview,
	FieldFingerprint,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NumValidator is a validator for the "num" field. It is called by the builders before save.
	NumValidator func(string) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Invoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNum orders the results by the num field.
func ByNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNum, opts...).ToFunc()
}

// ByIssueDate orders the results by the issue_date field.
func ByIssueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueDate, opts...).ToFunc()
}

// BySoNum orders the results by the so_num field.
func BySoNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoNum, opts...).ToFunc()
}

// ByIncoterm orders the results by the incoterm field.
func ByIncoterm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncoterm, opts...).ToFunc()
}

// ByPaymentTerms orders the results by the payment_terms field.
func ByPaymentTerms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentTerms, opts...).ToFunc()
}

// ByShipDate orders the results by the ship_date field.
func ByShipDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByMethodOfShipment orders the results by the method_of_shipment field.
func ByMethodOfShipment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodOfShipment, opts...).ToFunc()
}

// ByShipTo orders the results by the ship_to field.
func ByShipTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipTo, opts...).ToFunc()
}

// ByBillTo orders the results by the bill_to field.
func ByBillTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillTo, opts...).ToFunc()
}

// ByProductNo orders the results by the product_no field.
func ByProductNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductNo, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByUm orders the results by the um field.
func ByUm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUm, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByItemQty orders the results by the item_qty field.
func ByItemQty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemQty, opts...).ToFunc()
}

// ByPriceEach orders the results by the price_each field.
func ByPriceEach(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceEach, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
