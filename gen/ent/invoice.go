// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoice"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Num holds the value of the "num" field.
	Num string `json:"num,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate time.Time `json:"issue_date,omitempty"`
	// SoNum holds the value of the "so_num" field.
	SoNum *string `json:"so_num,omitempty"`
	// Incoterm holds the value of the "incoterm" field.
	Incoterm *string `json:"incoterm,omitempty"`
	// PaymentTerms holds the value of the "payment_terms" field.
	PaymentTerms *string `json:"payment_terms,omitempty"`
	// ShipDate holds the value of the "ship_date" field.
	ShipDate *time.Time `json:"ship_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// MethodOfShipment holds the value of the "method_of_shipment" field.
	MethodOfShipment *string `json:"method_of_shipment,omitempty"`
	// ShipTo holds the value of the "ship_to" field.
	ShipTo string `json:"ship_to,omitempty"`
	// BillTo holds the value of the "bill_to" field.
	BillTo string `json:"bill_to,omitempty"`
	// ProductNo holds the value of the "product_no" field.
	ProductNo *string `json:"product_no,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Um holds the value of the "um" field.
	Um *string `json:"um,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ItemQty holds the value of the "item_qty" field.
	ItemQty *float64 `json:"item_qty,omitempty"`
	// PriceEach holds the value of the "price_each" field.
	PriceEach *float64 `json:"price_each,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Files holds the value of the files edge.
	Files []*InvoiceFile `json:"files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) FilesOrErr() ([]*InvoiceFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case invoice.FieldItemQty, invoice.FieldPriceEach, invoice.FieldAmount, invoice.FieldSubtotal, invoice.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldNum, invoice.FieldSoNum, invoice.FieldIncoterm, invoice.FieldPaymentTerms, invoice.FieldMethodOfShipment, invoice.FieldShipTo, invoice.FieldBillTo, invoice.FieldProductNo, invoice.FieldDescription, invoice.FieldUm, invoice.FieldNotes, invoice.FieldFingerprint:
			values[i] = new(sql.NullString)
		case invoice.FieldIssueDate, invoice.FieldShipDate, invoice.FieldDueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldNum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field num", values[i])
			} else if value.Valid {
				_m.Num = value.String
			}
		case invoice.FieldIssueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[i])
			} else if value.Valid {
				_m.IssueDate = value.Time
			}
		case invoice.FieldSoNum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field so_num", values[i])
			} else if value.Valid {
				_m.SoNum = new(string)
				*_m.SoNum = value.String
			}
		case invoice.FieldIncoterm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incoterm", values[i])
			} else if value.Valid {
				_m.Incoterm = new(string)
				*_m.Incoterm = value.String
			}
		case invoice.FieldPaymentTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_terms", values[i])
			} else if value.Valid {
				_m.PaymentTerms = new(string)
				*_m.PaymentTerms = value.String
			}
		case invoice.FieldShipDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ship_date", values[i])
			} else if value.Valid {
				_m.ShipDate = new(time.Time)
				*_m.ShipDate = value.Time
			}
		case invoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case invoice.FieldMethodOfShipment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method_of_shipment", values[i])
			} else if value.Valid {
				_m.MethodOfShipment = new(string)
				*_m.MethodOfShipment = value.String
			}
		case invoice.FieldShipTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ship_to", values[i])
			} else if value.Valid {
				_m.ShipTo = value.String
			}
		case invoice.FieldBillTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_to", values[i])
			} else if value.Valid {
				_m.BillTo = value.String
			}
		case invoice.FieldProductNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_no", values[i])
			} else if value.Valid {
				_m.ProductNo = new(string)
				*_m.ProductNo = value.String
			}
		case invoice.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case invoice.FieldUm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field um", values[i])
			} else if value.Valid {
				_m.Um = new(string)
				*_m.Um = value.String
			}
		case invoice.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case invoice.FieldItemQty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field item_qty", values[i])
			} else if value.Valid {
				_m.ItemQty = new(float64)
				*_m.ItemQty = value.Float64
			}
		case invoice.FieldPriceEach:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_each", values[i])
			} else if value.Valid {
				_m.PriceEach = new(float64)
				*_m.PriceEach = value.Float64
			}
		case invoice.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = new(float64)
				*_m.Amount = value.Float64
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(float64)
				*_m.Subtotal = value.Float64
			}
		case invoice.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case invoice.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case invoice.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the Invoice entity.
func (_m *Invoice) QueryFiles() *InvoiceFileQuery {
	return NewInvoiceClient(_m.config).QueryFiles(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("num=")
	builder.WriteString(_m.Num)
	builder.WriteString(", ")
	builder.WriteString("issue_date=")
	builder.WriteString(_m.IssueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SoNum; v != nil {
		builder.WriteString("so_num=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Incoterm; v != nil {
		builder.WriteString("incoterm=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentTerms; v != nil {
		builder.WriteString("payment_terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShipDate; v != nil {
		builder.WriteString("ship_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MethodOfShipment; v != nil {
		builder.WriteString("method_of_shipment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ship_to=")
	builder.WriteString(_m.ShipTo)
	builder.WriteString(", ")
	builder.WriteString("bill_to=")
	builder.WriteString(_m.BillTo)
	builder.WriteString(", ")
	if v := _m.ProductNo; v != nil {
		builder.WriteString("product_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Um; v != nil {
		builder.WriteString("um=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemQty; v != nil {
		builder.WriteString("item_qty=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriceEach; v != nil {
		builder.WriteString("price_each=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
