// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoice"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoicefile"
	"github.com/arrowtc/invoice-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNum sets the "num" field.
func (_u *InvoiceUpdate) SetNum(v string) *InvoiceUpdate {
	_u.mutation.SetNum(v)
	return _u
}

// SetNillableNum sets the "num" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNum(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNum(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdate) SetIssueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIssueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetSoNum sets the "so_num" field.
func (_u *InvoiceUpdate) SetSoNum(v string) *InvoiceUpdate {
	_u.mutation.SetSoNum(v)
	return _u
}

// SetNillableSoNum sets the "so_num" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSoNum(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSoNum(*v)
	}
	return _u
}

// ClearSoNum clears the value of the "so_num" field.
func (_u *InvoiceUpdate) ClearSoNum() *InvoiceUpdate {
	_u.mutation.ClearSoNum()
	return _u
}

// SetIncoterm sets the "incoterm" field.
func (_u *InvoiceUpdate) SetIncoterm(v string) *InvoiceUpdate {
	_u.mutation.SetIncoterm(v)
	return _u
}

// SetNillableIncoterm sets the "incoterm" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIncoterm(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetIncoterm(*v)
	}
	return _u
}

// ClearIncoterm clears the value of the "incoterm" field.
func (_u *InvoiceUpdate) ClearIncoterm() *InvoiceUpdate {
	_u.mutation.ClearIncoterm()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdate) SetPaymentTerms(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentTerms(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdate) ClearPaymentTerms() *InvoiceUpdate {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetShipDate sets the "ship_date" field.
func (_u *InvoiceUpdate) SetShipDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetShipDate(v)
	return _u
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableShipDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetShipDate(*v)
	}
	return _u
}

// ClearShipDate clears the value of the "ship_date" field.
func (_u *InvoiceUpdate) ClearShipDate() *InvoiceUpdate {
	_u.mutation.ClearShipDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetMethodOfShipment sets the "method_of_shipment" field.
func (_u *InvoiceUpdate) SetMethodOfShipment(v string) *InvoiceUpdate {
	_u.mutation.SetMethodOfShipment(v)
	return _u
}

// SetNillableMethodOfShipment sets the "method_of_shipment" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableMethodOfShipment(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetMethodOfShipment(*v)
	}
	return _u
}

// ClearMethodOfShipment clears the value of the "method_of_shipment" field.
func (_u *InvoiceUpdate) ClearMethodOfShipment() *InvoiceUpdate {
	_u.mutation.ClearMethodOfShipment()
	return _u
}

// SetShipTo sets the "ship_to" field.
func (_u *InvoiceUpdate) SetShipTo(v string) *InvoiceUpdate {
	_u.mutation.SetShipTo(v)
	return _u
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableShipTo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetShipTo(*v)
	}
	return _u
}

// ClearShipTo clears the value of the "ship_to" field.
func (_u *InvoiceUpdate) ClearShipTo() *InvoiceUpdate {
	_u.mutation.ClearShipTo()
	return _u
}

// SetBillTo sets the "bill_to" field.
func (_u *InvoiceUpdate) SetBillTo(v string) *InvoiceUpdate {
	_u.mutation.SetBillTo(v)
	return _u
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBillTo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBillTo(*v)
	}
	return _u
}

// ClearBillTo clears the value of the "bill_to" field.
func (_u *InvoiceUpdate) ClearBillTo() *InvoiceUpdate {
	_u.mutation.ClearBillTo()
	return _u
}

// SetProductNo sets the "product_no" field.
func (_u *InvoiceUpdate) SetProductNo(v string) *InvoiceUpdate {
	_u.mutation.SetProductNo(v)
	return _u
}

// SetNillableProductNo sets the "product_no" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProductNo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetProductNo(*v)
	}
	return _u
}

// ClearProductNo clears the value of the "product_no" field.
func (_u *InvoiceUpdate) ClearProductNo() *InvoiceUpdate {
	_u.mutation.ClearProductNo()
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceUpdate) SetDescription(v string) *InvoiceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDescription(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InvoiceUpdate) ClearDescription() *InvoiceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUm sets the "um" field.
func (_u *InvoiceUpdate) SetUm(v string) *InvoiceUpdate {
	_u.mutation.SetUm(v)
	return _u
}

// SetNillableUm sets the "um" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUm(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetUm(*v)
	}
	return _u
}

// ClearUm clears the value of the "um" field.
func (_u *InvoiceUpdate) ClearUm() *InvoiceUpdate {
	_u.mutation.ClearUm()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetItemQty sets the "item_qty" field.
func (_u *InvoiceUpdate) SetItemQty(v float64) *InvoiceUpdate {
	_u.mutation.ResetItemQty()
	_u.mutation.SetItemQty(v)
	return _u
}

// SetNillableItemQty sets the "item_qty" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableItemQty(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetItemQty(*v)
	}
	return _u
}

// AddItemQty adds value to the "item_qty" field.
func (_u *InvoiceUpdate) AddItemQty(v float64) *InvoiceUpdate {
	_u.mutation.AddItemQty(v)
	return _u
}

// ClearItemQty clears the value of the "item_qty" field.
func (_u *InvoiceUpdate) ClearItemQty() *InvoiceUpdate {
	_u.mutation.ClearItemQty()
	return _u
}

// SetPriceEach sets the "price_each" field.
func (_u *InvoiceUpdate) SetPriceEach(v float64) *InvoiceUpdate {
	_u.mutation.ResetPriceEach()
	_u.mutation.SetPriceEach(v)
	return _u
}

// SetNillablePriceEach sets the "price_each" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePriceEach(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetPriceEach(*v)
	}
	return _u
}

// AddPriceEach adds value to the "price_each" field.
func (_u *InvoiceUpdate) AddPriceEach(v float64) *InvoiceUpdate {
	_u.mutation.AddPriceEach(v)
	return _u
}

// ClearPriceEach clears the value of the "price_each" field.
func (_u *InvoiceUpdate) ClearPriceEach() *InvoiceUpdate {
	_u.mutation.ClearPriceEach()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdate) SetAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdate) AddAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdate) ClearAmount() *InvoiceUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdate) SetTotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdate) AddTotal(v float64) *InvoiceUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdate) SetNeedsReview(v bool) *InvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNeedsReview(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *InvoiceUpdate) SetFingerprint(v string) *InvoiceUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFingerprint(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdate) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) AddFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) ClearFiles() *InvoiceUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdate) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdate) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Num(); ok {
		if err := invoice.NumValidator(v); err != nil {
			return &ValidationError{Name: "num", err: fmt.Errorf(`ent: validator failed for field "Invoice.num": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Num(); ok {
		_spec.SetField(invoice.FieldNum, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SoNum(); ok {
		_spec.SetField(invoice.FieldSoNum, field.TypeString, value)
	}
	if _u.mutation.SoNumCleared() {
		_spec.ClearField(invoice.FieldSoNum, field.TypeString)
	}
	if value, ok := _u.mutation.Incoterm(); ok {
		_spec.SetField(invoice.FieldIncoterm, field.TypeString, value)
	}
	if _u.mutation.IncotermCleared() {
		_spec.ClearField(invoice.FieldIncoterm, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.ShipDate(); ok {
		_spec.SetField(invoice.FieldShipDate, field.TypeTime, value)
	}
	if _u.mutation.ShipDateCleared() {
		_spec.ClearField(invoice.FieldShipDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MethodOfShipment(); ok {
		_spec.SetField(invoice.FieldMethodOfShipment, field.TypeString, value)
	}
	if _u.mutation.MethodOfShipmentCleared() {
		_spec.ClearField(invoice.FieldMethodOfShipment, field.TypeString)
	}
	if value, ok := _u.mutation.ShipTo(); ok {
		_spec.SetField(invoice.FieldShipTo, field.TypeString, value)
	}
	if _u.mutation.ShipToCleared() {
		_spec.ClearField(invoice.FieldShipTo, field.TypeString)
	}
	if value, ok := _u.mutation.BillTo(); ok {
		_spec.SetField(invoice.FieldBillTo, field.TypeString, value)
	}
	if _u.mutation.BillToCleared() {
		_spec.ClearField(invoice.FieldBillTo, field.TypeString)
	}
	if value, ok := _u.mutation.ProductNo(); ok {
		_spec.SetField(invoice.FieldProductNo, field.TypeString, value)
	}
	if _u.mutation.ProductNoCleared() {
		_spec.ClearField(invoice.FieldProductNo, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Um(); ok {
		_spec.SetField(invoice.FieldUm, field.TypeString, value)
	}
	if _u.mutation.UmCleared() {
		_spec.ClearField(invoice.FieldUm, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ItemQty(); ok {
		_spec.SetField(invoice.FieldItemQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedItemQty(); ok {
		_spec.AddField(invoice.FieldItemQty, field.TypeFloat64, value)
	}
	if _u.mutation.ItemQtyCleared() {
		_spec.ClearField(invoice.FieldItemQty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceEach(); ok {
		_spec.SetField(invoice.FieldPriceEach, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceEach(); ok {
		_spec.AddField(invoice.FieldPriceEach, field.TypeFloat64, value)
	}
	if _u.mutation.PriceEachCleared() {
		_spec.ClearField(invoice.FieldPriceEach, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetNum sets the "num" field.
func (_u *InvoiceUpdateOne) SetNum(v string) *InvoiceUpdateOne {
	_u.mutation.SetNum(v)
	return _u
}

// SetNillableNum sets the "num" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNum(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNum(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdateOne) SetIssueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIssueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetSoNum sets the "so_num" field.
func (_u *InvoiceUpdateOne) SetSoNum(v string) *InvoiceUpdateOne {
	_u.mutation.SetSoNum(v)
	return _u
}

// SetNillableSoNum sets the "so_num" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSoNum(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSoNum(*v)
	}
	return _u
}

// ClearSoNum clears the value of the "so_num" field.
func (_u *InvoiceUpdateOne) ClearSoNum() *InvoiceUpdateOne {
	_u.mutation.ClearSoNum()
	return _u
}

// SetIncoterm sets the "incoterm" field.
func (_u *InvoiceUpdateOne) SetIncoterm(v string) *InvoiceUpdateOne {
	_u.mutation.SetIncoterm(v)
	return _u
}

// SetNillableIncoterm sets the "incoterm" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIncoterm(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIncoterm(*v)
	}
	return _u
}

// ClearIncoterm clears the value of the "incoterm" field.
func (_u *InvoiceUpdateOne) ClearIncoterm() *InvoiceUpdateOne {
	_u.mutation.ClearIncoterm()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdateOne) SetPaymentTerms(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentTerms(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdateOne) ClearPaymentTerms() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetShipDate sets the "ship_date" field.
func (_u *InvoiceUpdateOne) SetShipDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetShipDate(v)
	return _u
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableShipDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetShipDate(*v)
	}
	return _u
}

// ClearShipDate clears the value of the "ship_date" field.
func (_u *InvoiceUpdateOne) ClearShipDate() *InvoiceUpdateOne {
	_u.mutation.ClearShipDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetMethodOfShipment sets the "method_of_shipment" field.
func (_u *InvoiceUpdateOne) SetMethodOfShipment(v string) *InvoiceUpdateOne {
	_u.mutation.SetMethodOfShipment(v)
	return _u
}

// SetNillableMethodOfShipment sets the "method_of_shipment" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableMethodOfShipment(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetMethodOfShipment(*v)
	}
	return _u
}

// ClearMethodOfShipment clears the value of the "method_of_shipment" field.
func (_u *InvoiceUpdateOne) ClearMethodOfShipment() *InvoiceUpdateOne {
	_u.mutation.ClearMethodOfShipment()
	return _u
}

// SetShipTo sets the "ship_to" field.
func (_u *InvoiceUpdateOne) SetShipTo(v string) *InvoiceUpdateOne {
	_u.mutation.SetShipTo(v)
	return _u
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableShipTo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetShipTo(*v)
	}
	return _u
}

// ClearShipTo clears the value of the "ship_to" field.
func (_u *InvoiceUpdateOne) ClearShipTo() *InvoiceUpdateOne {
	_u.mutation.ClearShipTo()
	return _u
}

// SetBillTo sets the "bill_to" field.
func (_u *InvoiceUpdateOne) SetBillTo(v string) *InvoiceUpdateOne {
	_u.mutation.SetBillTo(v)
	return _u
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBillTo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBillTo(*v)
	}
	return _u
}

// ClearBillTo clears the value of the "bill_to" field.
func (_u *InvoiceUpdateOne) ClearBillTo() *InvoiceUpdateOne {
	_u.mutation.ClearBillTo()
	return _u
}

// SetProductNo sets the "product_no" field.
func (_u *InvoiceUpdateOne) SetProductNo(v string) *InvoiceUpdateOne {
	_u.mutation.SetProductNo(v)
	return _u
}

// SetNillableProductNo sets the "product_no" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProductNo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProductNo(*v)
	}
	return _u
}

// ClearProductNo clears the value of the "product_no" field.
func (_u *InvoiceUpdateOne) ClearProductNo() *InvoiceUpdateOne {
	_u.mutation.ClearProductNo()
	return _u
}

// SetDescription sets the "description" field.
func (_u *InvoiceUpdateOne) SetDescription(v string) *InvoiceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDescription(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InvoiceUpdateOne) ClearDescription() *InvoiceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUm sets the "um" field.
func (_u *InvoiceUpdateOne) SetUm(v string) *InvoiceUpdateOne {
	_u.mutation.SetUm(v)
	return _u
}

// SetNillableUm sets the "um" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUm(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUm(*v)
	}
	return _u
}

// ClearUm clears the value of the "um" field.
func (_u *InvoiceUpdateOne) ClearUm() *InvoiceUpdateOne {
	_u.mutation.ClearUm()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetItemQty sets the "item_qty" field.
func (_u *InvoiceUpdateOne) SetItemQty(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetItemQty()
	_u.mutation.SetItemQty(v)
	return _u
}

// SetNillableItemQty sets the "item_qty" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableItemQty(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetItemQty(*v)
	}
	return _u
}

// AddItemQty adds value to the "item_qty" field.
func (_u *InvoiceUpdateOne) AddItemQty(v float64) *InvoiceUpdateOne {
	_u.mutation.AddItemQty(v)
	return _u
}

// ClearItemQty clears the value of the "item_qty" field.
func (_u *InvoiceUpdateOne) ClearItemQty() *InvoiceUpdateOne {
	_u.mutation.ClearItemQty()
	return _u
}

// SetPriceEach sets the "price_each" field.
func (_u *InvoiceUpdateOne) SetPriceEach(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetPriceEach()
	_u.mutation.SetPriceEach(v)
	return _u
}

// SetNillablePriceEach sets the "price_each" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePriceEach(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPriceEach(*v)
	}
	return _u
}

// AddPriceEach adds value to the "price_each" field.
func (_u *InvoiceUpdateOne) AddPriceEach(v float64) *InvoiceUpdateOne {
	_u.mutation.AddPriceEach(v)
	return _u
}

// ClearPriceEach clears the value of the "price_each" field.
func (_u *InvoiceUpdateOne) ClearPriceEach() *InvoiceUpdateOne {
	_u.mutation.ClearPriceEach()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdateOne) SetAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdateOne) AddAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdateOne) ClearAmount() *InvoiceUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdateOne) SetTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdateOne) AddTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdateOne) SetNeedsReview(v bool) *InvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNeedsReview(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *InvoiceUpdateOne) SetFingerprint(v string) *InvoiceUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFingerprint(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdateOne) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) AddFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) ClearFiles() *InvoiceUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdateOne) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Num(); ok {
		if err := invoice.NumValidator(v); err != nil {
			return &ValidationError{Name: "num", err: fmt.Errorf(`ent: validator failed for field "Invoice.num": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Num(); ok {
		_spec.SetField(invoice.FieldNum, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SoNum(); ok {
		_spec.SetField(invoice.FieldSoNum, field.TypeString, value)
	}
	if _u.mutation.SoNumCleared() {
		_spec.ClearField(invoice.FieldSoNum, field.TypeString)
	}
	if value, ok := _u.mutation.Incoterm(); ok {
		_spec.SetField(invoice.FieldIncoterm, field.TypeString, value)
	}
	if _u.mutation.IncotermCleared() {
		_spec.ClearField(invoice.FieldIncoterm, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.ShipDate(); ok {
		_spec.SetField(invoice.FieldShipDate, field.TypeTime, value)
	}
	if _u.mutation.ShipDateCleared() {
		_spec.ClearField(invoice.FieldShipDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MethodOfShipment(); ok {
		_spec.SetField(invoice.FieldMethodOfShipment, field.TypeString, value)
	}
	if _u.mutation.MethodOfShipmentCleared() {
		_spec.ClearField(invoice.FieldMethodOfShipment, field.TypeString)
	}
	if value, ok := _u.mutation.ShipTo(); ok {
		_spec.SetField(invoice.FieldShipTo, field.TypeString, value)
	}
	if _u.mutation.ShipToCleared() {
		_spec.ClearField(invoice.FieldShipTo, field.TypeString)
	}
	if value, ok := _u.mutation.BillTo(); ok {
		_spec.SetField(invoice.FieldBillTo, field.TypeString, value)
	}
	if _u.mutation.BillToCleared() {
		_spec.ClearField(invoice.FieldBillTo, field.TypeString)
	}
	if value, ok := _u.mutation.ProductNo(); ok {
		_spec.SetField(invoice.FieldProductNo, field.TypeString, value)
	}
	if _u.mutation.ProductNoCleared() {
		_spec.ClearField(invoice.FieldProductNo, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Um(); ok {
		_spec.SetField(invoice.FieldUm, field.TypeString, value)
	}
	if _u.mutation.UmCleared() {
		_spec.ClearField(invoice.FieldUm, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ItemQty(); ok {
		_spec.SetField(invoice.FieldItemQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedItemQty(); ok {
		_spec.AddField(invoice.FieldItemQty, field.TypeFloat64, value)
	}
	if _u.mutation.ItemQtyCleared() {
		_spec.ClearField(invoice.FieldItemQty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceEach(); ok {
		_spec.SetField(invoice.FieldPriceEach, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceEach(); ok {
		_spec.AddField(invoice.FieldPriceEach, field.TypeFloat64, value)
	}
	if _u.mutation.PriceEachCleared() {
		_spec.ClearField(invoice.FieldPriceEach, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
