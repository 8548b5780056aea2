// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoice"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetNum sets the "num" field.
func (_c *InvoiceCreate) SetNum(v string) *InvoiceCreate {
	_c.mutation.SetNum(v)
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *InvoiceCreate) SetIssueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetSoNum sets the "so_num" field.
func (_c *InvoiceCreate) SetSoNum(v string) *InvoiceCreate {
	_c.mutation.SetSoNum(v)
	return _c
}

// SetNillableSoNum sets the "so_num" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSoNum(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSoNum(*v)
	}
	return _c
}

// SetIncoterm sets the "incoterm" field.
func (_c *InvoiceCreate) SetIncoterm(v string) *InvoiceCreate {
	_c.mutation.SetIncoterm(v)
	return _c
}

// SetNillableIncoterm sets the "incoterm" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableIncoterm(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetIncoterm(*v)
	}
	return _c
}

// SetPaymentTerms sets the "payment_terms" field.
func (_c *InvoiceCreate) SetPaymentTerms(v string) *InvoiceCreate {
	_c.mutation.SetPaymentTerms(v)
	return _c
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentTerms(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentTerms(*v)
	}
	return _c
}

// SetShipDate sets the "ship_date" field.
func (_c *InvoiceCreate) SetShipDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetShipDate(v)
	return _c
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableShipDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetShipDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceCreate) SetDueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDueDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetMethodOfShipment sets the "method_of_shipment" field.
func (_c *InvoiceCreate) SetMethodOfShipment(v string) *InvoiceCreate {
	_c.mutation.SetMethodOfShipment(v)
	return _c
}

// SetNillableMethodOfShipment sets the "method_of_shipment" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableMethodOfShipment(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetMethodOfShipment(*v)
	}
	return _c
}

// SetShipTo sets the "ship_to" field.
func (_c *InvoiceCreate) SetShipTo(v string) *InvoiceCreate {
	_c.mutation.SetShipTo(v)
	return _c
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableShipTo(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetShipTo(*v)
	}
	return _c
}

// SetBillTo sets the "bill_to" field.
func (_c *InvoiceCreate) SetBillTo(v string) *InvoiceCreate {
	_c.mutation.SetBillTo(v)
	return _c
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBillTo(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBillTo(*v)
	}
	return _c
}

// SetProductNo sets the "product_no" field.
func (_c *InvoiceCreate) SetProductNo(v string) *InvoiceCreate {
	_c.mutation.SetProductNo(v)
	return _c
}

// SetNillableProductNo sets the "product_no" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableProductNo(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetProductNo(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *InvoiceCreate) SetDescription(v string) *InvoiceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDescription(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetUm sets the "um" field.
func (_c *InvoiceCreate) SetUm(v string) *InvoiceCreate {
	_c.mutation.SetUm(v)
	return _c
}

// SetNillableUm sets the "um" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUm(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetUm(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InvoiceCreate) SetNotes(v string) *InvoiceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNotes(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetItemQty sets the "item_qty" field.
func (_c *InvoiceCreate) SetItemQty(v float64) *InvoiceCreate {
	_c.mutation.SetItemQty(v)
	return _c
}

// SetNillableItemQty sets the "item_qty" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableItemQty(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetItemQty(*v)
	}
	return _c
}

// SetPriceEach sets the "price_each" field.
func (_c *InvoiceCreate) SetPriceEach(v float64) *InvoiceCreate {
	_c.mutation.SetPriceEach(v)
	return _c
}

// SetNillablePriceEach sets the "price_each" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePriceEach(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetPriceEach(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *InvoiceCreate) SetAmount(v float64) *InvoiceCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v float64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSubtotal(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *InvoiceCreate) SetTotal(v float64) *InvoiceCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *InvoiceCreate) SetNeedsReview(v bool) *InvoiceCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNeedsReview(v *bool) *InvoiceCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *InvoiceCreate) SetFingerprint(v string) *InvoiceCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_c *InvoiceCreate) AddFileIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_c *InvoiceCreate) AddFiles(v ...*InvoiceFile) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := invoice.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.Num(); !ok {
		return &ValidationError{Name: "num", err: errors.New(`ent: missing required field "Invoice.num"`)}
	}
	if v, ok := _c.mutation.Num(); ok {
		if err := invoice.NumValidator(v); err != nil {
			return &ValidationError{Name: "num", err: fmt.Errorf(`ent: validator failed for field "Invoice.num": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`ent: missing required field "Invoice.issue_date"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Invoice.total"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Invoice.needs_review"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Invoice.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Num(); ok {
		_spec.SetField(invoice.FieldNum, field.TypeString, value)
		_node.Num = value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := _c.mutation.SoNum(); ok {
		_spec.SetField(invoice.FieldSoNum, field.TypeString, value)
		_node.SoNum = &value
	}
	if value, ok := _c.mutation.Incoterm(); ok {
		_spec.SetField(invoice.FieldIncoterm, field.TypeString, value)
		_node.Incoterm = &value
	}
	if value, ok := _c.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
		_node.PaymentTerms = &value
	}
	if value, ok := _c.mutation.ShipDate(); ok {
		_spec.SetField(invoice.FieldShipDate, field.TypeTime, value)
		_node.ShipDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.MethodOfShipment(); ok {
		_spec.SetField(invoice.FieldMethodOfShipment, field.TypeString, value)
		_node.MethodOfShipment = &value
	}
	if value, ok := _c.mutation.ShipTo(); ok {
		_spec.SetField(invoice.FieldShipTo, field.TypeString, value)
		_node.ShipTo = value
	}
	if value, ok := _c.mutation.BillTo(); ok {
		_spec.SetField(invoice.FieldBillTo, field.TypeString, value)
		_node.BillTo = value
	}
	if value, ok := _c.mutation.ProductNo(); ok {
		_spec.SetField(invoice.FieldProductNo, field.TypeString, value)
		_node.ProductNo = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Um(); ok {
		_spec.SetField(invoice.FieldUm, field.TypeString, value)
		_node.Um = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ItemQty(); ok {
		_spec.SetField(invoice.FieldItemQty, field.TypeFloat64, value)
		_node.ItemQty = &value
	}
	if value, ok := _c.mutation.PriceEach(); ok {
		_spec.SetField(invoice.FieldPriceEach, field.TypeFloat64, value)
		_node.PriceEach = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
