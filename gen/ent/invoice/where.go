// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arrowtc/invoice-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// Num applies equality check predicate on the "num" field. It's identical to NumEQ.
func Num(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNum, v))
}

// IssueDate applies equality check predicate on the "issue_date" field. It's identical to IssueDateEQ.
func IssueDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIssueDate, v))
}

// SoNum applies equality check predicate on the "so_num" field. It's identical to SoNumEQ.
func SoNum(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSoNum, v))
}

// Incoterm applies equality check predicate on the "incoterm" field. It's identical to IncotermEQ.
func Incoterm(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIncoterm, v))
}

// PaymentTerms applies equality check predicate on the "payment_terms" field. It's identical to PaymentTermsEQ.
func PaymentTerms(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentTerms, v))
}

// ShipDate applies equality check predicate on the "ship_date" field. It's identical to ShipDateEQ.
func ShipDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldShipDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDueDate, v))
}

// MethodOfShipment applies equality check predicate on the "method_of_shipment" field. It's identical to MethodOfShipmentEQ.
func MethodOfShipment(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldMethodOfShipment, v))
}

// ShipTo applies equality check predicate on the "ship_to" field. It's identical to ShipToEQ.
func ShipTo(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldShipTo, v))
}

// BillTo applies equality check predicate on the "bill_to" field. It's identical to BillToEQ.
func BillTo(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBillTo, v))
}

// ProductNo applies equality check predicate on the "product_no" field. It's identical to ProductNoEQ.
func ProductNo(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldProductNo, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDescription, v))
}

// Um applies equality check predicate on the "um" field. It's identical to UmEQ.
func Um(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUm, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNotes, v))
}

// ItemQty applies equality check predicate on the "item_qty" field. It's identical to ItemQtyEQ.
func ItemQty(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldItemQty, v))
}

// PriceEach applies equality check predicate on the "price_each" field. It's identical to PriceEachEQ.
func PriceEach(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPriceEach, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldAmount, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotal, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNeedsReview, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// NumEQ applies the EQ predicate on the "num" field.
func NumEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNum, v))
}

// NumNEQ applies the NEQ predicate on the "num" field.
func NumNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldNum, v))
}

// NumIn applies the In predicate on the "num" field.
func NumIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldNum, vs...))
}

// NumNotIn applies the NotIn predicate on the "num" field.
func NumNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldNum, vs...))
}

// NumGT applies the GT predicate on the "num" field.
func NumGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldNum, v))
}

// NumGTE applies the GTE predicate on the "num" field.
func NumGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldNum, v))
}

// NumLT applies the LT predicate on the "num" field.
func NumLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldNum, v))
}

// NumLTE applies the LTE predicate on the "num" field.
func NumLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldNum, v))
}

// NumContains applies the Contains predicate on the "num" field.
func NumContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldNum, v))
}

// NumHasPrefix applies the HasPrefix predicate on the "num" field.
func NumHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldNum, v))
}

// NumHasSuffix applies the HasSuffix predicate on the "num" field.
func NumHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldNum, v))
}

// NumEqualFold applies the EqualFold predicate on the "num" field.
func NumEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldNum, v))
}

// NumContainsFold applies the ContainsFold predicate on the "num" field.
func NumContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldNum, v))
}

// IssueDateEQ applies the EQ predicate on the "issue_date" field.
func IssueDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIssueDate, v))
}

// IssueDateNEQ applies the NEQ predicate on the "issue_date" field.
func IssueDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldIssueDate, v))
}

// IssueDateIn applies the In predicate on the "issue_date" field.
func IssueDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldIssueDate, vs...))
}

// IssueDateNotIn applies the NotIn predicate on the "issue_date" field.
func IssueDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldIssueDate, vs...))
}

// IssueDateGT applies the GT predicate on the "issue_date" field.
func IssueDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldIssueDate, v))
}

// IssueDateGTE applies the GTE predicate on the "issue_date" field.
func IssueDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldIssueDate, v))
}

// IssueDateLT applies the LT predicate on the "issue_date" field.
func IssueDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldIssueDate, v))
}

// IssueDateLTE applies the LTE predicate on the "issue_date" field.
func IssueDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldIssueDate, v))
}

// SoNumEQ applies the EQ predicate on the "so_num" field.
func SoNumEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSoNum, v))
}

// SoNumNEQ applies the NEQ predicate on the "so_num" field.
func SoNumNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSoNum, v))
}

// SoNumIn applies the In predicate on the "so_num" field.
func SoNumIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSoNum, vs...))
}

// SoNumNotIn applies the NotIn predicate on the "so_num" field.
func SoNumNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSoNum, vs...))
}

// SoNumGT applies the GT predicate on the "so_num" field.
func SoNumGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSoNum, v))
}

// SoNumGTE applies the GTE predicate on the "so_num" field.
func SoNumGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSoNum, v))
}

// SoNumLT applies the LT predicate on the "so_num" field.
func SoNumLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSoNum, v))
}

// SoNumLTE applies the LTE predicate on the "so_num" field.
func SoNumLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSoNum, v))
}

// SoNumContains applies the Contains predicate on the "so_num" field.
func SoNumContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSoNum, v))
}

// SoNumHasPrefix applies the HasPrefix predicate on the "so_num" field.
func SoNumHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSoNum, v))
}

// SoNumHasSuffix applies the HasSuffix predicate on the "so_num" field.
func SoNumHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSoNum, v))
}

// SoNumIsNil applies the IsNil predicate on the "so_num" field.
func SoNumIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSoNum))
}

// SoNumNotNil applies the NotNil predicate on the "so_num" field.
func SoNumNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSoNum))
}

// SoNumEqualFold applies the EqualFold predicate on the "so_num" field.
func SoNumEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSoNum, v))
}

// SoNumContainsFold applies the ContainsFold predicate on the "so_num" field.
func SoNumContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSoNum, v))
}

// IncotermEQ applies the EQ predicate on the "incoterm" field.
func IncotermEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldIncoterm, v))
}

// IncotermNEQ applies the NEQ predicate on the "incoterm" field.
func IncotermNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldIncoterm, v))
}

// IncotermIn applies the In predicate on the "incoterm" field.
func IncotermIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldIncoterm, vs...))
}

// IncotermNotIn applies the NotIn predicate on the "incoterm" field.
func IncotermNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldIncoterm, vs...))
}

// IncotermGT applies the GT predicate on the "incoterm" field.
func IncotermGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldIncoterm, v))
}

// IncotermGTE applies the GTE predicate on the "incoterm" field.
func IncotermGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldIncoterm, v))
}

// IncotermLT applies the LT predicate on the "incoterm" field.
func IncotermLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldIncoterm, v))
}

// IncotermLTE applies the LTE predicate on the "incoterm" field.
func IncotermLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldIncoterm, v))
}

// IncotermContains applies the Contains predicate on the "incoterm" field.
func IncotermContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldIncoterm, v))
}

// IncotermHasPrefix applies the HasPrefix predicate on the "incoterm" field.
func IncotermHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldIncoterm, v))
}

// IncotermHasSuffix applies the HasSuffix predicate on the "incoterm" field.
func IncotermHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldIncoterm, v))
}

// IncotermIsNil applies the IsNil predicate on the "incoterm" field.
func IncotermIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldIncoterm))
}

// IncotermNotNil applies the NotNil predicate on the "incoterm" field.
func IncotermNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldIncoterm))
}

// IncotermEqualFold applies the EqualFold predicate on the "incoterm" field.
func IncotermEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldIncoterm, v))
}

// IncotermContainsFold applies the ContainsFold predicate on the "incoterm" field.
func IncotermContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldIncoterm, v))
}

// PaymentTermsEQ applies the EQ predicate on the "payment_terms" field.
func PaymentTermsEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentTerms, v))
}

// PaymentTermsNEQ applies the NEQ predicate on the "payment_terms" field.
func PaymentTermsNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPaymentTerms, v))
}

// PaymentTermsIn applies the In predicate on the "payment_terms" field.
func PaymentTermsIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPaymentTerms, vs...))
}

// PaymentTermsNotIn applies the NotIn predicate on the "payment_terms" field.
func PaymentTermsNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPaymentTerms, vs...))
}

// PaymentTermsGT applies the GT predicate on the "payment_terms" field.
func PaymentTermsGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPaymentTerms, v))
}

// PaymentTermsGTE applies the GTE predicate on the "payment_terms" field.
func PaymentTermsGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPaymentTerms, v))
}

// PaymentTermsLT applies the LT predicate on the "payment_terms" field.
func PaymentTermsLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPaymentTerms, v))
}

// PaymentTermsLTE applies the LTE predicate on the "payment_terms" field.
func PaymentTermsLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPaymentTerms, v))
}

// PaymentTermsContains applies the Contains predicate on the "payment_terms" field.
func PaymentTermsContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPaymentTerms, v))
}

// PaymentTermsHasPrefix applies the HasPrefix predicate on the "payment_terms" field.
func PaymentTermsHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPaymentTerms, v))
}

// PaymentTermsHasSuffix applies the HasSuffix predicate on the "payment_terms" field.
func PaymentTermsHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPaymentTerms, v))
}

// PaymentTermsIsNil applies the IsNil predicate on the "payment_terms" field.
func PaymentTermsIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPaymentTerms))
}

// PaymentTermsNotNil applies the NotNil predicate on the "payment_terms" field.
func PaymentTermsNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPaymentTerms))
}

// PaymentTermsEqualFold applies the EqualFold predicate on the "payment_terms" field.
func PaymentTermsEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPaymentTerms, v))
}

// PaymentTermsContainsFold applies the ContainsFold predicate on the "payment_terms" field.
func PaymentTermsContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPaymentTerms, v))
}

// ShipDateEQ applies the EQ predicate on the "ship_date" field.
func ShipDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldShipDate, v))
}

// ShipDateNEQ applies the NEQ predicate on the "ship_date" field.
func ShipDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldShipDate, v))
}

// ShipDateIn applies the In predicate on the "ship_date" field.
func ShipDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldShipDate, vs...))
}

// ShipDateNotIn applies the NotIn predicate on the "ship_date" field.
func ShipDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldShipDate, vs...))
}

// ShipDateGT applies the GT predicate on the "ship_date" field.
func ShipDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldShipDate, v))
}

// ShipDateGTE applies the GTE predicate on the "ship_date" field.
func ShipDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldShipDate, v))
}

// ShipDateLT applies the LT predicate on the "ship_date" field.
func ShipDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldShipDate, v))
}

// ShipDateLTE applies the LTE predicate on the "ship_date" field.
func ShipDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldShipDate, v))
}

// ShipDateIsNil applies the IsNil predicate on the "ship_date" field.
func ShipDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldShipDate))
}

// ShipDateNotNil applies the NotNil predicate on the "ship_date" field.
func ShipDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldShipDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldDueDate))
}

// MethodOfShipmentEQ applies the EQ predicate on the "method_of_shipment" field.
func MethodOfShipmentEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldMethodOfShipment, v))
}

// MethodOfShipmentNEQ applies the NEQ predicate on the "method_of_shipment" field.
func MethodOfShipmentNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldMethodOfShipment, v))
}

// MethodOfShipmentIn applies the In predicate on the "method_of_shipment" field.
func MethodOfShipmentIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldMethodOfShipment, vs...))
}

// MethodOfShipmentNotIn applies the NotIn predicate on the "method_of_shipment" field.
func MethodOfShipmentNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldMethodOfShipment, vs...))
}

// MethodOfShipmentGT applies the GT predicate on the "method_of_shipment" field.
func MethodOfShipmentGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldMethodOfShipment, v))
}

// MethodOfShipmentGTE applies the GTE predicate on the "method_of_shipment" field.
func MethodOfShipmentGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldMethodOfShipment, v))
}

// MethodOfShipmentLT applies the LT predicate on the "method_of_shipment" field.
func MethodOfShipmentLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldMethodOfShipment, v))
}

// MethodOfShipmentLTE applies the LTE predicate on the "method_of_shipment" field.
func MethodOfShipmentLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldMethodOfShipment, v))
}

// MethodOfShipmentContains applies the Contains predicate on the "method_of_shipment" field.
func MethodOfShipmentContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldMethodOfShipment, v))
}

// MethodOfShipmentHasPrefix applies the HasPrefix predicate on the "method_of_shipment" field.
func MethodOfShipmentHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldMethodOfShipment, v))
}

// MethodOfShipmentHasSuffix applies the HasSuffix predicate on the "method_of_shipment" field.
func MethodOfShipmentHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldMethodOfShipment, v))
}

// MethodOfShipmentIsNil applies the IsNil predicate on the "method_of_shipment" field.
func MethodOfShipmentIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldMethodOfShipment))
}

// MethodOfShipmentNotNil applies the NotNil predicate on the "method_of_shipment" field.
func MethodOfShipmentNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldMethodOfShipment))
}

// MethodOfShipmentEqualFold applies the EqualFold predicate on the "method_of_shipment" field.
func MethodOfShipmentEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldMethodOfShipment, v))
}

// MethodOfShipmentContainsFold applies the ContainsFold predicate on the "method_of_shipment" field.
func MethodOfShipmentContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldMethodOfShipment, v))
}

// ShipToEQ applies the EQ predicate on the "ship_to" field.
func ShipToEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldShipTo, v))
}

// ShipToNEQ applies the NEQ predicate on the "ship_to" field.
func ShipToNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldShipTo, v))
}

// ShipToIn applies the In predicate on the "ship_to" field.
func ShipToIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldShipTo, vs...))
}

// ShipToNotIn applies the NotIn predicate on the "ship_to" field.
func ShipToNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldShipTo, vs...))
}

// ShipToGT applies the GT predicate on the "ship_to" field.
func ShipToGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldShipTo, v))
}

// ShipToGTE applies the GTE predicate on the "ship_to" field.
func ShipToGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldShipTo, v))
}

// ShipToLT applies the LT predicate on the "ship_to" field.
func ShipToLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldShipTo, v))
}

// ShipToLTE applies the LTE predicate on the "ship_to" field.
func ShipToLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldShipTo, v))
}

// ShipToContains applies the Contains predicate on the "ship_to" field.
func ShipToContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldShipTo, v))
}

// ShipToHasPrefix applies the HasPrefix predicate on the "ship_to" field.
func ShipToHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldShipTo, v))
}

// ShipToHasSuffix applies the HasSuffix predicate on the "ship_to" field.
func ShipToHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldShipTo, v))
}

// ShipToIsNil applies the IsNil predicate on the "ship_to" field.
func ShipToIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldShipTo))
}

// ShipToNotNil applies the NotNil predicate on the "ship_to" field.
func ShipToNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldShipTo))
}

// ShipToEqualFold applies the EqualFold predicate on the "ship_to" field.
func ShipToEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldShipTo, v))
}

// ShipToContainsFold applies the ContainsFold predicate on the "ship_to" field.
func ShipToContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldShipTo, v))
}

// BillToEQ applies the EQ predicate on the "bill_to" field.
func BillToEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBillTo, v))
}

// BillToNEQ applies the NEQ predicate on the "bill_to" field.
func BillToNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBillTo, v))
}

// BillToIn applies the In predicate on the "bill_to" field.
func BillToIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBillTo, vs...))
}

// BillToNotIn applies the NotIn predicate on the "bill_to" field.
func BillToNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBillTo, vs...))
}

// BillToGT applies the GT predicate on the "bill_to" field.
func BillToGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBillTo, v))
}

// BillToGTE applies the GTE predicate on the "bill_to" field.
func BillToGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBillTo, v))
}

// BillToLT applies the LT predicate on the "bill_to" field.
func BillToLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBillTo, v))
}

// BillToLTE applies the LTE predicate on the "bill_to" field.
func BillToLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBillTo, v))
}

// BillToContains applies the Contains predicate on the "bill_to" field.
func BillToContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBillTo, v))
}

// BillToHasPrefix applies the HasPrefix predicate on the "bill_to" field.
func BillToHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBillTo, v))
}

// BillToHasSuffix applies the HasSuffix predicate on the "bill_to" field.
func BillToHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBillTo, v))
}

// BillToIsNil applies the IsNil predicate on the "bill_to" field.
func BillToIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBillTo))
}

// BillToNotNil applies the NotNil predicate on the "bill_to" field.
func BillToNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBillTo))
}

// BillToEqualFold applies the EqualFold predicate on the "bill_to" field.
func BillToEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBillTo, v))
}

// BillToContainsFold applies the ContainsFold predicate on the "bill_to" field.
func BillToContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBillTo, v))
}

// ProductNoEQ applies the EQ predicate on the "product_no" field.
func ProductNoEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldProductNo, v))
}

// ProductNoNEQ applies the NEQ predicate on the "product_no" field.
func ProductNoNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldProductNo, v))
}

// ProductNoIn applies the In predicate on the "product_no" field.
func ProductNoIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldProductNo, vs...))
}

// ProductNoNotIn applies the NotIn predicate on the "product_no" field.
func ProductNoNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldProductNo, vs...))
}

// ProductNoGT applies the GT predicate on the "product_no" field.
func ProductNoGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldProductNo, v))
}

// ProductNoGTE applies the GTE predicate on the "product_no" field.
func ProductNoGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldProductNo, v))
}

// ProductNoLT applies the LT predicate on the "product_no" field.
func ProductNoLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldProductNo, v))
}

// ProductNoLTE applies the LTE predicate on the "product_no" field.
func ProductNoLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldProductNo, v))
}

// ProductNoContains applies the Contains predicate on the "product_no" field.
func ProductNoContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldProductNo, v))
}

// ProductNoHasPrefix applies the HasPrefix predicate on the "product_no" field.
func ProductNoHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldProductNo, v))
}

// ProductNoHasSuffix applies the HasSuffix predicate on the "product_no" field.
func ProductNoHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldProductNo, v))
}

// ProductNoIsNil applies the IsNil predicate on the "product_no" field.
func ProductNoIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldProductNo))
}

// ProductNoNotNil applies the NotNil predicate on the "product_no" field.
func ProductNoNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldProductNo))
}

// ProductNoEqualFold applies the EqualFold predicate on the "product_no" field.
func ProductNoEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldProductNo, v))
}

// ProductNoContainsFold applies the ContainsFold predicate on the "product_no" field.
func ProductNoContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldProductNo, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldDescription, v))
}

// UmEQ applies the EQ predicate on the "um" field.
func UmEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUm, v))
}

// UmNEQ applies the NEQ predicate on the "um" field.
func UmNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUm, v))
}

// UmIn applies the In predicate on the "um" field.
func UmIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUm, vs...))
}

// UmNotIn applies the NotIn predicate on the "um" field.
func UmNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUm, vs...))
}

// UmGT applies the GT predicate on the "um" field.
func UmGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUm, v))
}

// UmGTE applies the GTE predicate on the "um" field.
func UmGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUm, v))
}

// UmLT applies the LT predicate on the "um" field.
func UmLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUm, v))
}

// UmLTE applies the LTE predicate on the "um" field.
func UmLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUm, v))
}

// UmContains applies the Contains predicate on the "um" field.
func UmContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldUm, v))
}

// UmHasPrefix applies the HasPrefix predicate on the "um" field.
func UmHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldUm, v))
}

// UmHasSuffix applies the HasSuffix predicate on the "um" field.
func UmHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldUm, v))
}

// UmIsNil applies the IsNil predicate on the "um" field.
func UmIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldUm))
}

// UmNotNil applies the NotNil predicate on the "um" field.
func UmNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldUm))
}

// UmEqualFold applies the EqualFold predicate on the "um" field.
func UmEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldUm, v))
}

// UmContainsFold applies the ContainsFold predicate on the "um" field.
func UmContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldUm, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldNotes, v))
}

// ItemQtyEQ applies the EQ predicate on the "item_qty" field.
func ItemQtyEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldItemQty, v))
}

// ItemQtyNEQ applies the NEQ predicate on the "item_qty" field.
func ItemQtyNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldItemQty, v))
}

// ItemQtyIn applies the In predicate on the "item_qty" field.
func ItemQtyIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldItemQty, vs...))
}

// ItemQtyNotIn applies the NotIn predicate on the "item_qty" field.
func ItemQtyNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldItemQty, vs...))
}

// ItemQtyGT applies the GT predicate on the "item_qty" field.
func ItemQtyGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldItemQty, v))
}

// ItemQtyGTE applies the GTE predicate on the "item_qty" field.
func ItemQtyGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldItemQty, v))
}

// ItemQtyLT applies the LT predicate on the "item_qty" field.
func ItemQtyLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldItemQty, v))
}

// ItemQtyLTE applies the LTE predicate on the "item_qty" field.
func ItemQtyLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldItemQty, v))
}

// ItemQtyIsNil applies the IsNil predicate on the "item_qty" field.
func ItemQtyIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldItemQty))
}

// ItemQtyNotNil applies the NotNil predicate on the "item_qty" field.
func ItemQtyNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldItemQty))
}

// PriceEachEQ applies the EQ predicate on the "price_each" field.
func PriceEachEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPriceEach, v))
}

// PriceEachNEQ applies the NEQ predicate on the "price_each" field.
func PriceEachNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPriceEach, v))
}

// PriceEachIn applies the In predicate on the "price_each" field.
func PriceEachIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPriceEach, vs...))
}

// PriceEachNotIn applies the NotIn predicate on the "price_each" field.
func PriceEachNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPriceEach, vs...))
}

// PriceEachGT applies the GT predicate on the "price_each" field.
func PriceEachGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPriceEach, v))
}

// PriceEachGTE applies the GTE predicate on the "price_each" field.
func PriceEachGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPriceEach, v))
}

// PriceEachLT applies the LT predicate on the "price_each" field.
func PriceEachLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPriceEach, v))
}

// PriceEachLTE applies the LTE predicate on the "price_each" field.
func PriceEachLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPriceEach, v))
}

// PriceEachIsNil applies the IsNil predicate on the "price_each" field.
func PriceEachIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPriceEach))
}

// PriceEachNotNil applies the NotNil predicate on the "price_each" field.
func PriceEachNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPriceEach))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldAmount))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSubtotal))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotal, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldNeedsReview, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldFingerprint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.InvoiceFile) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
