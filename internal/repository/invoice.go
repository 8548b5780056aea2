package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arrowtc/invoice-pipeline/gen/ent"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoice"
	"github.com/arrowtc/invoice-pipeline/gen/ent/invoicefile"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

// InsertStatus is the outcome of an insert attempt.
type InsertStatus string

const (
	InsertOK        InsertStatus = "ok"
	InsertDuplicate InsertStatus = "duplicate"
)

// InsertResult reports what happened to one record.
type InsertResult struct {
	Status InsertStatus
	ID     string
	Num    string
}

type InvoiceRepository interface {
	// Insert persists the record unless an invoice with the same number,
	// issue date and total already exists.
	Insert(ctx context.Context, rec extract.InvoiceRecord, fingerprint string) (*InsertResult, error)
	// List returns invoices in the issue-date window, ordered by date.
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Invoice, error)
	// Get returns one invoice by id.
	Get(ctx context.Context, id uuid.UUID) (*ent.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) Insert(ctx context.Context, rec extract.InvoiceRecord, fingerprint string) (*InsertResult, error) {
	num := strVal(rec.InvoiceNo)
	if num == "" {
		return nil, fmt.Errorf("record has no invoice number")
	}
	issueDate, err := ParseInvoiceDate(strVal(rec.InvoiceDate))
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", num, err)
	}
	if rec.Total == nil {
		return nil, fmt.Errorf("invoice %s has no total", num)
	}

	// fingerprint dedup runs upstream; this catches the same invoice
	// arriving with a different fingerprint (rescans that moved a field)
	exists, err := r.client.Invoice.Query().
		Where(
			invoice.Num(num),
			invoice.IssueDate(issueDate),
			invoice.Total(*rec.Total),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("duplicate check for invoice %s: %w", num, err)
	}
	if exists {
		r.logger.Info("invoice already stored, insert skipped", "num", num)
		return &InsertResult{Status: InsertDuplicate, Num: num}, nil
	}

	create := r.client.Invoice.Create().
		SetNum(num).
		SetIssueDate(issueDate).
		SetTotal(*rec.Total).
		SetNeedsReview(rec.NeedsReview).
		SetFingerprint(fingerprint).
		SetShipTo(rec.ShipTo).
		SetBillTo(rec.BillTo).
		SetNillableSoNum(rec.SalesOrderNo).
		SetNillableIncoterm(rec.Incoterm).
		SetNillablePaymentTerms(rec.PaymentTerms).
		SetNillableMethodOfShipment(rec.Method).
		SetNillableSubtotal(rec.Subtotal)

	if d, err := ParseInvoiceDate(strVal(rec.ShipDate)); err == nil {
		create.SetShipDate(d)
	}
	if d, err := ParseInvoiceDate(strVal(rec.DueDate)); err == nil {
		create.SetDueDate(d)
	}
	if len(rec.Products) > 0 {
		p := rec.Products[0]
		create.
			SetNillableProductNo(p.ProductNo).
			SetNillableDescription(p.Description).
			SetNillableUm(p.UnitMeasure).
			SetNillableNotes(p.TransportNo).
			SetNillableItemQty(p.ItemQty).
			SetNillablePriceEach(p.PriceEach).
			SetNillableAmount(p.Amount)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert invoice %s: %w", num, err)
	}

	if err := r.attachFiles(ctx, row, rec); err != nil {
		return nil, err
	}

	r.logger.Info("invoice stored", "num", num, "id", row.ID)
	return &InsertResult{Status: InsertOK, ID: row.ID.String(), Num: num}, nil
}

func (r *invoiceRepository) attachFiles(ctx context.Context, row *ent.Invoice, rec extract.InvoiceRecord) error {
	add := func(role invoicefile.Role, path string) error {
		if path == "" {
			return nil
		}
		_, err := r.client.InvoiceFile.Create().
			SetInvoiceID(row.ID).
			SetRole(role).
			SetPath(path).
			SetFilename(baseName(path)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("attach %s file to invoice %s: %w", role, row.Num, err)
		}
		return nil
	}
	if err := add(invoicefile.RoleOrigin, rec.OriginPath); err != nil {
		return err
	}
	return add(invoicefile.RoleAttachment, rec.AttachmentPath)
}

func (r *invoiceRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Invoice, error) {
	q := r.client.Invoice.Query()
	if fromDate != nil {
		q = q.Where(invoice.IssueDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.IssueDateLTE(*toDate))
	}
	rows, err := q.Order(invoice.ByIssueDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *invoiceRepository) Get(ctx context.Context, id uuid.UUID) (*ent.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting invoice %s: %w", id, err)
	}
	return row, nil
}

// ParseInvoiceDate converts the free-form M/D/YY date the documents carry
// into a time. Stray spaces and points from recognition are stripped
// first; a four-digit year is accepted too.
func ParseInvoiceDate(s string) (time.Time, error) {
	s = strings.NewReplacer(" ", "", ".", "").Replace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{"1/2/06", "1/2/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
