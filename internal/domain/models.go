package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business represents the registered business profile that owns documents.
type Business struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	State     string    `db:"state" json:"state"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents a counterparty on documents. A customer with a GSTIN
// on file is treated as B2B for GSTR-1 table placement.
type Customer struct {
	ID         uuid.UUID `db:"id" json:"id"`
	BusinessID uuid.UUID `db:"business_id" json:"business_id"`
	Name       string    `db:"name" json:"name"`
	GSTIN      string    `db:"gstin" json:"gstin"`
	State      string    `db:"state" json:"state"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// LineItem is a single priced line on a taxable document. Quantity and
// UnitRate are validated non-negative before a document is finalized;
// GSTRatePercent is one of the accepted slabs.
type LineItem struct {
	Description    string          `json:"description"`
	HSNCode        string          `json:"hsn_code"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitRate       decimal.Decimal `json:"unit_rate"`
	GSTRatePercent int             `json:"gst_rate_percent"`
}

// TaxableDocument is the shared shape for invoices, credit notes, and debit
// notes. The GST type and the tax split are frozen at finalization; edits
// recompute the whole document, they never patch individual tax fields.
//
// Invariants: TotalAmount == TaxableValue + CGST + SGST + IGST, and
// CGST > 0 implies IGST == 0 (and vice versa).
type TaxableDocument struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	BusinessID     uuid.UUID       `db:"business_id" json:"business_id"`
	Type           DocumentType    `db:"doc_type" json:"type"`
	DocumentNumber string          `db:"doc_number" json:"document_number"`
	Date           time.Time       `db:"doc_date" json:"date"`
	CustomerID     uuid.UUID       `db:"customer_id" json:"customer_id"`
	CustomerName   string          `db:"customer_name" json:"customer_name"`
	CustomerGSTIN  string          `db:"customer_gstin" json:"customer_gstin"`
	LineItems      []LineItem      `db:"-" json:"line_items"`
	GstType        GstType         `db:"gst_type" json:"gst_type"`
	TaxableValue   decimal.Decimal `db:"taxable_value" json:"taxable_value"`
	CGST           decimal.Decimal `db:"cgst" json:"cgst"`
	SGST           decimal.Decimal `db:"sgst" json:"sgst"`
	IGST           decimal.Decimal `db:"igst" json:"igst"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status         InvoiceStatus   `db:"status" json:"status,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// IsB2B reports whether the counterparty has a GSTIN on file.
func (d *TaxableDocument) IsB2B() bool {
	return d.CustomerGSTIN != ""
}

// Period is a reporting period. It is computed on demand and never stored.
// Start and End are inclusive calendar dates at UTC midnight.
type Period struct {
	Kind  PeriodKind `json:"kind"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Label string     `json:"label"`
}

// Contains reports whether the calendar date d falls within the period,
// inclusive on both ends.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// NumberingState holds the invoice auto-numbering configuration for one
// business.
type NumberingState struct {
	BusinessID    uuid.UUID `db:"business_id" json:"business_id"`
	Prefix        string    `db:"prefix" json:"prefix"`
	AutoNumbering bool      `db:"auto_numbering" json:"auto_numbering"`
	NextSequence  int       `db:"next_sequence" json:"next_sequence"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// LedgerEntry is a payment ledger record, consumed read-only. Credit
// entries represent collections against invoices.
type LedgerEntry struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	BusinessID uuid.UUID       `db:"business_id" json:"business_id"`
	Date       time.Time       `db:"entry_date" json:"date"`
	Type       LedgerEntryType `db:"entry_type" json:"type"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Narration  string          `db:"narration" json:"narration"`
}

// RateBreakdownRow is one GST-rate slab's share of a period. Derived,
// recomputed per query.
type RateBreakdownRow struct {
	GSTRatePercent int             `json:"gst_rate_percent"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	IGST           decimal.Decimal `json:"igst"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	DocumentCount  int             `json:"document_count"`
}

// HSNRow is one HSN code's share of a period, keyed by HSN code across the
// whole queried document set. Description is first-seen.
type HSNRow struct {
	HSNCode       string          `json:"hsn_code"`
	Description   string          `json:"description"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"total_tax"`
}

// DeadlineInfo describes one statutory filing deadline.
type DeadlineInfo struct {
	Form     string         `json:"form"`
	DueDate  time.Time      `json:"due_date"`
	DaysAway int            `json:"days_away"`
	Status   DeadlineStatus `json:"status"`
}

// OutstandingSummary is the result of cross-referencing period sales
// against ledger collections. Outstanding may be negative when collections
// exceed the period's sales.
type OutstandingSummary struct {
	TotalSales       decimal.Decimal   `json:"total_sales"`
	TotalCollections decimal.Decimal   `json:"total_collections"`
	Outstanding      decimal.Decimal   `json:"outstanding"`
	OverdueDocuments []OverdueDocument `json:"overdue_documents"`
}

// OverdueDocument flags an unpaid or partially paid document older than the
// overdue threshold.
type OverdueDocument struct {
	DocumentID     uuid.UUID       `json:"document_id"`
	DocumentNumber string          `json:"document_number"`
	CustomerName   string          `json:"customer_name"`
	Date           time.Time       `json:"date"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DaysOverdue    int             `json:"days_overdue"`
}
