// Package report assembles aggregated period data into the statutory
// shapes required for Indian GST compliance: GSTR-1, GSTR-3B, the HSN
// summary, and the Sales Register. Builders are pure transformations over
// an Aggregate; an empty period yields domain.ErrEmptyPeriod so consumers
// can tell "nothing to file" apart from an engine failure.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"taxtally/internal/domain"
)

// DocumentRow is one document line in a report table.
type DocumentRow struct {
	DocumentNumber string              `json:"document_number"`
	Type           domain.DocumentType `json:"type"`
	Date           time.Time           `json:"date"`
	CustomerName   string              `json:"customer_name"`
	CustomerGSTIN  string              `json:"customer_gstin,omitempty"`
	GstType        domain.GstType      `json:"gst_type"`
	TaxableValue   decimal.Decimal     `json:"taxable_value"`
	CGST           decimal.Decimal     `json:"cgst"`
	SGST           decimal.Decimal     `json:"sgst"`
	IGST           decimal.Decimal     `json:"igst"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
}

// TableTotals is the subtotal row carried by every report table.
type TableTotals struct {
	DocumentCount int             `json:"document_count"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DocumentTable is a titled list of document rows with its own subtotal.
type DocumentTable struct {
	Title  string        `json:"title"`
	Rows   []DocumentRow `json:"rows"`
	Totals TableTotals   `json:"totals"`
}

// GSTR1Report partitions the period's documents into the GSTR-1 tables:
// B2B invoices, B2C invoices, credit notes, and debit notes.
type GSTR1Report struct {
	Period      domain.Period `json:"period"`
	B2B         DocumentTable `json:"b2b"`
	B2C         DocumentTable `json:"b2c"`
	CreditNotes DocumentTable `json:"credit_notes"`
	DebitNotes  DocumentTable `json:"debit_notes"`
}

// GSTR3BRow is one line of the fixed-shape GSTR-3B summary table.
type GSTR3BRow struct {
	Description  string          `json:"description"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
}

// GSTR3BReport is the outward-supply summary. Input-tax-credit fields are
// out of scope here and must be filled externally before filing; Note
// carries that caveat for the consumer.
type GSTR3BReport struct {
	Period     domain.Period `json:"period"`
	Rows       []GSTR3BRow   `json:"rows"`
	GrandTotal GSTR3BRow     `json:"grand_total"`
	Note       string        `json:"note"`
}

// HSNSummaryReport is the HSN-wise rollup with a trailing totals row.
type HSNSummaryReport struct {
	Period domain.Period   `json:"period"`
	Rows   []domain.HSNRow `json:"rows"`
	Totals domain.HSNRow   `json:"totals"`
}

// SalesRegisterReport is the full itemized document list for a period.
// Rows feed the on-screen table and print layout; ExportRows returns the
// flattened worksheet form (value rows plus a trailing totals row) and
// must reconcile to the same totals.
type SalesRegisterReport struct {
	Period domain.Period `json:"period"`
	Rows   []DocumentRow `json:"rows"`
	Totals TableTotals   `json:"totals"`
}
