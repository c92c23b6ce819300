package domain

// DocumentType identifies the kind of tax-bearing document.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "invoice"
	DocumentTypeCreditNote DocumentType = "credit_note"
	DocumentTypeDebitNote  DocumentType = "debit_note"
)

// GstType classifies a transaction for tax splitting. Intra-state
// transactions attract CGST+SGST in equal halves; inter-state
// transactions attract IGST in full.
type GstType string

const (
	GstTypeIntraState GstType = "intra_state"
	GstTypeInterState GstType = "inter_state"
)

// InvoiceStatus tracks payment progress on an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// PeriodKind identifies the granularity of a reporting period.
type PeriodKind string

const (
	PeriodKindFY      PeriodKind = "fy"
	PeriodKindQuarter PeriodKind = "quarter"
	PeriodKindMonth   PeriodKind = "month"
	PeriodKindCustom  PeriodKind = "custom"
)

// DeadlineStatus classifies a filing deadline relative to today.
type DeadlineStatus string

const (
	DeadlineStatusOK      DeadlineStatus = "ok"
	DeadlineStatusWarning DeadlineStatus = "warning"
	DeadlineStatusOverdue DeadlineStatus = "overdue"
)

// LedgerEntryType distinguishes money in from money out. Credit entries
// represent collections against invoices.
type LedgerEntryType string

const (
	LedgerEntryDebit  LedgerEntryType = "debit"
	LedgerEntryCredit LedgerEntryType = "credit"
)

// GSTRates lists the GST rate slabs accepted on a line item.
var GSTRates = []int{0, 5, 12, 18, 28}

// ValidGSTRate reports whether r is one of the accepted rate slabs.
func ValidGSTRate(r int) bool {
	for _, v := range GSTRates {
		if v == r {
			return true
		}
	}
	return false
}
