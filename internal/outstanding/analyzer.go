// Package outstanding cross-references documents against the payment
// ledger to compute period collections, outstanding balances, and overdue
// flags. The ledger is consumed read-only.
package outstanding

import (
	"time"

	"github.com/shopspring/decimal"

	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
)

// OverdueThresholdDays is the age past which an unpaid invoice is flagged
// overdue. Fixed business rule, not configurable.
const OverdueThresholdDays = 15

// Compute sums in-period sales and Credit-ledger collections and flags
// overdue invoices as of today. Outstanding may be negative when the
// period's collections include payments against prior-period invoices;
// that is a valid result, not an error.
func Compute(docs []domain.TaxableDocument, entries []domain.LedgerEntry, period domain.Period, today time.Time) domain.OutstandingSummary {
	s := domain.OutstandingSummary{
		TotalSales:       decimal.Zero,
		TotalCollections: decimal.Zero,
	}
	today = fiscal.Truncate(today)

	for i := range docs {
		d := &docs[i]
		if !period.Contains(d.Date) {
			continue
		}
		s.TotalSales = s.TotalSales.Add(d.TotalAmount)

		if od, ok := overdue(d, today); ok {
			s.OverdueDocuments = append(s.OverdueDocuments, od)
		}
	}

	for i := range entries {
		e := &entries[i]
		if e.Type != domain.LedgerEntryCredit || !period.Contains(e.Date) {
			continue
		}
		s.TotalCollections = s.TotalCollections.Add(e.Amount)
	}

	s.Outstanding = s.TotalSales.Sub(s.TotalCollections)
	return s
}

func overdue(d *domain.TaxableDocument, today time.Time) (domain.OverdueDocument, bool) {
	if d.Type != domain.DocumentTypeInvoice || d.Status == domain.InvoiceStatusPaid {
		return domain.OverdueDocument{}, false
	}
	age := int(today.Sub(fiscal.Truncate(d.Date)).Hours() / 24)
	if age <= OverdueThresholdDays {
		return domain.OverdueDocument{}, false
	}
	return domain.OverdueDocument{
		DocumentID:     d.ID,
		DocumentNumber: d.DocumentNumber,
		CustomerName:   d.CustomerName,
		Date:           d.Date,
		TotalAmount:    d.TotalAmount,
		DaysOverdue:    age - OverdueThresholdDays,
	}, true
}
