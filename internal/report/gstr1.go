package report

import (
	"github.com/shopspring/decimal"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
)

// BuildGSTR1 assembles the GSTR-1 return tables from a month aggregate.
// Only month periods are supported: quarterly GSTR-1 export is not
// implemented, and a non-month period returns domain.ErrPeriodMismatch
// rather than mislabeling month-scoped data. An empty period returns
// domain.ErrEmptyPeriod.
func BuildGSTR1(agg aggregate.Aggregate) (*GSTR1Report, error) {
	if agg.Period.Kind != domain.PeriodKindMonth {
		return nil, domain.ErrPeriodMismatch
	}
	if agg.DocumentCount == 0 {
		return nil, domain.ErrEmptyPeriod
	}

	r := &GSTR1Report{
		Period:      agg.Period,
		B2B:         newTable("B2B Invoices"),
		B2C:         newTable("B2C Invoices"),
		CreditNotes: newTable("Credit Notes"),
		DebitNotes:  newTable("Debit Notes"),
	}

	for i := range agg.Documents {
		d := &agg.Documents[i]
		switch d.Type {
		case domain.DocumentTypeCreditNote:
			appendRow(&r.CreditNotes, d)
		case domain.DocumentTypeDebitNote:
			appendRow(&r.DebitNotes, d)
		default:
			if d.IsB2B() {
				appendRow(&r.B2B, d)
			} else {
				appendRow(&r.B2C, d)
			}
		}
	}
	return r, nil
}

func newTable(title string) DocumentTable {
	return DocumentTable{Title: title, Totals: zeroTotals()}
}

func zeroTotals() TableTotals {
	return TableTotals{
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
		TotalAmount:  decimal.Zero,
	}
}

func documentRow(d *domain.TaxableDocument) DocumentRow {
	return DocumentRow{
		DocumentNumber: d.DocumentNumber,
		Type:           d.Type,
		Date:           d.Date,
		CustomerName:   d.CustomerName,
		CustomerGSTIN:  d.CustomerGSTIN,
		GstType:        d.GstType,
		TaxableValue:   d.TaxableValue,
		CGST:           d.CGST,
		SGST:           d.SGST,
		IGST:           d.IGST,
		TotalAmount:    d.TotalAmount,
	}
}

func appendRow(t *DocumentTable, d *domain.TaxableDocument) {
	t.Rows = append(t.Rows, documentRow(d))
	t.Totals.DocumentCount++
	t.Totals.TaxableValue = t.Totals.TaxableValue.Add(d.TaxableValue)
	t.Totals.CGST = t.Totals.CGST.Add(d.CGST)
	t.Totals.SGST = t.Totals.SGST.Add(d.SGST)
	t.Totals.IGST = t.Totals.IGST.Add(d.IGST)
	t.Totals.TotalAmount = t.Totals.TotalAmount.Add(d.TotalAmount)
}
