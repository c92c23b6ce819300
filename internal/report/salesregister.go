package report

import (
	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
)

// SalesRegisterHeader is the column header row of the flattened export.
var SalesRegisterHeader = []string{
	"Document Number",
	"Date",
	"Type",
	"Customer",
	"Customer GSTIN",
	"GST Type",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Total",
}

// BuildSalesRegister assembles the full itemized document list for the
// period with a trailing totals row. Works for any period granularity.
// An empty period returns domain.ErrEmptyPeriod.
func BuildSalesRegister(agg aggregate.Aggregate) (*SalesRegisterReport, error) {
	if agg.DocumentCount == 0 {
		return nil, domain.ErrEmptyPeriod
	}

	r := &SalesRegisterReport{
		Period: agg.Period,
		Rows:   make([]DocumentRow, 0, len(agg.Documents)),
		Totals: zeroTotals(),
	}
	for i := range agg.Documents {
		d := &agg.Documents[i]
		r.Rows = append(r.Rows, documentRow(d))
		r.Totals.DocumentCount++
		r.Totals.TaxableValue = r.Totals.TaxableValue.Add(d.TaxableValue)
		r.Totals.CGST = r.Totals.CGST.Add(d.CGST)
		r.Totals.SGST = r.Totals.SGST.Add(d.SGST)
		r.Totals.IGST = r.Totals.IGST.Add(d.IGST)
		r.Totals.TotalAmount = r.Totals.TotalAmount.Add(d.TotalAmount)
	}
	return r, nil
}

// docTypeLabel maps a document type to its register label.
func docTypeLabel(t domain.DocumentType) string {
	switch t {
	case domain.DocumentTypeCreditNote:
		return "Credit Note"
	case domain.DocumentTypeDebitNote:
		return "Debit Note"
	default:
		return "Invoice"
	}
}

// ExportRows flattens the register into worksheet-style rows of primitive
// values: one row per document, then a trailing totals row. Reconciles to
// the same totals as the display table.
func (r *SalesRegisterReport) ExportRows() [][]string {
	rows := make([][]string, 0, len(r.Rows)+1)
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.DocumentNumber,
			row.Date.Format("2006-01-02"),
			docTypeLabel(row.Type),
			row.CustomerName,
			row.CustomerGSTIN,
			string(row.GstType),
			row.TaxableValue.StringFixed(2),
			row.CGST.StringFixed(2),
			row.SGST.StringFixed(2),
			row.IGST.StringFixed(2),
			row.TotalAmount.StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"Total", "", "", "", "", "",
		r.Totals.TaxableValue.StringFixed(2),
		r.Totals.CGST.StringFixed(2),
		r.Totals.SGST.StringFixed(2),
		r.Totals.IGST.StringFixed(2),
		r.Totals.TotalAmount.StringFixed(2),
	})
	return rows
}
