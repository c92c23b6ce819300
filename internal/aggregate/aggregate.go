// Package aggregate folds tax-bearing documents over a reporting period
// into scalar totals, rate-wise and HSN-wise breakdowns, and the document
// partitions the statutory report builders consume. The fold is pure:
// identical input always produces identical output, and nothing is cached
// between invocations.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"taxtally/internal/domain"
	"taxtally/internal/gst"
)

// HSNCodeNA is the sentinel bucket for line items without an HSN code.
const HSNCodeNA = "N/A"

// DefaultUnitOfMeasure is used for HSN rows because source documents do
// not track a per-line unit.
const DefaultUnitOfMeasure = "NOS"

// Aggregate is the period rollup of a document set. Derived data only;
// recomputed per query, never persisted.
type Aggregate struct {
	Period domain.Period `json:"period"`

	DocumentCount   int `json:"document_count"`
	InvoiceCount    int `json:"invoice_count"`
	CreditNoteCount int `json:"credit_note_count"`
	DebitNoteCount  int `json:"debit_note_count"`
	IntraStateCount int `json:"intra_state_count"`
	InterStateCount int `json:"inter_state_count"`
	B2BCount        int `json:"b2b_count"`
	B2CCount        int `json:"b2c_count"`

	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	TotalAmount  decimal.Decimal `json:"total_amount"`

	RateBreakdown []domain.RateBreakdownRow `json:"rate_breakdown"`
	HSNSummary    []domain.HSNRow           `json:"hsn_summary"`

	// Documents holds the in-period documents in deterministic order
	// (date, then document number, then id) for the report builders.
	Documents []domain.TaxableDocument `json:"-"`
}

// Compute filters documents to the period (inclusive on both ends) and
// folds them. Scalar sums come from the frozen document-level totals; the
// rate and HSN breakdowns are recomputed from line items so a multi-rate
// document contributes to every slab it touches.
func Compute(docs []domain.TaxableDocument, period domain.Period) Aggregate {
	agg := Aggregate{
		Period:       period,
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
		TotalTax:     decimal.Zero,
		TotalAmount:  decimal.Zero,
	}

	for _, d := range docs {
		if !period.Contains(d.Date) {
			continue
		}
		agg.Documents = append(agg.Documents, d)
	}
	sortDocuments(agg.Documents)

	rateRows := make(map[int]*domain.RateBreakdownRow)
	hsnRows := make(map[string]*domain.HSNRow)

	for i := range agg.Documents {
		d := &agg.Documents[i]

		agg.DocumentCount++
		switch d.Type {
		case domain.DocumentTypeInvoice:
			agg.InvoiceCount++
		case domain.DocumentTypeCreditNote:
			agg.CreditNoteCount++
		case domain.DocumentTypeDebitNote:
			agg.DebitNoteCount++
		}
		if d.GstType == domain.GstTypeIntraState {
			agg.IntraStateCount++
		} else {
			agg.InterStateCount++
		}
		if d.IsB2B() {
			agg.B2BCount++
		} else {
			agg.B2CCount++
		}

		agg.TaxableValue = agg.TaxableValue.Add(d.TaxableValue)
		agg.CGST = agg.CGST.Add(d.CGST)
		agg.SGST = agg.SGST.Add(d.SGST)
		agg.IGST = agg.IGST.Add(d.IGST)
		agg.TotalAmount = agg.TotalAmount.Add(d.TotalAmount)

		foldLineItems(d, rateRows, hsnRows)
	}

	agg.TotalTax = agg.CGST.Add(agg.SGST).Add(agg.IGST)
	agg.RateBreakdown = sortedRateRows(rateRows)
	agg.HSNSummary = sortedHSNRows(hsnRows)
	return agg
}

func foldLineItems(d *domain.TaxableDocument, rateRows map[int]*domain.RateBreakdownRow, hsnRows map[string]*domain.HSNRow) {
	ratesSeen := make(map[int]bool)

	for _, item := range d.LineItems {
		lt := gst.CalculateLine(item, d.GstType)

		row, ok := rateRows[item.GSTRatePercent]
		if !ok {
			row = &domain.RateBreakdownRow{
				GSTRatePercent: item.GSTRatePercent,
				TaxableValue:   decimal.Zero,
				CGST:           decimal.Zero,
				SGST:           decimal.Zero,
				IGST:           decimal.Zero,
				TotalTax:       decimal.Zero,
			}
			rateRows[item.GSTRatePercent] = row
		}
		row.TaxableValue = row.TaxableValue.Add(lt.Taxable)
		row.CGST = row.CGST.Add(lt.CGST)
		row.SGST = row.SGST.Add(lt.SGST)
		row.IGST = row.IGST.Add(lt.IGST)
		if !ratesSeen[item.GSTRatePercent] {
			ratesSeen[item.GSTRatePercent] = true
			row.DocumentCount++
		}

		code := item.HSNCode
		if code == "" {
			code = HSNCodeNA
		}
		hrow, ok := hsnRows[code]
		if !ok {
			hrow = &domain.HSNRow{
				HSNCode:       code,
				Description:   item.Description,
				UnitOfMeasure: DefaultUnitOfMeasure,
				TotalQuantity: decimal.Zero,
				TaxableValue:  decimal.Zero,
				CGST:          decimal.Zero,
				SGST:          decimal.Zero,
				IGST:          decimal.Zero,
			}
			hsnRows[code] = hrow
		}
		hrow.TotalQuantity = hrow.TotalQuantity.Add(item.Quantity)
		hrow.TaxableValue = hrow.TaxableValue.Add(lt.Taxable)
		hrow.CGST = hrow.CGST.Add(lt.CGST)
		hrow.SGST = hrow.SGST.Add(lt.SGST)
		hrow.IGST = hrow.IGST.Add(lt.IGST)
	}
}

func sortedRateRows(m map[int]*domain.RateBreakdownRow) []domain.RateBreakdownRow {
	rows := make([]domain.RateBreakdownRow, 0, len(m))
	for _, r := range m {
		r.TaxableValue = r.TaxableValue.Round(2)
		r.CGST = r.CGST.Round(2)
		r.SGST = r.SGST.Round(2)
		r.IGST = r.IGST.Round(2)
		r.TotalTax = r.CGST.Add(r.SGST).Add(r.IGST)
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].GSTRatePercent < rows[j].GSTRatePercent
	})
	return rows
}

func sortedHSNRows(m map[string]*domain.HSNRow) []domain.HSNRow {
	rows := make([]domain.HSNRow, 0, len(m))
	for _, r := range m {
		r.TaxableValue = r.TaxableValue.Round(2)
		r.CGST = r.CGST.Round(2)
		r.SGST = r.SGST.Round(2)
		r.IGST = r.IGST.Round(2)
		r.TotalTax = r.CGST.Add(r.SGST).Add(r.IGST)
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].HSNCode < rows[j].HSNCode
	})
	return rows
}

func sortDocuments(docs []domain.TaxableDocument) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Date.Equal(docs[j].Date) {
			return docs[i].Date.Before(docs[j].Date)
		}
		if docs[i].DocumentNumber != docs[j].DocumentNumber {
			return docs[i].DocumentNumber < docs[j].DocumentNumber
		}
		return docs[i].ID.String() < docs[j].ID.String()
	})
}
