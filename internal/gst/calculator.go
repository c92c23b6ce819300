package gst

import (
	"github.com/shopspring/decimal"

	"taxtally/internal/domain"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// LineTax is the full-precision tax split for a single line item.
type LineTax struct {
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
	IGST    decimal.Decimal
}

// DocumentTotals is the rounded document-level tax summary. Each component
// is rounded to two places; TotalAmount is the sum of the rounded
// components, so the stored fields always reconcile exactly.
type DocumentTotals struct {
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// CalculateLine computes the tax split for one line item at full
// precision. Zero-rated lines contribute their taxable value with zero
// tax. Malformed lines with negative quantity or rate are rejected
// upstream at the validation boundary; if one slips through it degrades to
// a zero contribution rather than producing a negative tax.
func CalculateLine(item domain.LineItem, gstType domain.GstType) LineTax {
	if item.Quantity.IsNegative() || item.UnitRate.IsNegative() {
		return LineTax{
			Taxable: decimal.Zero, CGST: decimal.Zero,
			SGST: decimal.Zero, IGST: decimal.Zero,
		}
	}

	taxable := item.Quantity.Mul(item.UnitRate)
	tax := taxable.Mul(decimal.NewFromInt(int64(item.GSTRatePercent))).Div(hundred)

	lt := LineTax{Taxable: taxable, CGST: decimal.Zero, SGST: decimal.Zero, IGST: decimal.Zero}
	if gstType == domain.GstTypeIntraState {
		half := tax.Div(two)
		lt.CGST = half
		lt.SGST = half
	} else {
		lt.IGST = tax
	}
	return lt
}

// ComputeTotals folds all line items of a document into its totals.
// Accumulation happens at full precision; rounding to two places is
// applied once at the document level, never per line, so multi-line
// documents do not accumulate rounding drift. An empty line-item list
// yields all-zero totals, not an error.
func ComputeTotals(items []domain.LineItem, gstType domain.GstType) DocumentTotals {
	taxable, cgst, sgst, igst := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range items {
		lt := CalculateLine(item, gstType)
		taxable = taxable.Add(lt.Taxable)
		cgst = cgst.Add(lt.CGST)
		sgst = sgst.Add(lt.SGST)
		igst = igst.Add(lt.IGST)
	}

	t := DocumentTotals{
		TaxableValue: taxable.Round(2),
		CGST:         cgst.Round(2),
		SGST:         sgst.Round(2),
		IGST:         igst.Round(2),
	}
	t.TotalAmount = t.TaxableValue.Add(t.CGST).Add(t.SGST).Add(t.IGST)
	return t
}
