package report

import (
	"github.com/shopspring/decimal"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
)

// BuildHSNSummary wraps the aggregate's HSN rows with a trailing totals
// row. An empty period returns domain.ErrEmptyPeriod.
func BuildHSNSummary(agg aggregate.Aggregate) (*HSNSummaryReport, error) {
	if agg.DocumentCount == 0 {
		return nil, domain.ErrEmptyPeriod
	}

	totals := domain.HSNRow{
		HSNCode:       "Total",
		TotalQuantity: decimal.Zero,
		TaxableValue:  decimal.Zero,
		CGST:          decimal.Zero,
		SGST:          decimal.Zero,
		IGST:          decimal.Zero,
		TotalTax:      decimal.Zero,
	}
	for _, r := range agg.HSNSummary {
		totals.TotalQuantity = totals.TotalQuantity.Add(r.TotalQuantity)
		totals.TaxableValue = totals.TaxableValue.Add(r.TaxableValue)
		totals.CGST = totals.CGST.Add(r.CGST)
		totals.SGST = totals.SGST.Add(r.SGST)
		totals.IGST = totals.IGST.Add(r.IGST)
		totals.TotalTax = totals.TotalTax.Add(r.TotalTax)
	}

	return &HSNSummaryReport{
		Period: agg.Period,
		Rows:   agg.HSNSummary,
		Totals: totals,
	}, nil
}
