package aggregate_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
	"taxtally/internal/gst"
)

func line(desc, hsn, qty, rate string, pct int) domain.LineItem {
	return domain.LineItem{
		Description:    desc,
		HSNCode:        hsn,
		Quantity:       decimal.RequireFromString(qty),
		UnitRate:       decimal.RequireFromString(rate),
		GSTRatePercent: pct,
	}
}

func doc(num string, date time.Time, gstType domain.GstType, gstin string, items ...domain.LineItem) domain.TaxableDocument {
	totals := gst.ComputeTotals(items, gstType)
	return domain.TaxableDocument{
		ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte(num)),
		Type:           domain.DocumentTypeInvoice,
		DocumentNumber: num,
		Date:           date,
		CustomerName:   "Acme Traders",
		CustomerGSTIN:  gstin,
		LineItems:      items,
		GstType:        gstType,
		TaxableValue:   totals.TaxableValue,
		CGST:           totals.CGST,
		SGST:           totals.SGST,
		IGST:           totals.IGST,
		TotalAmount:    totals.TotalAmount,
		Status:         domain.InvoiceStatusUnpaid,
	}
}

func jan2026() domain.Period {
	return fiscal.Month(fiscal.Date(2026, time.January, 15))
}

func TestCompute_BoundaryInclusiveBothEnds(t *testing.T) {
	docs := []domain.TaxableDocument{
		doc("INV/2025/001", fiscal.Date(2026, time.January, 1), domain.GstTypeIntraState, "", line("pens", "9608", "1", "100", 18)),
		doc("INV/2025/002", fiscal.Date(2026, time.January, 31), domain.GstTypeIntraState, "", line("pens", "9608", "1", "100", 18)),
		doc("INV/2025/003", fiscal.Date(2025, time.December, 31), domain.GstTypeIntraState, "", line("pens", "9608", "1", "100", 18)),
		doc("INV/2025/004", fiscal.Date(2026, time.February, 1), domain.GstTypeIntraState, "", line("pens", "9608", "1", "100", 18)),
	}

	agg := aggregate.Compute(docs, jan2026())

	require.Equal(t, 2, agg.DocumentCount)
	nums := []string{agg.Documents[0].DocumentNumber, agg.Documents[1].DocumentNumber}
	assert.Equal(t, []string{"INV/2025/001", "INV/2025/002"}, nums)
}

func TestCompute_ScalarSumsAndCounts(t *testing.T) {
	docs := []domain.TaxableDocument{
		doc("A1", fiscal.Date(2026, time.January, 5), domain.GstTypeIntraState, "29ABCDE1234F1Z5", line("pens", "9608", "2", "500", 18)),
		doc("A2", fiscal.Date(2026, time.January, 6), domain.GstTypeInterState, "", line("ink", "3215", "1", "1000", 12)),
	}

	agg := aggregate.Compute(docs, jan2026())

	assert.Equal(t, 1, agg.IntraStateCount)
	assert.Equal(t, 1, agg.InterStateCount)
	assert.Equal(t, 1, agg.B2BCount)
	assert.Equal(t, 1, agg.B2CCount)
	assert.True(t, agg.TaxableValue.Equal(decimal.RequireFromString("2000")))
	assert.True(t, agg.CGST.Equal(decimal.RequireFromString("90")))
	assert.True(t, agg.SGST.Equal(decimal.RequireFromString("90")))
	assert.True(t, agg.IGST.Equal(decimal.RequireFromString("120")))
	assert.True(t, agg.TotalTax.Equal(decimal.RequireFromString("300")))
	assert.True(t, agg.TotalAmount.Equal(decimal.RequireFromString("2300")))
}

func TestCompute_AggregateTotalReconcilesWithDocuments(t *testing.T) {
	docs := []domain.TaxableDocument{
		doc("B1", fiscal.Date(2026, time.January, 3), domain.GstTypeIntraState, "", line("a", "1001", "1.5", "99.99", 18), line("b", "1002", "3", "7.77", 5)),
		doc("B2", fiscal.Date(2026, time.January, 9), domain.GstTypeInterState, "", line("c", "1003", "0.25", "45.67", 28)),
	}

	agg := aggregate.Compute(docs, jan2026())

	sum := decimal.Zero
	for _, d := range agg.Documents {
		sum = sum.Add(d.TotalAmount)
	}
	diff := sum.Sub(agg.TotalAmount).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "diff %s", diff)
}

func TestCompute_RateBreakdownGroupsLineItems(t *testing.T) {
	// One invoice spanning two slabs contributes to both rows.
	multi := doc("C1", fiscal.Date(2026, time.January, 4), domain.GstTypeIntraState, "",
		line("pens", "9608", "10", "50", 18),
		line("books", "4901", "5", "200", 0),
	)
	other := doc("C2", fiscal.Date(2026, time.January, 8), domain.GstTypeInterState, "",
		line("pens", "9608", "2", "50", 18),
	)

	agg := aggregate.Compute([]domain.TaxableDocument{multi, other}, jan2026())

	require.Len(t, agg.RateBreakdown, 2)
	assert.Equal(t, 0, agg.RateBreakdown[0].GSTRatePercent)
	assert.Equal(t, 18, agg.RateBreakdown[1].GSTRatePercent)

	zero := agg.RateBreakdown[0]
	assert.Equal(t, 1, zero.DocumentCount)
	assert.True(t, zero.TaxableValue.Equal(decimal.RequireFromString("1000")))
	assert.True(t, zero.TotalTax.IsZero())

	eighteen := agg.RateBreakdown[1]
	assert.Equal(t, 2, eighteen.DocumentCount)
	assert.True(t, eighteen.TaxableValue.Equal(decimal.RequireFromString("600")))
	assert.True(t, eighteen.CGST.Equal(decimal.RequireFromString("45")))
	assert.True(t, eighteen.SGST.Equal(decimal.RequireFromString("45")))
	assert.True(t, eighteen.IGST.Equal(decimal.RequireFromString("18")))
}

func TestCompute_HSNSummary(t *testing.T) {
	docs := []domain.TaxableDocument{
		doc("D1", fiscal.Date(2026, time.January, 4), domain.GstTypeIntraState, "",
			line("ballpoint pens", "9608", "10", "50", 18),
			line("unclassified", "", "1", "100", 5),
		),
		doc("D2", fiscal.Date(2026, time.January, 5), domain.GstTypeIntraState, "",
			line("gel pens", "9608", "5", "50", 18),
		),
	}

	agg := aggregate.Compute(docs, jan2026())

	require.Len(t, agg.HSNSummary, 2)
	// Ascending by code; "9608" sorts before the "N/A" sentinel.
	assert.Equal(t, "9608", agg.HSNSummary[0].HSNCode)
	assert.Equal(t, aggregate.HSNCodeNA, agg.HSNSummary[1].HSNCode)

	pens := agg.HSNSummary[0]
	assert.Equal(t, "ballpoint pens", pens.Description, "description is first-seen")
	assert.Equal(t, aggregate.DefaultUnitOfMeasure, pens.UnitOfMeasure)
	assert.True(t, pens.TotalQuantity.Equal(decimal.RequireFromString("15")))
	assert.True(t, pens.TaxableValue.Equal(decimal.RequireFromString("750")))
	assert.True(t, pens.TotalTax.Equal(decimal.RequireFromString("135")))
}

func TestCompute_Idempotent(t *testing.T) {
	docs := []domain.TaxableDocument{
		doc("E1", fiscal.Date(2026, time.January, 4), domain.GstTypeIntraState, "29ABCDE1234F1Z5", line("a", "1001", "3", "33.33", 18)),
		doc("E2", fiscal.Date(2026, time.January, 2), domain.GstTypeInterState, "", line("b", "1002", "7", "11.11", 5)),
	}

	first := aggregate.Compute(docs, jan2026())
	second := aggregate.Compute(docs, jan2026())
	assert.Equal(t, first, second)
}

func TestCompute_EmptyPeriodYieldsZeroedAggregate(t *testing.T) {
	agg := aggregate.Compute(nil, jan2026())
	assert.Equal(t, 0, agg.DocumentCount)
	assert.True(t, agg.TotalAmount.IsZero())
	assert.Empty(t, agg.RateBreakdown)
	assert.Empty(t, agg.HSNSummary)
}
