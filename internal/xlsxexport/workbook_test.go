package xlsxexport

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtally/internal/domain"
	"taxtally/internal/report"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleRegister() *report.SalesRegisterReport {
	return &report.SalesRegisterReport{
		Period: domain.Period{Kind: domain.PeriodKindMonth, Label: "Jul 2025"},
		Rows: []report.DocumentRow{
			{
				DocumentNumber: "INV/2025/0001",
				Type:           domain.DocumentTypeInvoice,
				Date:           time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
				CustomerName:   "Acme Traders",
				GstType:        domain.GstTypeIntraState,
				TaxableValue:   d("1000.00"),
				CGST:           d("90.00"),
				SGST:           d("90.00"),
				IGST:           d("0.00"),
				TotalAmount:    d("1180.00"),
			},
		},
		Totals: report.TableTotals{
			DocumentCount: 1,
			TaxableValue:  d("1000.00"),
			CGST:          d("90.00"),
			SGST:          d("90.00"),
			IGST:          d("0.00"),
			TotalAmount:   d("1180.00"),
		},
	}
}

func sampleGSTR3B() *report.GSTR3BReport {
	return &report.GSTR3BReport{
		Period: domain.Period{Kind: domain.PeriodKindMonth, Label: "Jul 2025"},
		Rows: []report.GSTR3BRow{
			{Description: "Outward taxable supplies (other than zero rated, nil rated and exempted)", TaxableValue: d("1000.00"), CGST: d("90.00"), SGST: d("90.00"), IGST: d("0.00")},
		},
		GrandTotal: report.GSTR3BRow{Description: "Total", TaxableValue: d("1000.00"), CGST: d("90.00"), SGST: d("90.00"), IGST: d("0.00")},
		Note:       report.GSTR3BNote,
	}
}

func TestBuildWorkbook_SheetsAndCells(t *testing.T) {
	f, err := BuildWorkbook(Reports{
		SalesRegister: sampleRegister(),
		GSTR3B:        sampleGSTR3B(),
	})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Sales Register")
	assert.Contains(t, sheets, "GSTR-3B")
	assert.NotContains(t, sheets, "Sheet1")
	assert.NotContains(t, sheets, "GSTR-1")

	v, err := f.GetCellValue("Sales Register", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Document Number", v)

	v, err = f.GetCellValue("Sales Register", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV/2025/0001", v)

	// Trailing totals row follows the single document row.
	v, err = f.GetCellValue("Sales Register", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)

	v, err = f.GetCellValue("GSTR-3B", "A1")
	require.NoError(t, err)
	assert.Equal(t, "GSTR-3B", v)
}

func TestBuildWorkbook_NothingToExport(t *testing.T) {
	_, err := BuildWorkbook(Reports{})
	assert.Error(t, err)
}
