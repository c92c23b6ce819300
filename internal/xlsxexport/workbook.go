// Package xlsxexport renders statutory reports into a single Excel
// workbook, one sheet per report. Sheets for reports that are not
// available in the selected period are simply omitted.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"taxtally/internal/report"
)

const (
	sheetSalesRegister = "Sales Register"
	sheetGSTR1         = "GSTR-1"
	sheetGSTR3B        = "GSTR-3B"
	sheetHSN           = "HSN Summary"
)

// Reports carries the per-period reports to render. Nil members are
// skipped; at least one must be set.
type Reports struct {
	SalesRegister *report.SalesRegisterReport
	GSTR1         *report.GSTR1Report
	GSTR3B        *report.GSTR3BReport
	HSN           *report.HSNSummaryReport
}

// BuildWorkbook renders the given reports into a workbook. The caller owns
// the returned file and should Close it after writing.
func BuildWorkbook(reps Reports) (*excelize.File, error) {
	f := excelize.NewFile()

	wrote := false
	if reps.SalesRegister != nil {
		if err := writeSalesRegister(f, reps.SalesRegister); err != nil {
			return nil, err
		}
		wrote = true
	}
	if reps.GSTR1 != nil {
		if err := writeGSTR1(f, reps.GSTR1); err != nil {
			return nil, err
		}
		wrote = true
	}
	if reps.GSTR3B != nil {
		if err := writeGSTR3B(f, reps.GSTR3B); err != nil {
			return nil, err
		}
		wrote = true
	}
	if reps.HSN != nil {
		if err := writeHSN(f, reps.HSN); err != nil {
			return nil, err
		}
		wrote = true
	}
	if !wrote {
		_ = f.Close()
		return nil, fmt.Errorf("no reports to export")
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func newSheet(f *excelize.File, name string) (int, error) {
	idx, err := f.NewSheet(name)
	if err != nil {
		return 0, fmt.Errorf("creating sheet %q: %w", name, err)
	}
	return idx, nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func stringsToRow(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func writeSalesRegister(f *excelize.File, r *report.SalesRegisterReport) error {
	idx, err := newSheet(f, sheetSalesRegister)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	rowNum := 1
	if err := setRow(f, sheetSalesRegister, rowNum, stringsToRow(report.SalesRegisterHeader)); err != nil {
		return err
	}
	for _, row := range r.ExportRows() {
		rowNum++
		if err := setRow(f, sheetSalesRegister, rowNum, stringsToRow(row)); err != nil {
			return err
		}
	}
	return nil
}

var tableHeader = []interface{}{
	"Document Number", "Date", "Customer", "GSTIN", "GST Type",
	"Taxable Value", "CGST", "SGST", "IGST", "Total",
}

func writeTable(f *excelize.File, sheet string, rowNum int, table *report.DocumentTable) (int, error) {
	if err := setRow(f, sheet, rowNum, []interface{}{table.Title}); err != nil {
		return 0, err
	}
	rowNum++
	if err := setRow(f, sheet, rowNum, tableHeader); err != nil {
		return 0, err
	}
	for i := range table.Rows {
		r := &table.Rows[i]
		rowNum++
		err := setRow(f, sheet, rowNum, []interface{}{
			r.DocumentNumber,
			r.Date.Format("2006-01-02"),
			r.CustomerName,
			r.CustomerGSTIN,
			string(r.GstType),
			r.TaxableValue.InexactFloat64(),
			r.CGST.InexactFloat64(),
			r.SGST.InexactFloat64(),
			r.IGST.InexactFloat64(),
			r.TotalAmount.InexactFloat64(),
		})
		if err != nil {
			return 0, err
		}
	}
	rowNum++
	err := setRow(f, sheet, rowNum, []interface{}{
		"Subtotal", "", "", "", "",
		table.Totals.TaxableValue.InexactFloat64(),
		table.Totals.CGST.InexactFloat64(),
		table.Totals.SGST.InexactFloat64(),
		table.Totals.IGST.InexactFloat64(),
		table.Totals.TotalAmount.InexactFloat64(),
	})
	if err != nil {
		return 0, err
	}
	return rowNum + 2, nil
}

func writeGSTR1(f *excelize.File, r *report.GSTR1Report) error {
	if _, err := newSheet(f, sheetGSTR1); err != nil {
		return err
	}

	rowNum := 1
	if err := setRow(f, sheetGSTR1, rowNum, []interface{}{"GSTR-1", r.Period.Label}); err != nil {
		return err
	}
	rowNum += 2

	var err error
	for _, table := range []*report.DocumentTable{&r.B2B, &r.B2C, &r.CreditNotes, &r.DebitNotes} {
		rowNum, err = writeTable(f, sheetGSTR1, rowNum, table)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeGSTR3B(f *excelize.File, r *report.GSTR3BReport) error {
	if _, err := newSheet(f, sheetGSTR3B); err != nil {
		return err
	}

	rowNum := 1
	if err := setRow(f, sheetGSTR3B, rowNum, []interface{}{"GSTR-3B", r.Period.Label}); err != nil {
		return err
	}
	rowNum += 2

	header := []interface{}{"Description", "Taxable Value", "CGST", "SGST", "IGST"}
	if err := setRow(f, sheetGSTR3B, rowNum, header); err != nil {
		return err
	}
	for i := range r.Rows {
		row := &r.Rows[i]
		rowNum++
		err := setRow(f, sheetGSTR3B, rowNum, []interface{}{
			row.Description,
			row.TaxableValue.InexactFloat64(),
			row.CGST.InexactFloat64(),
			row.SGST.InexactFloat64(),
			row.IGST.InexactFloat64(),
		})
		if err != nil {
			return err
		}
	}
	rowNum++
	err := setRow(f, sheetGSTR3B, rowNum, []interface{}{
		r.GrandTotal.Description,
		r.GrandTotal.TaxableValue.InexactFloat64(),
		r.GrandTotal.CGST.InexactFloat64(),
		r.GrandTotal.SGST.InexactFloat64(),
		r.GrandTotal.IGST.InexactFloat64(),
	})
	if err != nil {
		return err
	}
	rowNum += 2
	return setRow(f, sheetGSTR3B, rowNum, []interface{}{r.Note})
}

func writeHSN(f *excelize.File, r *report.HSNSummaryReport) error {
	if _, err := newSheet(f, sheetHSN); err != nil {
		return err
	}

	rowNum := 1
	header := []interface{}{
		"HSN Code", "Description", "UQC", "Quantity",
		"Taxable Value", "CGST", "SGST", "IGST", "Total Tax",
	}
	if err := setRow(f, sheetHSN, rowNum, header); err != nil {
		return err
	}

	for i := range r.Rows {
		row := &r.Rows[i]
		rowNum++
		err := setRow(f, sheetHSN, rowNum, []interface{}{
			row.HSNCode,
			row.Description,
			row.UnitOfMeasure,
			row.TotalQuantity.InexactFloat64(),
			row.TaxableValue.InexactFloat64(),
			row.CGST.InexactFloat64(),
			row.SGST.InexactFloat64(),
			row.IGST.InexactFloat64(),
			row.TotalTax.InexactFloat64(),
		})
		if err != nil {
			return err
		}
	}
	rowNum++
	return setRow(f, sheetHSN, rowNum, []interface{}{
		r.Totals.HSNCode,
		r.Totals.Description,
		r.Totals.UnitOfMeasure,
		r.Totals.TotalQuantity.InexactFloat64(),
		r.Totals.TaxableValue.InexactFloat64(),
		r.Totals.CGST.InexactFloat64(),
		r.Totals.SGST.InexactFloat64(),
		r.Totals.IGST.InexactFloat64(),
		r.Totals.TotalTax.InexactFloat64(),
	})
}
