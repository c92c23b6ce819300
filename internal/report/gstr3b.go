package report

import (
	"github.com/shopspring/decimal"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
)

// GSTR3BNote is attached to every GSTR-3B report so consumers do not file
// it as-is.
const GSTR3BNote = "Input tax credit (Table 4) is not computed by this system and must be filled in before filing."

// BuildGSTR3B assembles the fixed-shape GSTR-3B outward-supply summary.
// The zero-rated and nil/exempt rows are always zero here: the document
// model does not track exports or exemptions, only slab-rated supplies.
// An empty period returns domain.ErrEmptyPeriod.
func BuildGSTR3B(agg aggregate.Aggregate) (*GSTR3BReport, error) {
	if agg.DocumentCount == 0 {
		return nil, domain.ErrEmptyPeriod
	}

	outward := GSTR3BRow{
		Description:  "Outward taxable supplies (other than zero rated, nil rated and exempted)",
		TaxableValue: agg.TaxableValue,
		CGST:         agg.CGST,
		SGST:         agg.SGST,
		IGST:         agg.IGST,
	}
	zeroRated := GSTR3BRow{
		Description:  "Outward taxable supplies (zero rated)",
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
	}
	nilExempt := GSTR3BRow{
		Description:  "Other outward supplies (nil rated, exempted)",
		TaxableValue: decimal.Zero,
		CGST:         decimal.Zero,
		SGST:         decimal.Zero,
		IGST:         decimal.Zero,
	}

	return &GSTR3BReport{
		Period: agg.Period,
		Rows:   []GSTR3BRow{outward, zeroRated, nilExempt},
		GrandTotal: GSTR3BRow{
			Description:  "Total",
			TaxableValue: agg.TaxableValue,
			CGST:         agg.CGST,
			SGST:         agg.SGST,
			IGST:         agg.IGST,
		},
		Note: GSTR3BNote,
	}, nil
}
