package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
	"taxtally/internal/gst"
)

// Government GSTR-1 JSON schema types. Field names follow the published
// portal schema exactly; do not rename.

// GovGSTR1 is the top-level filing document.
type GovGSTR1 struct {
	GSTIN   string        `json:"gstin"`
	FP      string        `json:"fp"`
	Version string        `json:"version"`
	B2B     []GovB2BEntry  `json:"b2b,omitempty"`
	B2CS    []GovB2CSEntry `json:"b2cs,omitempty"`
	CDNR    []GovCDNREntry `json:"cdnr,omitempty"`
}

// GovB2BEntry groups a counterparty's invoices under its GSTIN.
type GovB2BEntry struct {
	CTIN string       `json:"ctin"`
	Inv  []GovInvoice `json:"inv"`
}

// GovInvoice is one invoice in the b2b section.
type GovInvoice struct {
	Inum   string    `json:"inum"`
	Idt    string    `json:"idt"`
	Val    float64   `json:"val"`
	Pos    string    `json:"pos"`
	Rchrg  string    `json:"rchrg"`
	InvTyp string    `json:"inv_typ"`
	Itms   []GovItem `json:"itms"`
}

// GovItem is a rate-wise line group within an invoice or note.
type GovItem struct {
	Num    int        `json:"num"`
	ItmDet GovItemDet `json:"itm_det"`
}

// GovItemDet carries the taxable value and tax split for one rate slab.
type GovItemDet struct {
	Rt    float64 `json:"rt"`
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

// GovB2CSEntry is a rate-wise summary row for unregistered buyers.
type GovB2CSEntry struct {
	SplyTy string  `json:"sply_ty"`
	Rt     float64 `json:"rt"`
	Typ    string  `json:"typ"`
	Pos    string  `json:"pos"`
	Txval  float64 `json:"txval"`
	Iamt   float64 `json:"iamt"`
	Camt   float64 `json:"camt"`
	Samt   float64 `json:"samt"`
	Csamt  float64 `json:"csamt"`
}

// GovCDNREntry groups credit/debit notes against registered buyers.
type GovCDNREntry struct {
	CTIN string    `json:"ctin"`
	Nt   []GovNote `json:"nt"`
}

// GovNote is one credit or debit note.
type GovNote struct {
	Ntty  string    `json:"ntty"`
	NtNum string    `json:"nt_num"`
	NtDt  string    `json:"nt_dt"`
	Pos   string    `json:"pos"`
	Val   float64   `json:"val"`
	Itms  []GovItem `json:"itms"`
}

const (
	govVersion    = "GST3.0.4"
	govDateLayout = "02-01-2006"
)

// BuildGSTR1JSON renders the period's documents into the government
// GSTR-1 filing schema. Month periods only; the filing period token fp is
// MMYYYY. The place-of-supply for B2B documents comes from the
// counterparty GSTIN's state-code prefix; B2C rows fall back to the
// seller's own state code for intra-state supplies.
func BuildGSTR1JSON(agg aggregate.Aggregate, sellerGSTIN string) (*GovGSTR1, error) {
	if agg.Period.Kind != domain.PeriodKindMonth {
		return nil, domain.ErrPeriodMismatch
	}
	if agg.DocumentCount == 0 {
		return nil, domain.ErrEmptyPeriod
	}

	out := &GovGSTR1{
		GSTIN:   sellerGSTIN,
		FP:      agg.Period.Start.Format("012006"),
		Version: govVersion,
	}

	b2b := make(map[string][]GovInvoice)
	cdnr := make(map[string][]GovNote)
	b2cs := make(map[b2csKey]*b2csAcc)

	for i := range agg.Documents {
		d := &agg.Documents[i]
		switch {
		case d.Type != domain.DocumentTypeInvoice && d.IsB2B():
			cdnr[d.CustomerGSTIN] = append(cdnr[d.CustomerGSTIN], govNote(d))
		case d.Type != domain.DocumentTypeInvoice:
			// Unregistered-buyer notes belong in the cdnur section,
			// which this engine does not produce; they are dropped from
			// the JSON export and remain visible in the register.
			continue
		case d.IsB2B():
			b2b[d.CustomerGSTIN] = append(b2b[d.CustomerGSTIN], govInvoice(d))
		default:
			foldB2CS(b2cs, d, sellerGSTIN)
		}
	}

	out.B2B = sortedB2B(b2b)
	out.CDNR = sortedCDNR(cdnr)
	out.B2CS = sortedB2CS(b2cs)
	return out, nil
}

type b2csKey struct {
	rate   int
	supply string
}

// b2csAcc accumulates a b2cs row at full decimal precision; conversion to
// the float schema fields happens once at the end.
type b2csAcc struct {
	pos                     string
	txval, camt, samt, iamt decimal.Decimal
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func posFromGSTIN(gstin string) string {
	if len(gstin) >= 2 {
		return gstin[:2]
	}
	return ""
}

// rateItems groups a document's line items by rate slab into gov items,
// ascending by rate, numbered from 1.
func rateItems(d *domain.TaxableDocument) []GovItem {
	type slab struct{ txval, camt, samt, iamt decimal.Decimal }
	slabs := make(map[int]*slab)
	for _, item := range d.LineItems {
		lt := gst.CalculateLine(item, d.GstType)
		s, ok := slabs[item.GSTRatePercent]
		if !ok {
			s = &slab{txval: decimal.Zero, camt: decimal.Zero, samt: decimal.Zero, iamt: decimal.Zero}
			slabs[item.GSTRatePercent] = s
		}
		s.txval = s.txval.Add(lt.Taxable)
		s.camt = s.camt.Add(lt.CGST)
		s.samt = s.samt.Add(lt.SGST)
		s.iamt = s.iamt.Add(lt.IGST)
	}

	rates := make([]int, 0, len(slabs))
	for r := range slabs {
		rates = append(rates, r)
	}
	sort.Ints(rates)

	items := make([]GovItem, 0, len(rates))
	for n, r := range rates {
		s := slabs[r]
		items = append(items, GovItem{
			Num: n + 1,
			ItmDet: GovItemDet{
				Rt:    float64(r),
				Txval: money(s.txval),
				Camt:  money(s.camt),
				Samt:  money(s.samt),
				Iamt:  money(s.iamt),
			},
		})
	}
	return items
}

func govInvoice(d *domain.TaxableDocument) GovInvoice {
	return GovInvoice{
		Inum:   d.DocumentNumber,
		Idt:    d.Date.Format(govDateLayout),
		Val:    money(d.TotalAmount),
		Pos:    posFromGSTIN(d.CustomerGSTIN),
		Rchrg:  "N",
		InvTyp: "R",
		Itms:   rateItems(d),
	}
}

func govNote(d *domain.TaxableDocument) GovNote {
	ntty := "C"
	if d.Type == domain.DocumentTypeDebitNote {
		ntty = "D"
	}
	return GovNote{
		Ntty:  ntty,
		NtNum: d.DocumentNumber,
		NtDt:  d.Date.Format(govDateLayout),
		Pos:   posFromGSTIN(d.CustomerGSTIN),
		Val:   money(d.TotalAmount),
		Itms:  rateItems(d),
	}
}

func foldB2CS(m map[b2csKey]*b2csAcc, d *domain.TaxableDocument, sellerGSTIN string) {
	supply := "INTER"
	pos := ""
	if d.GstType == domain.GstTypeIntraState {
		supply = "INTRA"
		pos = posFromGSTIN(sellerGSTIN)
	}

	for _, item := range d.LineItems {
		lt := gst.CalculateLine(item, d.GstType)
		key := b2csKey{rate: item.GSTRatePercent, supply: supply}
		acc, ok := m[key]
		if !ok {
			acc = &b2csAcc{
				pos:   pos,
				txval: decimal.Zero, camt: decimal.Zero,
				samt: decimal.Zero, iamt: decimal.Zero,
			}
			m[key] = acc
		}
		acc.txval = acc.txval.Add(lt.Taxable)
		acc.camt = acc.camt.Add(lt.CGST)
		acc.samt = acc.samt.Add(lt.SGST)
		acc.iamt = acc.iamt.Add(lt.IGST)
	}
}

func sortedB2B(m map[string][]GovInvoice) []GovB2BEntry {
	ctins := sortedKeys(m)
	out := make([]GovB2BEntry, 0, len(ctins))
	for _, c := range ctins {
		out = append(out, GovB2BEntry{CTIN: c, Inv: m[c]})
	}
	return out
}

func sortedCDNR(m map[string][]GovNote) []GovCDNREntry {
	ctins := sortedKeys(m)
	out := make([]GovCDNREntry, 0, len(ctins))
	for _, c := range ctins {
		out = append(out, GovCDNREntry{CTIN: c, Nt: m[c]})
	}
	return out
}

func sortedB2CS(m map[b2csKey]*b2csAcc) []GovB2CSEntry {
	keys := make([]b2csKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].supply != keys[j].supply {
			return keys[i].supply < keys[j].supply
		}
		return keys[i].rate < keys[j].rate
	})
	out := make([]GovB2CSEntry, 0, len(keys))
	for _, k := range keys {
		acc := m[k]
		out = append(out, GovB2CSEntry{
			SplyTy: k.supply,
			Rt:     float64(k.rate),
			Typ:    "OE",
			Pos:    acc.pos,
			Txval:  money(acc.txval),
			Iamt:   money(acc.iamt),
			Camt:   money(acc.camt),
			Samt:   money(acc.samt),
		})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
