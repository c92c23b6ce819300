package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"taxtally/internal/report"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer wraps csv.Writer for exporting the Sales Register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the Sales Register column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(report.SalesRegisterHeader)
}

// WriteRegister writes one row per document followed by the totals row.
// Amounts are formatted to two decimal places and reconcile with the
// on-screen register.
func (w *Writer) WriteRegister(r *report.SalesRegisterReport) error {
	for _, row := range r.ExportRows() {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{period_label}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, periodLabel, ext string) string {
	base := SanitizeFilename(name)
	if label := SanitizeFilename(periodLabel); label != "" {
		base = base + "_" + label
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", base, date, ext)
}
