// Package numbering manages the invoice auto-numbering prefix, including
// the financial-year rollover reset. Renumbering affects legally
// significant sequential invoice numbers, so the reset is a two-phase
// interaction: Evaluate is pure and only reports whether a confirmation
// prompt is needed; the commit happens elsewhere, gated on an explicit
// accept from the caller, and never silently.
package numbering

import (
	"fmt"
	"regexp"

	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
)

var yearToken = regexp.MustCompile(`\d{4}`)

// Evaluation is the result of checking a prefix against a newly selected
// financial year.
type Evaluation struct {
	NeedsPrompt     bool   `json:"needs_prompt"`
	SuggestedPrefix string `json:"suggested_prefix"`
	NewStartYear    int    `json:"new_start_year"`
}

// YearFromPrefix extracts the first 4-digit year token embedded in a
// numbering prefix, e.g. "INV/2025/" -> 2025.
func YearFromPrefix(prefix string) (int, bool) {
	m := yearToken.FindString(prefix)
	if m == "" {
		return 0, false
	}
	var y int
	fmt.Sscanf(m, "%d", &y)
	return y, true
}

// PrefixFor builds the standard prefix for an FY start year.
func PrefixFor(startYear int) string {
	return fmt.Sprintf("INV/%d/", startYear)
}

// EvaluateReset decides whether switching to newPeriod warrants a prefix
// reset prompt. A prompt is needed only when the current prefix carries a
// year token that differs from the new period's FY start year. The
// function has no side effects; callers surface the prompt and either
// commit the suggested prefix or skip, leaving the prefix untouched.
func EvaluateReset(currentPrefix string, newPeriod domain.Period) Evaluation {
	startYear := fiscal.FYStartYear(newPeriod.Start)
	ev := Evaluation{
		SuggestedPrefix: PrefixFor(startYear),
		NewStartYear:    startYear,
	}
	if y, ok := YearFromPrefix(currentPrefix); ok && y != startYear {
		ev.NeedsPrompt = true
	}
	return ev
}

// FormatNumber renders a document number from a prefix and sequence value,
// e.g. ("INV/2025/", 42) -> "INV/2025/0042".
func FormatNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}
