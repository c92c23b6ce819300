package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taxtally/internal/fiscal"
	"taxtally/internal/numbering"
)

func TestEvaluateReset_YearChangePrompts(t *testing.T) {
	fy := fiscal.FinancialYearOf(2026) // "2026-27"

	ev := numbering.EvaluateReset("INV/2025/", fy)

	assert.True(t, ev.NeedsPrompt)
	assert.Equal(t, "INV/2026/", ev.SuggestedPrefix)
	assert.Equal(t, 2026, ev.NewStartYear)
}

func TestEvaluateReset_SameYearNoPrompt(t *testing.T) {
	fy := fiscal.FinancialYearOf(2025) // "2025-26"

	ev := numbering.EvaluateReset("INV/2025/", fy)

	assert.False(t, ev.NeedsPrompt)
	assert.Equal(t, "INV/2025/", ev.SuggestedPrefix)
}

func TestEvaluateReset_NoYearTokenNoPrompt(t *testing.T) {
	ev := numbering.EvaluateReset("INV/", fiscal.FinancialYearOf(2026))
	assert.False(t, ev.NeedsPrompt)
	assert.Equal(t, "INV/2026/", ev.SuggestedPrefix)
}

func TestEvaluateReset_QuarterPeriodUsesItsFY(t *testing.T) {
	// Q4 Jan-Mar 2026 belongs to FY 2025-26, so "INV/2025/" needs no reset.
	q4 := fiscal.Quarter(fiscal.Date(2026, time.January, 15))
	ev := numbering.EvaluateReset("INV/2025/", q4)
	assert.False(t, ev.NeedsPrompt)
}

func TestYearFromPrefix(t *testing.T) {
	y, ok := numbering.YearFromPrefix("INV/2025/")
	assert.True(t, ok)
	assert.Equal(t, 2025, y)

	_, ok = numbering.YearFromPrefix("SALES/")
	assert.False(t, ok)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV/2025/0042", numbering.FormatNumber("INV/2025/", 42))
	assert.Equal(t, "INV/2025/12345", numbering.FormatNumber("INV/2025/", 12345))
}
