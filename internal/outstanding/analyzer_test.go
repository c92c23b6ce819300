package outstanding_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
	"taxtally/internal/outstanding"
)

func invoice(num string, date time.Time, total string, status domain.InvoiceStatus) domain.TaxableDocument {
	return domain.TaxableDocument{
		ID:             uuid.New(),
		Type:           domain.DocumentTypeInvoice,
		DocumentNumber: num,
		Date:           date,
		CustomerName:   "Acme Traders",
		TotalAmount:    decimal.RequireFromString(total),
		Status:         status,
	}
}

func credit(date time.Time, amount string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:     uuid.New(),
		Date:   date,
		Type:   domain.LedgerEntryCredit,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestCompute_SalesCollectionsOutstanding(t *testing.T) {
	period := fiscal.Month(fiscal.Date(2026, time.January, 15))
	docs := []domain.TaxableDocument{
		invoice("I1", fiscal.Date(2026, time.January, 5), "1180", domain.InvoiceStatusUnpaid),
		invoice("I2", fiscal.Date(2026, time.January, 20), "2360", domain.InvoiceStatusPaid),
		invoice("I3", fiscal.Date(2025, time.December, 20), "999", domain.InvoiceStatusUnpaid), // outside period
	}
	entries := []domain.LedgerEntry{
		credit(fiscal.Date(2026, time.January, 22), "2360"),
		credit(fiscal.Date(2025, time.December, 28), "500"), // outside period
		{ID: uuid.New(), Date: fiscal.Date(2026, time.January, 10), Type: domain.LedgerEntryDebit, Amount: decimal.RequireFromString("300")},
	}

	s := outstanding.Compute(docs, entries, period, fiscal.Date(2026, time.February, 1))

	assert.True(t, s.TotalSales.Equal(decimal.RequireFromString("3540")))
	assert.True(t, s.TotalCollections.Equal(decimal.RequireFromString("2360")))
	assert.True(t, s.Outstanding.Equal(decimal.RequireFromString("1180")))
}

func TestCompute_NegativeOutstandingAllowed(t *testing.T) {
	period := fiscal.Month(fiscal.Date(2026, time.January, 15))
	docs := []domain.TaxableDocument{
		invoice("I1", fiscal.Date(2026, time.January, 5), "1000", domain.InvoiceStatusPaid),
	}
	entries := []domain.LedgerEntry{
		// Collection for a prior period's invoice lands in January.
		credit(fiscal.Date(2026, time.January, 7), "2500"),
	}

	s := outstanding.Compute(docs, entries, period, fiscal.Date(2026, time.January, 31))

	assert.True(t, s.Outstanding.Equal(decimal.RequireFromString("-1500")))
}

func TestCompute_OverdueFlag(t *testing.T) {
	period := fiscal.Month(fiscal.Date(2026, time.January, 15))
	today := fiscal.Date(2026, time.January, 31)

	docs := []domain.TaxableDocument{
		invoice("OLD", fiscal.Date(2026, time.January, 2), "500", domain.InvoiceStatusUnpaid),    // 29 days old
		invoice("EDGE", fiscal.Date(2026, time.January, 16), "500", domain.InvoiceStatusUnpaid),  // exactly 15 days
		invoice("FRESH", fiscal.Date(2026, time.January, 25), "500", domain.InvoiceStatusPartial), // 6 days
		invoice("PAID", fiscal.Date(2026, time.January, 2), "500", domain.InvoiceStatusPaid),
	}

	s := outstanding.Compute(docs, nil, period, today)

	require.Len(t, s.OverdueDocuments, 1)
	assert.Equal(t, "OLD", s.OverdueDocuments[0].DocumentNumber)
	assert.Equal(t, 29-outstanding.OverdueThresholdDays, s.OverdueDocuments[0].DaysOverdue)
}

func TestCompute_PartialStatusCanBeOverdue(t *testing.T) {
	period := fiscal.Month(fiscal.Date(2026, time.January, 15))
	docs := []domain.TaxableDocument{
		invoice("P1", fiscal.Date(2026, time.January, 1), "500", domain.InvoiceStatusPartial),
	}

	s := outstanding.Compute(docs, nil, period, fiscal.Date(2026, time.January, 31))
	require.Len(t, s.OverdueDocuments, 1)
}

func TestCompute_EmptyInputs(t *testing.T) {
	period := fiscal.Month(fiscal.Date(2026, time.January, 15))
	s := outstanding.Compute(nil, nil, period, fiscal.Date(2026, time.January, 31))
	assert.True(t, s.TotalSales.IsZero())
	assert.True(t, s.TotalCollections.IsZero())
	assert.True(t, s.Outstanding.IsZero())
	assert.Empty(t, s.OverdueDocuments)
}
