package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxtally/internal/domain"
	"taxtally/internal/outstanding"
	"taxtally/internal/port"
)

// OutstandingService cross-references documents against the payment
// ledger.
type OutstandingService interface {
	Compute(ctx context.Context, businessID uuid.UUID, period domain.Period, today time.Time) (domain.OutstandingSummary, error)
}

type outstandingService struct {
	docRepo    port.DocumentRepository
	ledgerRepo port.LedgerRepository
}

// NewOutstandingService creates a new OutstandingService implementation.
func NewOutstandingService(docRepo port.DocumentRepository, ledgerRepo port.LedgerRepository) OutstandingService {
	return &outstandingService{docRepo: docRepo, ledgerRepo: ledgerRepo}
}

func (s *outstandingService) Compute(ctx context.Context, businessID uuid.UUID, period domain.Period, today time.Time) (domain.OutstandingSummary, error) {
	docs, err := s.docRepo.List(ctx, businessID, domain.DocumentTypeInvoice)
	if err != nil {
		return domain.OutstandingSummary{}, fmt.Errorf("listing invoices: %w", err)
	}
	entries, err := s.ledgerRepo.List(ctx, businessID)
	if err != nil {
		return domain.OutstandingSummary{}, fmt.Errorf("listing ledger entries: %w", err)
	}
	return outstanding.Compute(docs, entries, period, today), nil
}
