package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taxtally/internal/aggregate"
	"taxtally/internal/domain"
	"taxtally/internal/port"
	"taxtally/internal/report"
)

// ReportService builds statutory reports over a business's documents. All
// reports for one period are derived from a single aggregate, so totals
// are consistent across GSTR-1, GSTR-3B, the HSN summary, and the Sales
// Register by construction.
type ReportService interface {
	Aggregate(ctx context.Context, businessID uuid.UUID, period domain.Period) (aggregate.Aggregate, error)
	GSTR1(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GSTR1Report, error)
	GSTR1JSON(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GovGSTR1, error)
	GSTR3B(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GSTR3BReport, error)
	HSNSummary(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.HSNSummaryReport, error)
	SalesRegister(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.SalesRegisterReport, error)
}

type reportService struct {
	docRepo port.DocumentRepository
	bizRepo port.BusinessRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(docRepo port.DocumentRepository, bizRepo port.BusinessRepository) ReportService {
	return &reportService{docRepo: docRepo, bizRepo: bizRepo}
}

func (s *reportService) Aggregate(ctx context.Context, businessID uuid.UUID, period domain.Period) (aggregate.Aggregate, error) {
	docs, err := s.docRepo.ListAll(ctx, businessID)
	if err != nil {
		return aggregate.Aggregate{}, fmt.Errorf("listing documents: %w", err)
	}
	return aggregate.Compute(docs, period), nil
}

func (s *reportService) GSTR1(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GSTR1Report, error) {
	agg, err := s.Aggregate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return report.BuildGSTR1(agg)
}

func (s *reportService) GSTR1JSON(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GovGSTR1, error) {
	agg, err := s.Aggregate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	biz, err := s.bizRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading business profile: %w", err)
	}
	return report.BuildGSTR1JSON(agg, biz.GSTIN)
}

func (s *reportService) GSTR3B(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.GSTR3BReport, error) {
	agg, err := s.Aggregate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return report.BuildGSTR3B(agg)
}

func (s *reportService) HSNSummary(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.HSNSummaryReport, error) {
	agg, err := s.Aggregate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return report.BuildHSNSummary(agg)
}

func (s *reportService) SalesRegister(ctx context.Context, businessID uuid.UUID, period domain.Period) (*report.SalesRegisterReport, error) {
	agg, err := s.Aggregate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return report.BuildSalesRegister(agg)
}
