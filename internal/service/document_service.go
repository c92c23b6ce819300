package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxtally/internal/domain"
	"taxtally/internal/gst"
	"taxtally/internal/numbering"
	"taxtally/internal/port"
)

// FinalizeInput is the caller's draft of a document. The GST type and tax
// split are not accepted from outside; they are computed here and frozen
// onto the document.
type FinalizeInput struct {
	Type           domain.DocumentType `json:"type"`
	DocumentNumber string              `json:"document_number"`
	Date           time.Time           `json:"date"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	LineItems      []domain.LineItem   `json:"line_items"`
}

// DocumentService finalizes, edits, and serves tax-bearing documents.
type DocumentService interface {
	Finalize(ctx context.Context, businessID uuid.UUID, in FinalizeInput) (*domain.TaxableDocument, error)
	Update(ctx context.Context, businessID, docID uuid.UUID, in FinalizeInput) (*domain.TaxableDocument, error)
	List(ctx context.Context, businessID uuid.UUID, docType domain.DocumentType) ([]domain.TaxableDocument, error)
	ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.TaxableDocument, error)
	GetByID(ctx context.Context, businessID, docID uuid.UUID) (*domain.TaxableDocument, error)
	Delete(ctx context.Context, businessID, docID uuid.UUID) error
	SetStatus(ctx context.Context, businessID, docID uuid.UUID, status domain.InvoiceStatus) (*domain.TaxableDocument, error)
}

type documentService struct {
	docRepo       port.DocumentRepository
	bizRepo       port.BusinessRepository
	customerRepo  port.CustomerRepository
	numberingRepo port.NumberingRepository
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	bizRepo port.BusinessRepository,
	customerRepo port.CustomerRepository,
	numberingRepo port.NumberingRepository,
) DocumentService {
	return &documentService{
		docRepo:       docRepo,
		bizRepo:       bizRepo,
		customerRepo:  customerRepo,
		numberingRepo: numberingRepo,
	}
}

func validateLineItems(items []domain.LineItem) error {
	for i, item := range items {
		if item.Quantity.IsNegative() || item.UnitRate.IsNegative() {
			return fmt.Errorf("%w: line %d has negative quantity or rate", domain.ErrInvalidLineItem, i)
		}
		if !domain.ValidGSTRate(item.GSTRatePercent) {
			return fmt.Errorf("%w: line %d has unsupported GST rate %d", domain.ErrInvalidLineItem, i, item.GSTRatePercent)
		}
	}
	return nil
}

// Finalize resolves the GST type from the business and customer states,
// computes the tax split, assigns an auto number when configured, and
// persists the document. The resolved type and totals stay frozen on the
// stored document even if the business's registered state later changes.
func (s *documentService) Finalize(ctx context.Context, businessID uuid.UUID, in FinalizeInput) (*domain.TaxableDocument, error) {
	if err := validateLineItems(in.LineItems); err != nil {
		return nil, err
	}

	biz, err := s.bizRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading business profile: %w", err)
	}
	cust, err := s.customerRepo.GetByID(ctx, businessID, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}

	gstType := gst.ResolveType(biz.State, cust.State)
	totals := gst.ComputeTotals(in.LineItems, gstType)

	doc := &domain.TaxableDocument{
		ID:             uuid.New(),
		BusinessID:     businessID,
		Type:           in.Type,
		DocumentNumber: in.DocumentNumber,
		Date:           in.Date,
		CustomerID:     cust.ID,
		CustomerName:   cust.Name,
		CustomerGSTIN:  cust.GSTIN,
		LineItems:      in.LineItems,
		GstType:        gstType,
		TaxableValue:   totals.TaxableValue,
		CGST:           totals.CGST,
		SGST:           totals.SGST,
		IGST:           totals.IGST,
		TotalAmount:    totals.TotalAmount,
	}
	if in.Type == domain.DocumentTypeInvoice {
		doc.Status = domain.InvoiceStatusUnpaid
	}

	var numState *domain.NumberingState
	if doc.DocumentNumber == "" && in.Type == domain.DocumentTypeInvoice {
		numState, err = s.numberingRepo.Get(ctx, businessID)
		if err != nil {
			return nil, fmt.Errorf("loading numbering state: %w", err)
		}
		if !numState.AutoNumbering {
			return nil, fmt.Errorf("%w: document number required when auto-numbering is off", domain.ErrInvalidDocument)
		}
		doc.DocumentNumber = numbering.FormatNumber(numState.Prefix, numState.NextSequence)
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	// Advance the sequence only after the document exists; a failed
	// create must not burn a number.
	if numState != nil {
		numState.NextSequence++
		if err := s.numberingRepo.Save(ctx, numState); err != nil {
			return nil, fmt.Errorf("advancing numbering sequence: %w", err)
		}
	}
	return doc, nil
}

// Update recomputes the whole document from the new input; individual tax
// fields are never patched.
func (s *documentService) Update(ctx context.Context, businessID, docID uuid.UUID, in FinalizeInput) (*domain.TaxableDocument, error) {
	if err := validateLineItems(in.LineItems); err != nil {
		return nil, err
	}

	existing, err := s.docRepo.GetByID(ctx, businessID, docID)
	if err != nil {
		return nil, err
	}
	biz, err := s.bizRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading business profile: %w", err)
	}
	cust, err := s.customerRepo.GetByID(ctx, businessID, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}

	gstType := gst.ResolveType(biz.State, cust.State)
	totals := gst.ComputeTotals(in.LineItems, gstType)

	existing.Date = in.Date
	existing.CustomerID = cust.ID
	existing.CustomerName = cust.Name
	existing.CustomerGSTIN = cust.GSTIN
	existing.LineItems = in.LineItems
	existing.GstType = gstType
	existing.TaxableValue = totals.TaxableValue
	existing.CGST = totals.CGST
	existing.SGST = totals.SGST
	existing.IGST = totals.IGST
	existing.TotalAmount = totals.TotalAmount
	if in.DocumentNumber != "" {
		existing.DocumentNumber = in.DocumentNumber
	}

	if err := s.docRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *documentService) List(ctx context.Context, businessID uuid.UUID, docType domain.DocumentType) ([]domain.TaxableDocument, error) {
	return s.docRepo.List(ctx, businessID, docType)
}

func (s *documentService) ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.TaxableDocument, error) {
	return s.docRepo.ListAll(ctx, businessID)
}

func (s *documentService) GetByID(ctx context.Context, businessID, docID uuid.UUID) (*domain.TaxableDocument, error) {
	return s.docRepo.GetByID(ctx, businessID, docID)
}

func (s *documentService) Delete(ctx context.Context, businessID, docID uuid.UUID) error {
	return s.docRepo.Delete(ctx, businessID, docID)
}

func (s *documentService) SetStatus(ctx context.Context, businessID, docID uuid.UUID, status domain.InvoiceStatus) (*domain.TaxableDocument, error) {
	doc, err := s.docRepo.GetByID(ctx, businessID, docID)
	if err != nil {
		return nil, err
	}
	if doc.Type != domain.DocumentTypeInvoice {
		return nil, fmt.Errorf("%w: status applies to invoices only", domain.ErrInvalidDocument)
	}
	doc.Status = status
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
