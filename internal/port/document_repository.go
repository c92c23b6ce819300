package port

import (
	"context"

	"github.com/google/uuid"

	"taxtally/internal/domain"
)

// DocumentRepository provides access to stored tax-bearing documents.
type DocumentRepository interface {
	// List returns all documents of one type for a business.
	List(ctx context.Context, businessID uuid.UUID, docType domain.DocumentType) ([]domain.TaxableDocument, error)
	// ListAll returns every document for a business across all types.
	ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.TaxableDocument, error)
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.TaxableDocument, error)
	Create(ctx context.Context, doc *domain.TaxableDocument) error
	Update(ctx context.Context, doc *domain.TaxableDocument) error
	Delete(ctx context.Context, businessID, id uuid.UUID) error
}
