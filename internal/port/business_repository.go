package port

import (
	"context"

	"github.com/google/uuid"

	"taxtally/internal/domain"
)

// BusinessRepository provides the business profile (registered state,
// GSTIN) that document finalization and exports read.
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// CustomerRepository resolves counterparties at document finalization.
type CustomerRepository interface {
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Customer, error)
}
