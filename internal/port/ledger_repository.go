package port

import (
	"context"

	"github.com/google/uuid"

	"taxtally/internal/domain"
)

// LedgerRepository provides read-only access to the payment ledger.
type LedgerRepository interface {
	List(ctx context.Context, businessID uuid.UUID) ([]domain.LedgerEntry, error)
}
