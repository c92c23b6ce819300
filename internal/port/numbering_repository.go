package port

import (
	"context"

	"github.com/google/uuid"

	"taxtally/internal/domain"
)

// NumberingRepository persists the per-business invoice numbering state.
type NumberingRepository interface {
	Get(ctx context.Context, businessID uuid.UUID) (*domain.NumberingState, error)
	Save(ctx context.Context, state *domain.NumberingState) error
}
