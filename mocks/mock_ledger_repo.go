package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxtally/internal/domain"
)

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) List(ctx context.Context, businessID uuid.UUID) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
