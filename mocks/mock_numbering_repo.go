package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxtally/internal/domain"
)

type MockNumberingRepo struct {
	mock.Mock
}

func (m *MockNumberingRepo) Get(ctx context.Context, businessID uuid.UUID) (*domain.NumberingState, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingState), args.Error(1)
}

func (m *MockNumberingRepo) Save(ctx context.Context, state *domain.NumberingState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
