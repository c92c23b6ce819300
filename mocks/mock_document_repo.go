package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxtally/internal/domain"
)

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) List(ctx context.Context, businessID uuid.UUID, docType domain.DocumentType) ([]domain.TaxableDocument, error) {
	args := m.Called(ctx, businessID, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxableDocument), args.Error(1)
}

func (m *MockDocumentRepo) ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.TaxableDocument, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxableDocument), args.Error(1)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.TaxableDocument, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxableDocument), args.Error(1)
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.TaxableDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) Update(ctx context.Context, doc *domain.TaxableDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	args := m.Called(ctx, businessID, id)
	return args.Error(0)
}
