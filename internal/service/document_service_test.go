package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
	"taxtally/internal/service"
	"taxtally/mocks"
)

func fixtures() (*domain.Business, *domain.Customer) {
	bizID := uuid.New()
	biz := &domain.Business{ID: bizID, Name: "Kaveri Stationers", GSTIN: "29ZYXWV9876K1Z3", State: "Karnataka"}
	cust := &domain.Customer{ID: uuid.New(), BusinessID: bizID, Name: "Sharma Supplies", GSTIN: "27ABCDE1234F1Z5", State: "Maharashtra"}
	return biz, cust
}

func finalizeInput(cust *domain.Customer) service.FinalizeInput {
	return service.FinalizeInput{
		Type:       domain.DocumentTypeInvoice,
		Date:       fiscal.Date(2026, time.January, 5),
		CustomerID: cust.ID,
		LineItems: []domain.LineItem{{
			Description:    "pens",
			HSNCode:        "9608",
			Quantity:       decimal.NewFromInt(2),
			UnitRate:       decimal.NewFromInt(500),
			GSTRatePercent: 18,
		}},
	}
}

func TestFinalize_ComputesAndFreezesTax(t *testing.T) {
	biz, cust := fixtures()
	docRepo := new(mocks.MockDocumentRepo)
	bizRepo := new(mocks.MockBusinessRepo)
	custRepo := new(mocks.MockCustomerRepo)
	numRepo := new(mocks.MockNumberingRepo)
	svc := service.NewDocumentService(docRepo, bizRepo, custRepo, numRepo)

	bizRepo.On("GetByID", mock.Anything, biz.ID).Return(biz, nil)
	custRepo.On("GetByID", mock.Anything, biz.ID, cust.ID).Return(cust, nil)
	numRepo.On("Get", mock.Anything, biz.ID).Return(&domain.NumberingState{
		BusinessID: biz.ID, Prefix: "INV/2025/", AutoNumbering: true, NextSequence: 7,
	}, nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	numRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.NumberingState) bool {
		return s.NextSequence == 8
	})).Return(nil)

	doc, err := svc.Finalize(context.Background(), biz.ID, finalizeInput(cust))
	require.NoError(t, err)

	// Karnataka seller, Maharashtra buyer: inter-state.
	assert.Equal(t, domain.GstTypeInterState, doc.GstType)
	assert.True(t, doc.IGST.Equal(decimal.RequireFromString("180")))
	assert.True(t, doc.CGST.IsZero())
	assert.True(t, doc.TotalAmount.Equal(decimal.RequireFromString("1180")))
	assert.Equal(t, "INV/2025/0007", doc.DocumentNumber)
	assert.Equal(t, domain.InvoiceStatusUnpaid, doc.Status)
	docRepo.AssertExpectations(t)
	numRepo.AssertExpectations(t)
}

func TestFinalize_RejectsNegativeQuantity(t *testing.T) {
	biz, cust := fixtures()
	svc := service.NewDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockBusinessRepo), new(mocks.MockCustomerRepo), new(mocks.MockNumberingRepo))

	in := finalizeInput(cust)
	in.LineItems[0].Quantity = decimal.NewFromInt(-1)

	_, err := svc.Finalize(context.Background(), biz.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
}

func TestFinalize_RejectsUnsupportedRate(t *testing.T) {
	biz, cust := fixtures()
	svc := service.NewDocumentService(new(mocks.MockDocumentRepo), new(mocks.MockBusinessRepo), new(mocks.MockCustomerRepo), new(mocks.MockNumberingRepo))

	in := finalizeInput(cust)
	in.LineItems[0].GSTRatePercent = 15

	_, err := svc.Finalize(context.Background(), biz.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
}

func TestFinalize_FailedCreateDoesNotBurnSequence(t *testing.T) {
	biz, cust := fixtures()
	docRepo := new(mocks.MockDocumentRepo)
	bizRepo := new(mocks.MockBusinessRepo)
	custRepo := new(mocks.MockCustomerRepo)
	numRepo := new(mocks.MockNumberingRepo)
	svc := service.NewDocumentService(docRepo, bizRepo, custRepo, numRepo)

	bizRepo.On("GetByID", mock.Anything, biz.ID).Return(biz, nil)
	custRepo.On("GetByID", mock.Anything, biz.ID, cust.ID).Return(cust, nil)
	numRepo.On("Get", mock.Anything, biz.ID).Return(&domain.NumberingState{
		BusinessID: biz.ID, Prefix: "INV/2025/", AutoNumbering: true, NextSequence: 7,
	}, nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Finalize(context.Background(), biz.ID, finalizeInput(cust))
	assert.Error(t, err)
	numRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFinalize_ExplicitNumberSkipsSequencer(t *testing.T) {
	biz, cust := fixtures()
	docRepo := new(mocks.MockDocumentRepo)
	bizRepo := new(mocks.MockBusinessRepo)
	custRepo := new(mocks.MockCustomerRepo)
	numRepo := new(mocks.MockNumberingRepo)
	svc := service.NewDocumentService(docRepo, bizRepo, custRepo, numRepo)

	bizRepo.On("GetByID", mock.Anything, biz.ID).Return(biz, nil)
	custRepo.On("GetByID", mock.Anything, biz.ID, cust.ID).Return(cust, nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	in := finalizeInput(cust)
	in.DocumentNumber = "INV/CUSTOM/9"
	doc, err := svc.Finalize(context.Background(), biz.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "INV/CUSTOM/9", doc.DocumentNumber)
	numRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdate_RecomputesWholeDocument(t *testing.T) {
	biz, cust := fixtures()
	docRepo := new(mocks.MockDocumentRepo)
	bizRepo := new(mocks.MockBusinessRepo)
	custRepo := new(mocks.MockCustomerRepo)
	svc := service.NewDocumentService(docRepo, bizRepo, custRepo, new(mocks.MockNumberingRepo))

	docID := uuid.New()
	existing := &domain.TaxableDocument{
		ID: docID, BusinessID: biz.ID, Type: domain.DocumentTypeInvoice,
		DocumentNumber: "INV/2025/0001", GstType: domain.GstTypeInterState,
		IGST: decimal.RequireFromString("180"),
	}
	// Customer moved to the seller's state; the edit recomputes the split.
	local := *cust
	local.State = "Karnataka"

	docRepo.On("GetByID", mock.Anything, biz.ID, docID).Return(existing, nil)
	bizRepo.On("GetByID", mock.Anything, biz.ID).Return(biz, nil)
	custRepo.On("GetByID", mock.Anything, biz.ID, cust.ID).Return(&local, nil)
	docRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.Update(context.Background(), biz.ID, docID, finalizeInput(cust))
	require.NoError(t, err)
	assert.Equal(t, domain.GstTypeIntraState, doc.GstType)
	assert.True(t, doc.CGST.Equal(decimal.RequireFromString("90")))
	assert.True(t, doc.IGST.IsZero())
	assert.Equal(t, "INV/2025/0001", doc.DocumentNumber, "number preserved when input omits it")
}

func TestSetStatus_InvoicesOnly(t *testing.T) {
	biz, _ := fixtures()
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewDocumentService(docRepo, new(mocks.MockBusinessRepo), new(mocks.MockCustomerRepo), new(mocks.MockNumberingRepo))

	docID := uuid.New()
	docRepo.On("GetByID", mock.Anything, biz.ID, docID).Return(&domain.TaxableDocument{
		ID: docID, Type: domain.DocumentTypeCreditNote,
	}, nil)

	_, err := svc.SetStatus(context.Background(), biz.ID, docID, domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}
