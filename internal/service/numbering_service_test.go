package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
	"taxtally/internal/service"
	"taxtally/mocks"
)

func TestNumberingEvaluate_PromptOnFYChange(t *testing.T) {
	repo := new(mocks.MockNumberingRepo)
	svc := service.NewNumberingService(repo)
	bizID := uuid.New()

	repo.On("Get", mock.Anything, bizID).Return(&domain.NumberingState{
		BusinessID: bizID, Prefix: "INV/2025/", AutoNumbering: true, NextSequence: 42,
	}, nil)

	ev, err := svc.Evaluate(context.Background(), bizID, fiscal.FinancialYearOf(2026))
	require.NoError(t, err)
	assert.True(t, ev.NeedsPrompt)
	assert.Equal(t, "INV/2026/", ev.SuggestedPrefix)
}

func TestNumberingCommitReset_PersistsThenReturnsNewState(t *testing.T) {
	repo := new(mocks.MockNumberingRepo)
	svc := service.NewNumberingService(repo)
	bizID := uuid.New()

	repo.On("Get", mock.Anything, bizID).Return(&domain.NumberingState{
		BusinessID: bizID, Prefix: "INV/2025/", AutoNumbering: true, NextSequence: 42,
	}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.NumberingState) bool {
		return s.Prefix == "INV/2026/" && s.NextSequence == 1
	})).Return(nil)

	state, err := svc.CommitReset(context.Background(), bizID, "INV/2026/")
	require.NoError(t, err)
	assert.Equal(t, "INV/2026/", state.Prefix)
	assert.Equal(t, 1, state.NextSequence)
	repo.AssertExpectations(t)
}

func TestNumberingCommitReset_SaveFailureSurfacedUnchanged(t *testing.T) {
	repo := new(mocks.MockNumberingRepo)
	svc := service.NewNumberingService(repo)
	bizID := uuid.New()

	original := &domain.NumberingState{
		BusinessID: bizID, Prefix: "INV/2025/", AutoNumbering: true, NextSequence: 42,
	}
	repo.On("Get", mock.Anything, bizID).Return(original, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.CommitReset(context.Background(), bizID, "INV/2026/")
	assert.ErrorIs(t, err, assert.AnError)
	// The loaded state must not have been mutated in place.
	assert.Equal(t, "INV/2025/", original.Prefix)
	assert.Equal(t, 42, original.NextSequence)
}
