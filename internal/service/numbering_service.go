package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taxtally/internal/domain"
	"taxtally/internal/numbering"
	"taxtally/internal/port"
)

// NumberingService manages the two-phase numbering reset: Evaluate reports
// whether switching periods warrants a confirmation prompt, and
// CommitReset applies the new prefix only after the caller's explicit
// accept. Skipping the prompt requires no call at all; the prefix stays
// untouched.
type NumberingService interface {
	Get(ctx context.Context, businessID uuid.UUID) (*domain.NumberingState, error)
	Save(ctx context.Context, state *domain.NumberingState) error
	Evaluate(ctx context.Context, businessID uuid.UUID, newPeriod domain.Period) (numbering.Evaluation, error)
	CommitReset(ctx context.Context, businessID uuid.UUID, newPrefix string) (*domain.NumberingState, error)
}

type numberingService struct {
	repo port.NumberingRepository
}

// NewNumberingService creates a new NumberingService implementation.
func NewNumberingService(repo port.NumberingRepository) NumberingService {
	return &numberingService{repo: repo}
}

func (s *numberingService) Get(ctx context.Context, businessID uuid.UUID) (*domain.NumberingState, error) {
	return s.repo.Get(ctx, businessID)
}

func (s *numberingService) Save(ctx context.Context, state *domain.NumberingState) error {
	return s.repo.Save(ctx, state)
}

func (s *numberingService) Evaluate(ctx context.Context, businessID uuid.UUID, newPeriod domain.Period) (numbering.Evaluation, error) {
	state, err := s.repo.Get(ctx, businessID)
	if err != nil {
		return numbering.Evaluation{}, fmt.Errorf("loading numbering state: %w", err)
	}
	return numbering.EvaluateReset(state.Prefix, newPeriod), nil
}

// CommitReset persists the new prefix and restarts the sequence. The
// stored state is only replaced after the save succeeds; a persistence
// failure is surfaced unchanged and leaves numbering as it was.
func (s *numberingService) CommitReset(ctx context.Context, businessID uuid.UUID, newPrefix string) (*domain.NumberingState, error) {
	state, err := s.repo.Get(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading numbering state: %w", err)
	}

	updated := *state
	updated.Prefix = newPrefix
	updated.NextSequence = 1
	if err := s.repo.Save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
