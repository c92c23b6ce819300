package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxtally/internal/domain"
	"taxtally/internal/port"
)

type numberingRepo struct {
	db *sqlx.DB
}

// NewNumberingRepo creates a new PostgreSQL-backed NumberingRepository.
func NewNumberingRepo(db *sqlx.DB) port.NumberingRepository {
	return &numberingRepo{db: db}
}

func (r *numberingRepo) Get(ctx context.Context, businessID uuid.UUID) (*domain.NumberingState, error) {
	var state domain.NumberingState
	err := r.db.GetContext(ctx, &state,
		`SELECT business_id, prefix, auto_numbering, next_sequence, updated_at
		 FROM numbering_state
		 WHERE business_id = $1`,
		businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *numberingRepo) Save(ctx context.Context, state *domain.NumberingState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO numbering_state (business_id, prefix, auto_numbering, next_sequence, updated_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (business_id) DO UPDATE SET
			prefix = EXCLUDED.prefix,
			auto_numbering = EXCLUDED.auto_numbering,
			next_sequence = EXCLUDED.next_sequence,
			updated_at = now()`,
		state.BusinessID, state.Prefix, state.AutoNumbering, state.NextSequence)
	return err
}
