package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxtally/internal/domain"
	"taxtally/internal/port"
)

type ledgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepo creates a new PostgreSQL-backed LedgerRepository.
func NewLedgerRepo(db *sqlx.DB) port.LedgerRepository {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) List(ctx context.Context, businessID uuid.UUID) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT id, business_id, entry_type, entry_date, amount, narration
		 FROM ledger_entries
		 WHERE business_id = $1
		 ORDER BY entry_date, id`,
		businessID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
