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

type businessRepo struct {
	db *sqlx.DB
}

// NewBusinessRepo creates a new PostgreSQL-backed BusinessRepository.
func NewBusinessRepo(db *sqlx.DB) port.BusinessRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	var biz domain.Business
	err := r.db.GetContext(ctx, &biz,
		`SELECT id, name, gstin, state, created_at, updated_at
		 FROM businesses
		 WHERE id = $1`,
		id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &biz, nil
}

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Customer, error) {
	var cust domain.Customer
	err := r.db.GetContext(ctx, &cust,
		`SELECT id, business_id, name, gstin, state, created_at
		 FROM customers
		 WHERE business_id = $1 AND id = $2`,
		businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cust, nil
}
