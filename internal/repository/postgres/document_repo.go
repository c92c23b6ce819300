package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxtally/internal/domain"
	"taxtally/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

// documentRow mirrors the documents table; line items live in a JSONB
// column and are unpacked into the domain model on read.
type documentRow struct {
	domain.TaxableDocument
	LineItemsJSON []byte `db:"line_items"`
}

const documentColumns = `
	id, business_id, doc_type, doc_number, doc_date,
	customer_id, customer_name, customer_gstin, line_items, gst_type,
	taxable_value, cgst, sgst, igst, total_amount, status,
	created_at, updated_at`

func (r *documentRepo) List(ctx context.Context, businessID uuid.UUID, docType domain.DocumentType) ([]domain.TaxableDocument, error) {
	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+documentColumns+`
		 FROM documents
		 WHERE business_id = $1 AND doc_type = $2
		 ORDER BY doc_date, doc_number`,
		businessID, docType)
	if err != nil {
		return nil, err
	}
	return unpackRows(rows)
}

func (r *documentRepo) ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.TaxableDocument, error) {
	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+documentColumns+`
		 FROM documents
		 WHERE business_id = $1
		 ORDER BY doc_date, doc_number`,
		businessID)
	if err != nil {
		return nil, err
	}
	return unpackRows(rows)
}

func (r *documentRepo) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.TaxableDocument, error) {
	var row documentRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+documentColumns+`
		 FROM documents
		 WHERE business_id = $1 AND id = $2`,
		businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc, err := unpackRow(&row)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.TaxableDocument) error {
	items, err := json.Marshal(doc.LineItems)
	if err != nil {
		return fmt.Errorf("encoding line items: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (
			id, business_id, doc_type, doc_number, doc_date,
			customer_id, customer_name, customer_gstin, line_items, gst_type,
			taxable_value, cgst, sgst, igst, total_amount, status,
			created_at, updated_at
		 ) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, now(), now()
		 )`,
		doc.ID, doc.BusinessID, doc.Type, doc.DocumentNumber, doc.Date,
		doc.CustomerID, doc.CustomerName, doc.CustomerGSTIN, items, doc.GstType,
		doc.TaxableValue, doc.CGST, doc.SGST, doc.IGST, doc.TotalAmount, doc.Status)
	return err
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.TaxableDocument) error {
	items, err := json.Marshal(doc.LineItems)
	if err != nil {
		return fmt.Errorf("encoding line items: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			doc_number = $3, doc_date = $4, customer_id = $5,
			customer_name = $6, customer_gstin = $7, line_items = $8,
			gst_type = $9, taxable_value = $10, cgst = $11, sgst = $12,
			igst = $13, total_amount = $14, status = $15, updated_at = now()
		 WHERE business_id = $1 AND id = $2`,
		doc.BusinessID, doc.ID, doc.DocumentNumber, doc.Date, doc.CustomerID,
		doc.CustomerName, doc.CustomerGSTIN, items,
		doc.GstType, doc.TaxableValue, doc.CGST, doc.SGST,
		doc.IGST, doc.TotalAmount, doc.Status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE business_id = $1 AND id = $2`,
		businessID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func unpackRow(row *documentRow) (*domain.TaxableDocument, error) {
	doc := row.TaxableDocument
	if len(row.LineItemsJSON) > 0 {
		if err := json.Unmarshal(row.LineItemsJSON, &doc.LineItems); err != nil {
			return nil, fmt.Errorf("decoding line items for %s: %w", doc.ID, err)
		}
	}
	return &doc, nil
}

func unpackRows(rows []documentRow) ([]domain.TaxableDocument, error) {
	docs := make([]domain.TaxableDocument, 0, len(rows))
	for i := range rows {
		doc, err := unpackRow(&rows[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}
