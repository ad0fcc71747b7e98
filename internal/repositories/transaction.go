package repositories

import (
	"context"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/jmoiron/sqlx"
)

type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ScanTransactions streams transactions matching the filter.
func (r *TransactionReadRepository) ScanTransactions(ctx context.Context, f models.Filter, fn func(models.Transaction) error) error {
	const query = `
		SELECT t.transaction_id, t.user_id, t.amount::FLOAT8 AS amount, t.transaction_date,
		       t.transaction_type, (u.user_id IS NULL) AS user_missing
		FROM transactions t
		LEFT JOIN users u ON u.user_id = t.user_id
		WHERE ($1::DATE IS NULL OR t.transaction_date >= $1)
		  AND ($2::DATE IS NULL OR t.transaction_date < $2)
		  AND ($3::VARCHAR IS NULL OR t.transaction_type = $3)
		ORDER BY t.transaction_id
	`
	args := []any{f.From, f.To, nullString(string(f.TransactionType))}

	return scanRows(ctx, r.db, "scan transactions", query, args, fn)
}

// GetTransactionByID returns a transaction or a NotFoundError.
func (r *TransactionReadRepository) GetTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	const query = `
		SELECT t.transaction_id, t.user_id, t.amount::FLOAT8 AS amount, t.transaction_date,
		       t.transaction_type, (u.user_id IS NULL) AS user_missing
		FROM transactions t
		LEFT JOIN users u ON u.user_id = t.user_id
		WHERE t.transaction_id = $1
	`
	return getByID[models.Transaction](ctx, r.db, models.EntityTransactions, query, id)
}
