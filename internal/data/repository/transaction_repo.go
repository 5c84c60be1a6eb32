package repository

import (
	"context"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindAll(ctx context.Context, f entity.TransactionFilter, limit, offset int) ([]*entity.Transaction, error)
	Count(ctx context.Context, f entity.TransactionFilter) (int64, error)
}

const transactionColumns = `id, user_id, type, direction, amount, balance_after, reference, description, status, created_at`

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Type,
		&t.Direction,
		&t.Amount,
		&t.BalanceAfter,
		&t.Reference,
		&t.Description,
		&t.Status,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, direction, amount, balance_after, reference, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		t.ID, t.UserID, t.Type, t.Direction, t.Amount, t.BalanceAfter, t.Reference, t.Description, t.Status, t.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("user_id", t.UserID.String()),
			zap.String("type", string(t.Type)),
		)
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func transactionFilter(f entity.TransactionFilter) *filter {
	fb := newFilter()
	if f.UserID != nil {
		fb.add("user_id = ?", *f.UserID)
	}
	if f.Type != nil && *f.Type != "" {
		fb.add("type = ?", *f.Type)
	}
	return fb
}

func (r *transactionRepository) FindAll(ctx context.Context, f entity.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	fb := transactionFilter(f)
	suffix, args := fb.page(limit, offset)

	rows, err := r.db.Query(ctx, `SELECT `+transactionColumns+` FROM transactions`+fb.where()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *transactionRepository) Count(ctx context.Context, f entity.TransactionFilter) (int64, error) {
	fb := transactionFilter(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count transactions", zap.Error(err))
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return total, nil
}
