package repository

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DepositRepository interface {
	Create(ctx context.Context, d *entity.Deposit) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Deposit, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Deposit, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Deposit, error)
	Count(ctx context.Context, status *string) (int64, error)
	Update(ctx context.Context, d *entity.Deposit) error
}

const depositColumns = `id, user_id, payment_method_id, amount, status, proof_url, provider_ref, admin_note,
		       reviewed_by, reviewed_at, created_at, updated_at`

type depositRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDepositRepository(db database.PgxIface, log *zap.Logger) DepositRepository {
	return &depositRepository{
		db:  db,
		log: log.With(zap.String("repository", "deposit")),
	}
}

func scanDeposit(row pgx.Row) (*entity.Deposit, error) {
	var d entity.Deposit
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.PaymentMethodID,
		&d.Amount,
		&d.Status,
		&d.ProofURL,
		&d.ProviderRef,
		&d.AdminNote,
		&d.ReviewedBy,
		&d.ReviewedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *depositRepository) Create(ctx context.Context, d *entity.Deposit) error {
	query := `
		INSERT INTO deposits (id, user_id, payment_method_id, amount, status, proof_url, provider_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		d.ID, d.UserID, d.PaymentMethodID, d.Amount, d.Status, d.ProofURL, d.ProviderRef, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create deposit", zap.Error(err), zap.String("user_id", d.UserID.String()))
		return fmt.Errorf("create deposit: %w", err)
	}
	return nil
}

// FindByIDForUpdate locks the deposit row for the surrounding transaction.
func (r *depositRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1 FOR UPDATE`

	d, err := scanDeposit(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find deposit", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find deposit %s: %w", id.String(), err)
	}
	return d, nil
}

func (r *depositRepository) list(ctx context.Context, fb *filter, limit, offset int) ([]*entity.Deposit, error) {
	suffix, args := fb.page(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+depositColumns+` FROM deposits`+fb.where()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list deposits", zap.Error(err))
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []*entity.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deposit row: %w", err)
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}

func (r *depositRepository) count(ctx context.Context, fb *filter) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deposits`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count deposits", zap.Error(err))
		return 0, fmt.Errorf("count deposits: %w", err)
	}
	return total, nil
}

func (r *depositRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Deposit, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.list(ctx, fb, limit, offset)
}

func (r *depositRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.count(ctx, fb)
}

func (r *depositRepository) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Deposit, error) {
	return r.list(ctx, statusFilter(status), limit, offset)
}

func (r *depositRepository) Count(ctx context.Context, status *string) (int64, error) {
	return r.count(ctx, statusFilter(status))
}

func (r *depositRepository) Update(ctx context.Context, d *entity.Deposit) error {
	query := `
		UPDATE deposits
		SET status = $2, provider_ref = $3, admin_note = $4, reviewed_by = $5, reviewed_at = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		d.ID, d.Status, d.ProviderRef, d.AdminNote, d.ReviewedBy, d.ReviewedAt, d.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update deposit", zap.Error(err), zap.String("id", d.ID.String()))
		return fmt.Errorf("update deposit %s: %w", d.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("deposit %s: %w", d.ID.String(), ErrNotFound)
	}
	return nil
}
