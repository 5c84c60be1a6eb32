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

type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *entity.PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error)
	Update(ctx context.Context, pm *entity.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const paymentMethodColumns = `id, name, type, instructions, details, is_active, created_at, updated_at, deleted_at`

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func scanPaymentMethod(row pgx.CollectableRow) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	err := row.Scan(&pm.ID, &pm.Name, &pm.Type, &pm.Instructions, &pm.Details,
		&pm.IsActive, &pm.CreatedAt, &pm.UpdatedAt, &pm.DeletedAt)
	return &pm, err
}

// Create reports ErrDuplicate when a live method already uses the name.
func (r *paymentMethodRepository) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payment_methods (id, name, type, instructions, details, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pm.ID, pm.Name, pm.Type, pm.Instructions, pm.Details, pm.IsActive, pm.CreatedAt, pm.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("payment method %q: %w", pm.Name, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create payment method", zap.Error(err), zap.String("name", pm.Name))
		return fmt.Errorf("create payment method %s: %w", pm.Name, err)
	}
	return nil
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1 AND deleted_at IS NULL`, id)
	var pm *entity.PaymentMethod
	if err == nil {
		pm, err = pgx.CollectExactlyOneRow(rows, scanPaymentMethod)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment method", zap.Error(err), zap.Stringer("id", id))
		return nil, fmt.Errorf("find payment method %s: %w", id, err)
	}
	return pm, nil
}

func (r *paymentMethodRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods
		WHERE deleted_at IS NULL AND (is_active OR NOT $1)
		ORDER BY is_active DESC, name`, activeOnly)
	if err != nil {
		r.log.Error("Failed to list payment methods", zap.Error(err))
		return nil, fmt.Errorf("find payment methods: %w", err)
	}
	methods, err := pgx.CollectRows(rows, scanPaymentMethod)
	if err != nil {
		r.log.Error("Failed to scan payment methods", zap.Error(err))
		return nil, fmt.Errorf("scan payment methods: %w", err)
	}
	return methods, nil
}

func (r *paymentMethodRepository) Update(ctx context.Context, pm *entity.PaymentMethod) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_methods
		SET name = $2, type = $3, instructions = $4, details = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		pm.ID, pm.Name, pm.Type, pm.Instructions, pm.Details, pm.IsActive,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("payment method %q: %w", pm.Name, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to update payment method", zap.Error(err), zap.Stringer("id", pm.ID))
		return fmt.Errorf("update payment method %s: %w", pm.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method %s: %w", pm.ID, ErrNotFound)
	}
	return nil
}

// Delete is soft; rows referenced by past bookings stay readable.
func (r *paymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payment_methods SET deleted_at = NOW(), is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete payment method", zap.Error(err), zap.Stringer("id", id))
		return fmt.Errorf("delete payment method %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method %s: %w", id, ErrNotFound)
	}
	return nil
}
