package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Membership, error)
	FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Membership, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)
	FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Membership, error)
	Count(ctx context.Context, status *string) (int64, error)
	Update(ctx context.Context, m *entity.Membership) error
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

const membershipColumns = `id, user_id, plan_id, status, amount, payment_method_id, starts_at, ends_at, created_at, updated_at`

type membershipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMembershipRepository(db database.PgxIface, log *zap.Logger) MembershipRepository {
	return &membershipRepository{
		db:  db,
		log: log.With(zap.String("repository", "membership")),
	}
}

func scanMembership(row pgx.Row) (*entity.Membership, error) {
	var m entity.Membership
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.PlanID,
		&m.Status,
		&m.Amount,
		&m.PaymentMethodID,
		&m.StartsAt,
		&m.EndsAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create returns ErrDuplicate when the user already holds an open membership.
func (r *membershipRepository) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, plan_id, status, amount, payment_method_id, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		m.ID,
		m.UserID,
		m.PlanID,
		m.Status,
		m.Amount,
		m.PaymentMethodID,
		m.StartsAt,
		m.EndsAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create membership", zap.Error(err), zap.String("user_id", m.UserID.String()))
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

func (r *membershipRepository) findOne(ctx context.Context, query string, arg any) (*entity.Membership, error) {
	m, err := scanMembership(database.Conn(ctx, r.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find membership", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find membership %v: %w", arg, err)
	}
	return m, nil
}

func (r *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	return r.findOne(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id)
}

// FindByIDForUpdate locks the membership row for the surrounding transaction.
func (r *membershipRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	return r.findOne(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1 FOR UPDATE`, id)
}

func (r *membershipRepository) FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Membership, error) {
	return r.findOne(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 AND status IN ('pending', 'active')`, userID)
}

func (r *membershipRepository) scanAll(rows pgx.Rows) ([]*entity.Membership, error) {
	defer rows.Close()

	var memberships []*entity.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			r.log.Error("Failed to scan membership row", zap.Error(err))
			return nil, fmt.Errorf("scan membership row: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *membershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	rows, err := r.db.Query(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Error("Failed to list user memberships", zap.Error(err))
		return nil, fmt.Errorf("list memberships of %s: %w", userID.String(), err)
	}
	return r.scanAll(rows)
}

func (r *membershipRepository) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Membership, error) {
	fb := statusFilter(status)
	suffix, args := fb.page(limit, offset)

	rows, err := r.db.Query(ctx, `SELECT `+membershipColumns+` FROM memberships`+fb.where()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list memberships", zap.Error(err))
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return r.scanAll(rows)
}

func (r *membershipRepository) Count(ctx context.Context, status *string) (int64, error) {
	fb := statusFilter(status)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM memberships`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count memberships", zap.Error(err))
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return total, nil
}

func (r *membershipRepository) Update(ctx context.Context, m *entity.Membership) error {
	query := `
		UPDATE memberships
		SET status = $2, starts_at = $3, ends_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, m.ID, m.Status, m.StartsAt, m.EndsAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to update membership", zap.Error(err), zap.String("id", m.ID.String()))
		return fmt.Errorf("update membership %s: %w", m.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", m.ID.String(), ErrNotFound)
	}
	return nil
}

// ExpireDue flips active memberships whose period ended before now.
func (r *membershipRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE memberships SET status = 'expired', updated_at = $1 WHERE status = 'active' AND ends_at < $1`

	result, err := r.db.Exec(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to expire memberships", zap.Error(err))
		return 0, fmt.Errorf("expire memberships: %w", err)
	}
	return result.RowsAffected(), nil
}
