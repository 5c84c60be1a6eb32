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

type MembershipPlanRepository interface {
	Create(ctx context.Context, plan *entity.MembershipPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error)
	Update(ctx context.Context, plan *entity.MembershipPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type membershipPlanRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMembershipPlanRepository(db database.PgxIface, log *zap.Logger) MembershipPlanRepository {
	return &membershipPlanRepository{
		db:  db,
		log: log.With(zap.String("repository", "membership_plan")),
	}
}

func scanPlan(row pgx.Row) (*entity.MembershipPlan, error) {
	var p entity.MembershipPlan
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.DurationDays,
		&p.Benefits,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *membershipPlanRepository) Create(ctx context.Context, p *entity.MembershipPlan) error {
	query := `
		INSERT INTO membership_plans (id, name, description, price, duration_days, benefits, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Description, p.Price, p.DurationDays, p.Benefits, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create membership plan", zap.Error(err), zap.String("name", p.Name))
		return fmt.Errorf("create membership plan %s: %w", p.Name, err)
	}
	return nil
}

func (r *membershipPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	query := `
		SELECT id, name, description, price, duration_days, benefits, is_active, created_at, updated_at, deleted_at
		FROM membership_plans
		WHERE id = $1 AND deleted_at IS NULL
	`

	p, err := scanPlan(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find membership plan", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find membership plan %s: %w", id.String(), err)
	}
	return p, nil
}

func (r *membershipPlanRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error) {
	query := `
		SELECT id, name, description, price, duration_days, benefits, is_active, created_at, updated_at, deleted_at
		FROM membership_plans
		WHERE deleted_at IS NULL AND (is_active OR NOT $1)
		ORDER BY price ASC
	`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		r.log.Error("Failed to list membership plans", zap.Error(err))
		return nil, fmt.Errorf("list membership plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.MembershipPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership plan row: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *membershipPlanRepository) Update(ctx context.Context, p *entity.MembershipPlan) error {
	query := `
		UPDATE membership_plans
		SET name = $2, description = $3, price = $4, duration_days = $5, benefits = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Description, p.Price, p.DurationDays, p.Benefits, p.IsActive, p.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update membership plan", zap.Error(err), zap.String("id", p.ID.String()))
		return fmt.Errorf("update membership plan %s: %w", p.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership plan %s: %w", p.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *membershipPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE membership_plans SET deleted_at = NOW(), is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete membership plan", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete membership plan %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership plan %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
