package repository

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PlatformRepository interface {
	Get(ctx context.Context) (*entity.Platform, error)
	Upsert(ctx context.Context, p *entity.Platform) error
}

type platformRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlatformRepository(db database.PgxIface, log *zap.Logger) PlatformRepository {
	return &platformRepository{
		db:  db,
		log: log.With(zap.String("repository", "platform")),
	}
}

// Get returns nil, nil until settings have been saved once.
func (r *platformRepository) Get(ctx context.Context) (*entity.Platform, error) {
	query := `
		SELECT site_name, support_email, currency, min_deposit, booking_fee_percent,
		       maintenance_mode, social_links, updated_by, updated_at
		FROM platform_settings
		WHERE id = 1
	`

	var p entity.Platform
	err := database.Conn(ctx, r.db).QueryRow(ctx, query).Scan(
		&p.SiteName,
		&p.SupportEmail,
		&p.Currency,
		&p.MinDeposit,
		&p.BookingFeePercent,
		&p.MaintenanceMode,
		&p.SocialLinks,
		&p.UpdatedBy,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load platform settings", zap.Error(err))
		return nil, fmt.Errorf("load platform settings: %w", err)
	}
	return &p, nil
}

func (r *platformRepository) Upsert(ctx context.Context, p *entity.Platform) error {
	query := `
		INSERT INTO platform_settings (id, site_name, support_email, currency, min_deposit, booking_fee_percent,
		                               maintenance_mode, social_links, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET site_name = EXCLUDED.site_name,
		    support_email = EXCLUDED.support_email,
		    currency = EXCLUDED.currency,
		    min_deposit = EXCLUDED.min_deposit,
		    booking_fee_percent = EXCLUDED.booking_fee_percent,
		    maintenance_mode = EXCLUDED.maintenance_mode,
		    social_links = EXCLUDED.social_links,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		p.SiteName,
		p.SupportEmail,
		p.Currency,
		p.MinDeposit,
		p.BookingFeePercent,
		p.MaintenanceMode,
		p.SocialLinks,
		p.UpdatedBy,
		p.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to save platform settings", zap.Error(err))
		return fmt.Errorf("save platform settings: %w", err)
	}
	return nil
}
