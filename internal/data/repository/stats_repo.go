package repository

import (
	"context"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"go.uber.org/zap"
)

type StatsRepository interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

// Dashboard gathers the admin counters in a single round trip.
func (r *statsRepository) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM celebrities WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM events WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
			(SELECT COUNT(*) FROM deposits WHERE status = 'pending'),
			(SELECT COUNT(*) FROM support_tickets WHERE status IN ('open', 'in_progress')),
			(SELECT COUNT(*) FROM memberships WHERE status = 'active'),
			(SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE payment_status = 'paid')
	`

	var s entity.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.Users,
		&s.Celebrities,
		&s.Events,
		&s.PendingBookings,
		&s.PendingDeposits,
		&s.OpenTickets,
		&s.ActiveMemberships,
		&s.Revenue,
	)
	if err != nil {
		r.log.Error("Failed to load dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}
