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

type DonationRepository interface {
	Create(ctx context.Context, d *entity.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Donation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Donation, error)
	Count(ctx context.Context, status *string) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus) error
	SummaryByCelebrity(ctx context.Context, celebrityID uuid.UUID) (*entity.DonationSummary, error)
}

const donationColumns = `id, user_id, celebrity_id, amount, message, is_anonymous, payment_method_id, status, created_at, updated_at`

type donationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDonationRepository(db database.PgxIface, log *zap.Logger) DonationRepository {
	return &donationRepository{
		db:  db,
		log: log.With(zap.String("repository", "donation")),
	}
}

func scanDonation(row pgx.Row) (*entity.Donation, error) {
	var d entity.Donation
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.CelebrityID,
		&d.Amount,
		&d.Message,
		&d.IsAnonymous,
		&d.PaymentMethodID,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *donationRepository) Create(ctx context.Context, d *entity.Donation) error {
	query := `
		INSERT INTO donations (id, user_id, celebrity_id, amount, message, is_anonymous, payment_method_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		d.ID, d.UserID, d.CelebrityID, d.Amount, d.Message, d.IsAnonymous, d.PaymentMethodID, d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create donation", zap.Error(err), zap.String("user_id", d.UserID.String()))
		return fmt.Errorf("create donation: %w", err)
	}
	return nil
}

func (r *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	d, err := scanDonation(database.Conn(ctx, r.db).QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find donation", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find donation %s: %w", id.String(), err)
	}
	return d, nil
}

func (r *donationRepository) list(ctx context.Context, fb *filter, limit, offset int) ([]*entity.Donation, error) {
	suffix, args := fb.page(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+donationColumns+` FROM donations`+fb.where()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list donations", zap.Error(err))
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var donations []*entity.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donation row: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) count(ctx context.Context, fb *filter) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM donations`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count donations", zap.Error(err))
		return 0, fmt.Errorf("count donations: %w", err)
	}
	return total, nil
}

func (r *donationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Donation, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.list(ctx, fb, limit, offset)
}

func (r *donationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.count(ctx, fb)
}

func (r *donationRepository) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Donation, error) {
	return r.list(ctx, statusFilter(status), limit, offset)
}

func (r *donationRepository) Count(ctx context.Context, status *string) (int64, error) {
	return r.count(ctx, statusFilter(status))
}

// UpdateStatus only moves pending donations.
func (r *donationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus) error {
	query := `UPDATE donations SET status = $2, updated_at = NOW() WHERE id = $1 AND status = 'pending'`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update donation status", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("update donation %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("donation %s: %w", id.String(), ErrNotPending)
	}
	return nil
}

func (r *donationRepository) SummaryByCelebrity(ctx context.Context, celebrityID uuid.UUID) (*entity.DonationSummary, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(DISTINCT user_id), COUNT(*)
		FROM donations
		WHERE celebrity_id = $1 AND status = 'completed'
	`

	var s entity.DonationSummary
	if err := r.db.QueryRow(ctx, query, celebrityID).Scan(&s.Total, &s.DonorCount, &s.Completions); err != nil {
		r.log.Error("Failed to summarize donations", zap.Error(err))
		return nil, fmt.Errorf("donation summary %s: %w", celebrityID.String(), err)
	}
	return &s, nil
}
