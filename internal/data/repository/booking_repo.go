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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status *string) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

const bookingColumns = `id, reference, user_id, celebrity_id, booking_type_id, event_id, quantity,
		       scheduled_at, location, message, amount, status, payment_status, admin_note,
		       created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.CelebrityID,
		&b.BookingTypeID,
		&b.EventID,
		&b.Quantity,
		&b.ScheduledAt,
		&b.Location,
		&b.Message,
		&b.Amount,
		&b.Status,
		&b.PaymentStatus,
		&b.AdminNote,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, user_id, celebrity_id, booking_type_id, event_id, quantity,
		                      scheduled_at, location, message, amount, status, payment_status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		b.ID,
		b.Reference,
		b.UserID,
		b.CelebrityID,
		b.BookingTypeID,
		b.EventID,
		b.Quantity,
		b.ScheduledAt,
		b.Location,
		b.Message,
		b.Amount,
		b.Status,
		b.PaymentStatus,
		b.CreatedAt,
		b.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", b.Reference),
			zap.String("user_id", b.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", b.Reference, err)
	}

	return nil
}

func (r *bookingRepository) findByID(ctx context.Context, id uuid.UUID, lock bool) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	b, err := scanBooking(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find booking %s: %w", id.String(), err)
	}
	return b, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findByID(ctx, id, false)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findByID(ctx, id, true)
}

func (r *bookingRepository) list(ctx context.Context, fb *filter, limit, offset int) ([]*entity.Booking, error) {
	suffix, args := fb.page(limit, offset)
	query := `SELECT ` + bookingColumns + ` FROM bookings` + fb.where() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) count(ctx context.Context, fb *filter) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.list(ctx, fb, limit, offset)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.count(ctx, fb)
}

func statusFilter(status *string) *filter {
	fb := newFilter()
	if status != nil && *status != "" {
		fb.add("status = ?", *status)
	}
	return fb
}

func (r *bookingRepository) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Booking, error) {
	return r.list(ctx, statusFilter(status), limit, offset)
}

func (r *bookingRepository) Count(ctx context.Context, status *string) (int64, error) {
	return r.count(ctx, statusFilter(status))
}

func (r *bookingRepository) Update(ctx context.Context, b *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, payment_status = $3, admin_note = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		b.ID,
		b.Status,
		b.PaymentStatus,
		b.AdminNote,
		b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking", zap.Error(err), zap.String("id", b.ID.String()))
		return fmt.Errorf("update booking %s: %w", b.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", b.ID.String(), ErrNotFound)
	}
	return nil
}
