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

type BookingTypeRepository interface {
	Create(ctx context.Context, bt *entity.BookingType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingType, error)
	FindByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]*entity.BookingType, error)
	Delete(ctx context.Context, celebrityID, id uuid.UUID) error
}

type bookingTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingTypeRepository(db database.PgxIface, log *zap.Logger) BookingTypeRepository {
	return &bookingTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_type")),
	}
}

func scanBookingType(row pgx.Row) (*entity.BookingType, error) {
	var bt entity.BookingType
	err := row.Scan(
		&bt.ID,
		&bt.CelebrityID,
		&bt.Name,
		&bt.Description,
		&bt.Price,
		&bt.DurationMinutes,
		&bt.IsActive,
		&bt.CreatedAt,
		&bt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bt, nil
}

func (r *bookingTypeRepository) Create(ctx context.Context, bt *entity.BookingType) error {
	query := `
		INSERT INTO celebrity_booking_types (id, celebrity_id, name, description, price,
		                                     duration_minutes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		bt.ID,
		bt.CelebrityID,
		bt.Name,
		bt.Description,
		bt.Price,
		bt.DurationMinutes,
		bt.IsActive,
		bt.CreatedAt,
		bt.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking type",
			zap.Error(err),
			zap.String("celebrity_id", bt.CelebrityID.String()),
		)
		return fmt.Errorf("create booking type %s: %w", bt.Name, err)
	}
	return nil
}

func (r *bookingTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingType, error) {
	query := `
		SELECT id, celebrity_id, name, description, price, duration_minutes, is_active, created_at, updated_at
		FROM celebrity_booking_types
		WHERE id = $1
	`

	bt, err := scanBookingType(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking type", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find booking type %s: %w", id.String(), err)
	}
	return bt, nil
}

func (r *bookingTypeRepository) FindByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]*entity.BookingType, error) {
	query := `
		SELECT id, celebrity_id, name, description, price, duration_minutes, is_active, created_at, updated_at
		FROM celebrity_booking_types
		WHERE celebrity_id = $1
		ORDER BY price ASC
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, celebrityID)
	if err != nil {
		r.log.Error("Failed to list booking types", zap.Error(err))
		return nil, fmt.Errorf("list booking types: %w", err)
	}
	defer rows.Close()

	var types []*entity.BookingType
	for rows.Next() {
		bt, err := scanBookingType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking type row: %w", err)
		}
		types = append(types, bt)
	}
	return types, rows.Err()
}

func (r *bookingTypeRepository) Delete(ctx context.Context, celebrityID, id uuid.UUID) error {
	// booking types referenced by bookings are deactivated instead of removed
	query := `UPDATE celebrity_booking_types SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND celebrity_id = $2`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, celebrityID)
	if err != nil {
		r.log.Error("Failed to delete booking type", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete booking type %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking type %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
