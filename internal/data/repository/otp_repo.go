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

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	FindValidOTP(ctx context.Context, email, otpCode string, otpType entity.OTPType) (*entity.OTP, error)
	MarkAsUsed(ctx context.Context, otpID uuid.UUID) error
	InvalidateAll(ctx context.Context, email string, otpType entity.OTPType) error
	DeleteStale(ctx context.Context) (int64, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO otps (id, user_id, email, otp_code, otp_type, expires_at, is_used, created_at)
		VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8)`,
		otp.ID, otp.UserID, otp.Email, otp.OTPCode, otp.OTPType,
		otp.ExpiresAt, otp.IsUsed, otp.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create OTP", zap.Error(err),
			zap.String("email", otp.Email), zap.String("otp_type", string(otp.OTPType)))
		return fmt.Errorf("create OTP for %s: %w", otp.Email, err)
	}
	return nil
}

// FindValidOTP only matches the newest live code of the type.
func (r *otpRepository) FindValidOTP(ctx context.Context, email, otpCode string, otpType entity.OTPType) (*entity.OTP, error) {
	var o entity.OTP
	err := database.Conn(ctx, r.db).QueryRow(ctx, `
		SELECT id, user_id, email, otp_code, otp_type, expires_at, is_used, created_at
		FROM otps
		WHERE email = LOWER($1) AND otp_code = $2 AND otp_type = $3
		  AND NOT is_used AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1`, email, otpCode, otpType,
	).Scan(&o.ID, &o.UserID, &o.Email, &o.OTPCode, &o.OTPType, &o.ExpiresAt, &o.IsUsed, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}
	return &o, nil
}

// MarkAsUsed reports ErrNotFound when another request consumed the code first.
func (r *otpRepository) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	tag, err := database.Conn(ctx, r.db).Exec(ctx,
		`UPDATE otps SET is_used = true WHERE id = $1 AND NOT is_used`, otpID)
	if err != nil {
		r.log.Error("Failed to mark OTP as used", zap.Error(err), zap.Stringer("otp_id", otpID))
		return fmt.Errorf("mark OTP %s as used: %w", otpID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("otp %s: %w", otpID, ErrNotFound)
	}
	return nil
}

func (r *otpRepository) InvalidateAll(ctx context.Context, email string, otpType entity.OTPType) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx,
		`UPDATE otps SET is_used = true WHERE email = LOWER($1) AND otp_type = $2 AND NOT is_used`,
		email, otpType)
	if err != nil {
		r.log.Error("Failed to invalidate OTPs", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("invalidate OTPs for %s: %w", email, err)
	}
	return nil
}

func (r *otpRepository) DeleteStale(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM otps WHERE is_used OR expires_at < NOW()`)
	if err != nil {
		r.log.Error("Failed to delete stale OTPs", zap.Error(err))
		return 0, fmt.Errorf("delete stale OTPs: %w", err)
	}
	return tag.RowsAffected(), nil
}
