package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context, f entity.UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, f entity.UserFilter) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const userColumns = `id, username, email, password, phone, full_name, avatar_url, role,
		       email_verified, is_active, balance, created_at, updated_at, deleted_at`

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.FullName,
		&user.AvatarURL,
		&user.Role,
		&user.EmailVerified,
		&user.IsActive,
		&user.Balance,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, phone, full_name, avatar_url, role,
		                   email_verified, is_active, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := database.Conn(ctx, ur.db).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.FullName,
		user.AvatarURL,
		user.Role,
		user.EmailVerified,
		user.IsActive,
		user.Balance,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` AND deleted_at IS NULL`

	// QueryRow returns at most one row
	user, err := scanUser(database.Conn(ctx, ur.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user", zap.Error(err), zap.String("where", where))
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id = $1", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "LOWER(email) = LOWER($1)", strings.TrimSpace(email))
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, "LOWER(username) = LOWER($1)", strings.TrimSpace(username))
}

func userFilter(f entity.UserFilter) *filter {
	fb := newFilter("deleted_at IS NULL")
	if f.Search != nil && *f.Search != "" {
		fb.add("(username ILIKE ? OR email ILIKE ?)", "%"+*f.Search+"%")
	}
	if f.Role != nil && *f.Role != "" {
		fb.add("role = ?", *f.Role)
	}
	return fb
}

// FindAll retrieves paginated list of users
func (ur *userRepository) FindAll(ctx context.Context, f entity.UserFilter, limit, offset int) ([]*entity.User, error) {
	fb := userFilter(f)
	suffix, args := fb.page(limit, offset)
	query := `SELECT ` + userColumns + ` FROM users` + fb.where() + ` ORDER BY created_at DESC` + suffix

	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) Count(ctx context.Context, f entity.UserFilter) (int64, error) {
	fb := userFilter(f)
	query := `SELECT COUNT(*) FROM users` + fb.where()

	var count int64
	if err := ur.db.QueryRow(ctx, query, fb.args...).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, phone = $3, full_name = $4, avatar_url = $5,
		    role = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := database.Conn(ctx, ur.db).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Phone,
		user.FullName,
		user.AvatarURL,
		user.Role,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID.String(), ErrNotFound)
	}

	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	if _, err := database.Conn(ctx, ur.db).Exec(ctx, query, id, hash); err != nil {
		ur.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("update password %s: %w", id.String(), err)
	}
	return nil
}

func (ur *userRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`

	if _, err := database.Conn(ctx, ur.db).Exec(ctx, query, id); err != nil {
		ur.log.Error("Failed to verify email", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("verify email %s: %w", id.String(), err)
	}
	return nil
}

// AdjustBalance adds delta (negative to debit) and returns the new balance.
// The balance never goes below zero: a debit that would overdraw returns
// ErrInsufficientBalance and changes nothing.
func (ur *userRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND balance + $2 >= 0
		RETURNING balance
	`

	var balance decimal.Decimal
	err := database.Conn(ctx, ur.db).QueryRow(ctx, query, id, delta).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, ErrInsufficientBalance
	}
	if err != nil {
		ur.log.Error("Failed to adjust balance",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.String("delta", delta.String()),
		)
		return decimal.Zero, fmt.Errorf("adjust balance %s: %w", id.String(), err)
	}

	return balance, nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = NOW(), is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`

	result, err := database.Conn(ctx, ur.db).Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id.String(), ErrNotFound)
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}
