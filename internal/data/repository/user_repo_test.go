package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userCols = []string{"id", "username", "email", "password", "phone", "full_name", "avatar_url", "role",
	"email_verified", "is_active", "balance", "created_at", "updated_at", "deleted_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	now := time.Now()
	phone := "+15550100"

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(
			id, "adele", "adele@example.com", "hash", &phone, (*string)(nil), (*string)(nil), entity.RoleCustomer,
			true, true, decimal.NewFromInt(50), now, now, (*time.Time)(nil),
		))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "adele", user.Username)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, phone, *user.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\)").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), " nobody@example.com ")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user := &entity.User{Base: entity.NewBase(), Username: "adele", Email: "adele@example.com", Role: entity.RoleCustomer}
	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_AdjustBalance(t *testing.T) {
	id := uuid.New()

	t.Run("credit", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock, zap.NewNop())

		mock.ExpectQuery("UPDATE users").
			WithArgs(id, decimal.NewFromInt(25)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.NewFromInt(125)))

		balance, err := repo.AdjustBalance(context.Background(), id, decimal.NewFromInt(25))
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(125)))
	})

	t.Run("overdraw", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock, zap.NewNop())

		mock.ExpectQuery("UPDATE users").
			WithArgs(id, decimal.NewFromInt(-500)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.AdjustBalance(context.Background(), id, decimal.NewFromInt(-500))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("driver error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepository(mock, zap.NewNop())

		mock.ExpectQuery("UPDATE users").WillReturnError(errors.New("conn reset"))

		_, err := repo.AdjustBalance(context.Background(), id, decimal.NewFromInt(1))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectExec("UPDATE users SET deleted_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Delete(context.Background(), id)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll_WithSearch(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	search := "ade"
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE deleted_at IS NULL AND \\(username ILIKE \\$1 OR email ILIKE \\$1\\)").
		WithArgs("%ade%", 10, 0).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(uuid.New(), "adele", "adele@example.com", "hash", (*string)(nil), (*string)(nil), (*string)(nil),
				entity.RoleAdmin, true, true, decimal.Zero, now, now, (*time.Time)(nil)))

	users, err := repo.FindAll(context.Background(), entity.UserFilter{Search: &search}, 10, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}
