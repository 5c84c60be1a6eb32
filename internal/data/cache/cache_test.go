package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGuard_AcquireCooldown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	guard := NewOTPGuard(db, time.Minute, 10*time.Minute)
	ctx := context.Background()

	mock.ExpectSetNX("otp:cooldown:email_verification:fan@example.com", 1, time.Minute).SetVal(true)
	mock.ExpectSetNX("otp:cooldown:email_verification:fan@example.com", 1, time.Minute).SetVal(false)

	ok, err := guard.AcquireCooldown(ctx, "Fan@Example.com", entity.OTPTypeEmailVerification)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.AcquireCooldown(ctx, "fan@example.com", entity.OTPTypeEmailVerification)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPGuard_RegisterFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	guard := NewOTPGuard(db, time.Minute, 10*time.Minute)
	ctx := context.Background()
	key := "otp:attempts:password_reset:fan@example.com"

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, 10*time.Minute).SetVal(true)
	mock.ExpectIncr(key).SetVal(2)

	n, err := guard.RegisterFailure(ctx, "fan@example.com", entity.OTPTypePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = guard.RegisterFailure(ctx, "fan@example.com", entity.OTPTypePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, guard.Reset(ctx, "fan@example.com", entity.OTPTypePasswordReset))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPGuard_RedisDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	guard := NewOTPGuard(db, time.Minute, time.Minute)

	mock.ExpectSetNX("otp:cooldown:email_verification:a@b.c", 1, time.Minute).SetErr(errors.New("connection refused"))

	_, err := guard.AcquireCooldown(context.Background(), "a@b.c", entity.OTPTypeEmailVerification)
	assert.Error(t, err)
}

func TestSettingsCache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSettingsCache(db, 5*time.Minute)
	ctx := context.Background()

	mock.ExpectGet(platformKey).RedisNil()
	p, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	settings := entity.DefaultPlatform()
	settings.MinDeposit = decimal.NewFromInt(25)
	raw, err := json.Marshal(settings)
	require.NoError(t, err)

	mock.ExpectSet(platformKey, raw, 5*time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, settings))

	mock.ExpectGet(platformKey).SetVal(string(raw))
	p, err = c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.MinDeposit.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, settings.SiteName, p.SiteName)

	mock.ExpectDel(platformKey).SetVal(1)
	require.NoError(t, c.Invalidate(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsCache_FillDoesNotOverwrite(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSettingsCache(db, 5*time.Minute)

	stale := entity.DefaultPlatform()
	raw, err := json.Marshal(stale)
	require.NoError(t, err)

	mock.ExpectSetNX(platformKey, raw, 5*time.Minute).SetVal(false)
	require.NoError(t, c.Fill(context.Background(), stale))

	assert.NoError(t, mock.ExpectationsWereMet())
}
