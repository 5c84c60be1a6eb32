package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

// OTPGuard throttles OTP resends and counts failed verification attempts.
type OTPGuard interface {
	AcquireCooldown(ctx context.Context, email string, otpType entity.OTPType) (bool, error)
	RegisterFailure(ctx context.Context, email string, otpType entity.OTPType) (int64, error)
	Reset(ctx context.Context, email string, otpType entity.OTPType) error
}

type otpGuard struct {
	rdb         redis.Cmdable
	cooldown    time.Duration
	attemptsTTL time.Duration
}

func NewOTPGuard(rdb redis.Cmdable, cooldown, attemptsTTL time.Duration) OTPGuard {
	return &otpGuard{rdb: rdb, cooldown: cooldown, attemptsTTL: attemptsTTL}
}

func cooldownKey(email string, t entity.OTPType) string {
	return fmt.Sprintf("otp:cooldown:%s:%s", t, strings.ToLower(email))
}

func attemptsKey(email string, t entity.OTPType) string {
	return fmt.Sprintf("otp:attempts:%s:%s", t, strings.ToLower(email))
}

// AcquireCooldown returns false while a previous code is still cooling down.
func (g *otpGuard) AcquireCooldown(ctx context.Context, email string, otpType entity.OTPType) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, cooldownKey(email, otpType), 1, g.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("otp cooldown: %w", err)
	}
	return ok, nil
}

// RegisterFailure increments the failure counter and returns the new count.
func (g *otpGuard) RegisterFailure(ctx context.Context, email string, otpType entity.OTPType) (int64, error) {
	key := attemptsKey(email, otpType)
	n, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("otp attempts: %w", err)
	}
	if n == 1 {
		if err := g.rdb.Expire(ctx, key, g.attemptsTTL).Err(); err != nil {
			return n, fmt.Errorf("otp attempts ttl: %w", err)
		}
	}
	return n, nil
}

func (g *otpGuard) Reset(ctx context.Context, email string, otpType entity.OTPType) error {
	if err := g.rdb.Del(ctx, attemptsKey(email, otpType)).Err(); err != nil {
		return fmt.Errorf("otp attempts reset: %w", err)
	}
	return nil
}
