package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"celebrity-booking/internal/data/repository"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestJanitorSweep_ContinuesAfterFailure(t *testing.T) {
	otps := &MockOTPRepo{}
	sessions := &MockSessionRepo{}
	memberships := &MockMembershipRepo{}
	ctx := context.Background()

	otps.On("DeleteStale", ctx).Return(int64(0), errors.New("db down"))
	sessions.On("CleanExpiredSessions", ctx).Return(int64(4), nil)
	memberships.On("ExpireDue", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)

	j := NewJanitor(&repository.Repository{OTP: otps, Session: sessions, Membership: memberships}, time.Minute, zap.NewNop())
	j.Sweep(ctx)

	otps.AssertExpectations(t)
	sessions.AssertExpectations(t)
	memberships.AssertExpectations(t)
}

func TestJanitorRun_StopsOnCancel(t *testing.T) {
	otps := &MockOTPRepo{}
	sessions := &MockSessionRepo{}
	memberships := &MockMembershipRepo{}

	otps.On("DeleteStale", mock.Anything).Return(int64(0), nil)
	sessions.On("CleanExpiredSessions", mock.Anything).Return(int64(0), nil)
	memberships.On("ExpireDue", mock.Anything, mock.Anything).Return(int64(0), nil)

	j := NewJanitor(&repository.Repository{OTP: otps, Session: sessions, Membership: memberships}, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
