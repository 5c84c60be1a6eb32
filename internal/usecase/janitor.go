package usecase

import (
	"context"
	"time"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/pkg/metrics"

	"go.uber.org/zap"
)

// Janitor periodically removes stale OTPs and sessions and expires lapsed
// memberships.
type Janitor struct {
	repo     *repository.Repository
	interval time.Duration
	log      *zap.Logger
}

func NewJanitor(repo *repository.Repository, interval time.Duration, log *zap.Logger) *Janitor {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Janitor{
		repo:     repo,
		interval: interval,
		log:      log.With(zap.String("worker", "janitor")),
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	j.log.Info("Janitor started", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			j.log.Info("Janitor stopped")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs every cleanup step. A failing step does not stop the others.
func (j *Janitor) Sweep(ctx context.Context) {
	steps := []struct {
		kind string
		run  func(context.Context) (int64, error)
	}{
		{"otps", j.repo.OTP.DeleteStale},
		{"sessions", j.repo.Session.CleanExpiredSessions},
		{"memberships", func(ctx context.Context) (int64, error) {
			return j.repo.Membership.ExpireDue(ctx, time.Now())
		}},
	}

	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			j.log.Error("Janitor step failed", zap.String("kind", step.kind), zap.Error(err))
			continue
		}
		if n > 0 {
			metrics.JanitorRemoved.WithLabelValues(step.kind).Add(float64(n))
			j.log.Info("Janitor cleaned up", zap.String("kind", step.kind), zap.Int64("rows", n))
		}
	}
}
