package usecase

import (
	"context"
	"strings"
	"time"

	"celebrity-booking/internal/data/cache"
	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type PlatformService interface {
	Get(ctx context.Context) (*entity.Platform, error)
	Update(ctx context.Context, req *request.UpdatePlatformRequest) (*entity.Platform, error)
}

type platformService struct {
	repo  repository.PlatformRepository
	cache cache.SettingsCache
	tx    database.TxManager
	audit AuditService
	log   *zap.Logger
}

func NewPlatformService(repo repository.PlatformRepository, settings cache.SettingsCache, tx database.TxManager, audit AuditService, log *zap.Logger) PlatformService {
	return &platformService{
		repo:  repo,
		cache: settings,
		tx:    tx,
		audit: audit,
		log:   log.With(zap.String("service", "platform")),
	}
}

// Get reads through the cache. A missing row yields the defaults.
func (s *platformService) Get(ctx context.Context) (*entity.Platform, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("Platform cache unavailable", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	p, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("Failed to load platform settings", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to load platform settings")
	}
	if p == nil {
		p = entity.DefaultPlatform()
	}

	if err := s.cache.Fill(ctx, p); err != nil {
		s.log.Warn("Failed to cache platform settings", zap.Error(err))
	}
	return p, nil
}

func (s *platformService) Update(ctx context.Context, req *request.UpdatePlatformRequest) (*entity.Platform, error) {
	p := &entity.Platform{
		SiteName:          req.SiteName,
		SupportEmail:      req.SupportEmail,
		Currency:          strings.ToUpper(req.Currency),
		MinDeposit:        req.MinDeposit,
		BookingFeePercent: req.BookingFeePercent,
		MaintenanceMode:   req.MaintenanceMode,
		SocialLinks:       req.SocialLinks,
		UpdatedAt:         time.Now(),
	}
	if p.SocialLinks == nil {
		p.SocialLinks = map[string]string{}
	}
	if actor, ok := utils.GetUserIDFromContext(ctx); ok {
		p.UpdatedBy = &actor
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Upsert(ctx, p)
	})
	if err != nil {
		s.log.Error("Failed to update platform settings", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to update platform settings")
	}

	// Overwrite rather than delete: a concurrent Get only fills an empty key.
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.Warn("Failed to refresh platform cache", zap.Error(err))
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("Failed to invalidate platform cache", zap.Error(err))
		}
	}

	s.audit.Record(ctx, entity.AuditActionSettingsUpdate, "platform", "1", map[string]any{
		"site_name":           p.SiteName,
		"currency":            p.Currency,
		"min_deposit":         p.MinDeposit.String(),
		"booking_fee_percent": p.BookingFeePercent.String(),
		"maintenance_mode":    p.MaintenanceMode,
	})
	s.log.Info("Platform settings updated", zap.String("currency", p.Currency))
	return p, nil
}
