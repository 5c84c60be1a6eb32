package usecase

import (
	"context"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo repository.StatsRepository
	log  *zap.Logger
}

func NewStatsService(repo repository.StatsRepository, log *zap.Logger) StatsService {
	return &statsService{repo: repo, log: log.With(zap.String("service", "stats"))}
}

func (s *statsService) Dashboard(ctx context.Context) (*response.StatsResponse, error) {
	stats, err := s.repo.Dashboard(ctx)
	if err != nil {
		s.log.Error("Failed to load dashboard stats", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to load statistics")
	}
	resp := response.StatsToResponse(stats)
	return &resp, nil
}
