package usecase

import (
	"context"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

const sideEffectTimeout = 5 * time.Second

type AuditService interface {
	// Record never fails the caller; write errors are only logged.
	Record(ctx context.Context, action entity.AuditAction, entityName, entityID string, changes map[string]any)
	List(ctx context.Context, req *request.AuditListRequest) (*response.PaginatedResponse[response.AuditResponse], error)
}

type auditService struct {
	repo repository.AuditRepository
	log  *zap.Logger
}

func NewAuditService(repo repository.AuditRepository, log *zap.Logger) AuditService {
	return &auditService{
		repo: repo,
		log:  log.With(zap.String("service", "audit")),
	}
}

func (s *auditService) Record(ctx context.Context, action entity.AuditAction, entityName, entityID string, changes map[string]any) {
	audit := &entity.Audit{
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Changes:   changes,
		IP:        utils.GetClientIPFromContext(ctx),
		CreatedAt: time.Now(),
	}
	if actor, ok := utils.GetUserIDFromContext(ctx); ok {
		audit.ActorID = actor.String()
	}

	// the request may already be finished when this runs
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.repo.Create(writeCtx, audit); err != nil {
		s.log.Error("Failed to write audit entry",
			zap.Error(err),
			zap.String("action", string(action)),
			zap.String("entity", entityName),
			zap.String("entity_id", entityID),
		)
	}
}

func (s *auditService) List(ctx context.Context, req *request.AuditListRequest) (*response.PaginatedResponse[response.AuditResponse], error) {
	f := entity.AuditFilter{Entity: req.Entity, Action: req.Action, ActorID: req.ActorID}

	audits, err := s.repo.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list audits", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list audit entries")
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count audits", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list audit entries")
	}

	return paginate(audits, response.AuditToResponse, req.PaginatedRequest, total), nil
}
