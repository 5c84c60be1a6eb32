package usecase

import (
	"context"
	"errors"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentMethodService interface {
	List(ctx context.Context, activeOnly bool) ([]response.PaymentMethodResponse, error)
	Create(ctx context.Context, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentMethodService struct {
	repo  repository.PaymentMethodRepository
	audit AuditService
	log   *zap.Logger
}

func NewPaymentMethodService(repo repository.PaymentMethodRepository, audit AuditService, log *zap.Logger) PaymentMethodService {
	return &paymentMethodService{
		repo:  repo,
		audit: audit,
		log:   log.With(zap.String("service", "payment_method")),
	}
}

func (s *paymentMethodService) List(ctx context.Context, activeOnly bool) ([]response.PaymentMethodResponse, error) {
	methods, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list payment methods", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list payment methods")
	}

	out := make([]response.PaymentMethodResponse, 0, len(methods))
	for _, pm := range methods {
		out = append(out, response.PaymentMethodToResponse(pm))
	}
	return out, nil
}

func (s *paymentMethodService) Create(ctx context.Context, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	pm := &entity.PaymentMethod{Base: entity.NewBase()}
	applyPaymentMethod(pm, req)

	if err := s.repo.Create(ctx, pm); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("payment method %q already exists", pm.Name)
		}
		s.log.Error("Failed to create payment method", zap.Error(err), zap.String("name", pm.Name))
		return nil, utils.ErrInternal(err, "failed to create payment method")
	}

	s.audit.Record(ctx, entity.AuditActionCreate, "payment_method", pm.ID.String(), map[string]any{
		"name": pm.Name,
		"type": string(pm.Type),
	})
	resp := response.PaymentMethodToResponse(pm)
	return &resp, nil
}

func (s *paymentMethodService) Update(ctx context.Context, id uuid.UUID, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	pm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find payment method", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to update payment method")
	}
	if pm == nil {
		return nil, utils.ErrNotFound("payment method not found")
	}

	applyPaymentMethod(pm, req)
	if err := s.repo.Update(ctx, pm); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("payment method %q already exists", pm.Name)
		}
		s.log.Error("Failed to update payment method", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "payment method not found")
	}

	s.audit.Record(ctx, entity.AuditActionUpdate, "payment_method", id.String(), map[string]any{
		"name":      pm.Name,
		"type":      string(pm.Type),
		"is_active": pm.IsActive,
	})
	resp := response.PaymentMethodToResponse(pm)
	return &resp, nil
}

func (s *paymentMethodService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete payment method", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "payment method not found")
	}
	s.audit.Record(ctx, entity.AuditActionDelete, "payment_method", id.String(), nil)
	return nil
}

func applyPaymentMethod(pm *entity.PaymentMethod, req *request.PaymentMethodRequest) {
	pm.Name = req.Name
	pm.Type = entity.PaymentMethodType(req.Type)
	pm.Instructions = req.Instructions
	pm.Details = req.Details
	if pm.Details == nil {
		pm.Details = map[string]any{}
	}
	pm.IsActive = req.IsActive == nil || *req.IsActive
}
