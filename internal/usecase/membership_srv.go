package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MembershipService interface {
	ListPlans(ctx context.Context, activeOnly bool) ([]response.MembershipPlanResponse, error)
	CreatePlan(ctx context.Context, req *request.MembershipPlanRequest) (*response.MembershipPlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req *request.MembershipPlanRequest) (*response.MembershipPlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error

	Subscribe(ctx context.Context, userID uuid.UUID, req *request.CreateMembershipRequest) (*response.MembershipResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]response.MembershipResponse, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) (*response.MembershipResponse, error)

	// Admin
	AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.MembershipResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateMembershipStatusRequest) (*response.MembershipResponse, error)
}

type membershipService struct {
	repo   *repository.Repository
	tx     database.TxManager
	ledger ledger
	notify NotificationService
	audit  AuditService
	log    *zap.Logger
}

func NewMembershipService(repo *repository.Repository, tx database.TxManager, notify NotificationService, audit AuditService, log *zap.Logger) MembershipService {
	return &membershipService{
		repo:   repo,
		tx:     tx,
		ledger: newLedger(repo),
		notify: notify,
		audit:  audit,
		log:    log.With(zap.String("service", "membership")),
	}
}

// ==================== PLANS ====================

func (s *membershipService) ListPlans(ctx context.Context, activeOnly bool) ([]response.MembershipPlanResponse, error) {
	plans, err := s.repo.MembershipPlan.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list plans", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list membership plans")
	}

	out := make([]response.MembershipPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, response.MembershipPlanToResponse(p))
	}
	return out, nil
}

func (s *membershipService) CreatePlan(ctx context.Context, req *request.MembershipPlanRequest) (*response.MembershipPlanResponse, error) {
	plan := &entity.MembershipPlan{Base: entity.NewBase()}
	applyPlan(plan, req)

	if err := s.repo.MembershipPlan.Create(ctx, plan); err != nil {
		s.log.Error("Failed to create plan", zap.Error(err), zap.String("name", plan.Name))
		return nil, utils.ErrInternal(err, "failed to create membership plan")
	}

	s.audit.Record(ctx, entity.AuditActionCreate, "membership_plan", plan.ID.String(), map[string]any{
		"name":          plan.Name,
		"price":         plan.Price.String(),
		"duration_days": plan.DurationDays,
	})
	resp := response.MembershipPlanToResponse(plan)
	return &resp, nil
}

func (s *membershipService) UpdatePlan(ctx context.Context, id uuid.UUID, req *request.MembershipPlanRequest) (*response.MembershipPlanResponse, error) {
	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPlan(plan, req)
	plan.UpdatedAt = time.Now()

	if err := s.repo.MembershipPlan.Update(ctx, plan); err != nil {
		s.log.Error("Failed to update plan", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "membership plan not found")
	}

	s.audit.Record(ctx, entity.AuditActionUpdate, "membership_plan", id.String(), map[string]any{
		"name":      plan.Name,
		"price":     plan.Price.String(),
		"is_active": plan.IsActive,
	})
	resp := response.MembershipPlanToResponse(plan)
	return &resp, nil
}

func (s *membershipService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MembershipPlan.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete plan", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "membership plan not found")
	}
	s.audit.Record(ctx, entity.AuditActionDelete, "membership_plan", id.String(), nil)
	return nil
}

// ==================== MEMBERSHIPS ====================

// Subscribe opens a membership. Wallet payments (and free plans) activate it
// immediately; anything else waits for an admin.
func (s *membershipService) Subscribe(ctx context.Context, userID uuid.UUID, req *request.CreateMembershipRequest) (*response.MembershipResponse, error) {
	planID, err := parseID(req.PlanID, "plan")
	if err != nil {
		return nil, err
	}
	methodID, err := parseOptionalID(req.PaymentMethodID, "payment method")
	if err != nil {
		return nil, err
	}

	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, utils.ErrBadRequest("membership plan is not available")
	}

	if methodID != nil {
		if err := requireActiveMethod(ctx, s.repo.PaymentMethod, *methodID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	membership := &entity.Membership{
		BaseNoDelete:    entity.NewBaseNoDelete(),
		UserID:          userID,
		PlanID:          planID,
		Status:          entity.MembershipStatusPending,
		Amount:          plan.Price,
		PaymentMethodID: methodID,
	}
	payNow := req.PayWithWallet || plan.Price.IsZero()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		open, err := s.repo.Membership.FindOpenByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if open != nil {
			return utils.ErrConflict("you already have a %s membership", open.Status)
		}

		if payNow {
			if plan.Price.IsPositive() {
				if _, err := s.ledger.post(ctx, userID, entity.TransactionTypeMembership, entity.DirectionDebit,
					plan.Price, membership.ID.String(), "Membership: "+plan.Name); err != nil {
					return err
				}
			}
			membership.Activate(now, plan.DurationDays)
		}
		return s.repo.Membership.Create(ctx, membership)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("you already have an open membership")
		}
		return nil, appOrInternal(s.log, err, "failed to create membership", zap.String("user_id", userID.String()))
	}

	s.log.Info("Membership created",
		zap.String("membership_id", membership.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(membership.Status)),
	)
	s.notify.Notify(ctx, userID, entity.NotificationMembership,
		"Membership "+string(membership.Status),
		fmt.Sprintf("Your %s membership is %s.", plan.Name, membership.Status),
		"/memberships")

	resp := response.MembershipToResponse(membership)
	planResp := response.MembershipPlanToResponse(plan)
	resp.Plan = &planResp
	return &resp, nil
}

func (s *membershipService) ListMine(ctx context.Context, userID uuid.UUID) ([]response.MembershipResponse, error) {
	memberships, err := s.repo.Membership.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list memberships", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list memberships")
	}

	out := make([]response.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, response.MembershipToResponse(m))
	}
	return out, nil
}

func (s *membershipService) Cancel(ctx context.Context, userID, id uuid.UUID) (*response.MembershipResponse, error) {
	var membership *entity.Membership
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		membership, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if membership.UserID != userID {
			return utils.ErrForbidden("you do not have access to this membership")
		}
		if !membership.Status.CanTransitionTo(entity.MembershipStatusCancelled) {
			return utils.ErrBadRequest("a %s membership cannot be cancelled", membership.Status)
		}

		membership.Status = entity.MembershipStatusCancelled
		membership.UpdatedAt = time.Now()
		return s.repo.Membership.Update(ctx, membership)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.ErrNotFound("membership not found")
	}
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to cancel membership", zap.String("id", id.String()))
	}

	resp := response.MembershipToResponse(membership)
	return &resp, nil
}

func (s *membershipService) AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.MembershipResponse], error) {
	memberships, err := s.repo.Membership.FindAll(ctx, req.Status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list memberships", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list memberships")
	}

	total, err := s.repo.Membership.Count(ctx, req.Status)
	if err != nil {
		s.log.Error("Failed to count memberships", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list memberships")
	}

	return paginate(memberships, response.MembershipToResponse, req.PaginatedRequest, total), nil
}

func (s *membershipService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateMembershipStatusRequest) (*response.MembershipResponse, error) {
	next := entity.MembershipStatus(req.Status)

	var membership *entity.Membership
	var prev entity.MembershipStatus
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		membership, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		prev = membership.Status
		if !prev.CanTransitionTo(next) {
			return utils.ErrBadRequest("cannot change membership status from %s to %s", prev, next)
		}

		if next == entity.MembershipStatusActive {
			plan, err := s.findPlan(ctx, membership.PlanID)
			if err != nil {
				return err
			}
			membership.Activate(time.Now(), plan.DurationDays)
		} else {
			membership.Status = next
			membership.UpdatedAt = time.Now()
		}
		return s.repo.Membership.Update(ctx, membership)
	})
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, utils.ErrConflict("user already has an open membership")
	case errors.Is(err, repository.ErrNotFound):
		return nil, utils.ErrNotFound("membership not found")
	case err != nil:
		return nil, appOrInternal(s.log, err, "failed to update membership", zap.String("id", id.String()))
	}

	s.audit.Record(ctx, entity.AuditActionStatusChange, "membership", id.String(), map[string]any{
		"from": string(prev),
		"to":   string(next),
	})
	s.notify.Notify(ctx, membership.UserID, entity.NotificationMembership,
		"Membership "+string(next),
		fmt.Sprintf("Your membership is now %s.", next),
		"/memberships")

	resp := response.MembershipToResponse(membership)
	return &resp, nil
}

// lock loads the membership under FOR UPDATE; callers run inside a transaction.
func (s *membershipService) lock(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	membership, err := s.repo.Membership.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, utils.ErrNotFound("membership not found")
	}
	return membership, nil
}

func (s *membershipService) findPlan(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	plan, err := s.repo.MembershipPlan.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find plan", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load membership plan")
	}
	if plan == nil {
		return nil, utils.ErrNotFound("membership plan not found")
	}
	return plan, nil
}

func applyPlan(plan *entity.MembershipPlan, req *request.MembershipPlanRequest) {
	plan.Name = req.Name
	plan.Description = req.Description
	plan.Price = req.Price
	plan.DurationDays = req.DurationDays
	plan.Benefits = req.Benefits
	if plan.Benefits == nil {
		plan.Benefits = []string{}
	}
	plan.IsActive = req.IsActive == nil || *req.IsActive
}

// requireActiveMethod fails unless id names an active payment method.
func requireActiveMethod(ctx context.Context, methods repository.PaymentMethodRepository, id uuid.UUID) error {
	_, err := activeMethod(ctx, methods, id)
	return err
}

func activeMethod(ctx context.Context, methods repository.PaymentMethodRepository, id uuid.UUID) (*entity.PaymentMethod, error) {
	pm, err := methods.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if pm == nil || !pm.IsActive {
		return nil, utils.ErrBadRequest("payment method is not available")
	}
	return pm, nil
}
