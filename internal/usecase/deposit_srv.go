package usecase

import (
	"context"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/metrics"
	"celebrity-booking/pkg/payment"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DepositService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateDepositRequest) (*response.DepositResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.DepositResponse], error)

	// Admin
	AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.DepositResponse], error)
	Review(ctx context.Context, id uuid.UUID, req *request.ReviewDepositRequest) (*response.DepositResponse, error)
}

type depositService struct {
	repo     *repository.Repository
	tx       database.TxManager
	ledger   ledger
	gateway  payment.Gateway
	platform PlatformService
	notify   NotificationService
	audit    AuditService
	log      *zap.Logger
}

func NewDepositService(
	repo *repository.Repository,
	tx database.TxManager,
	gateway payment.Gateway,
	platform PlatformService,
	notify NotificationService,
	audit AuditService,
	log *zap.Logger,
) DepositService {
	return &depositService{
		repo:     repo,
		tx:       tx,
		ledger:   newLedger(repo),
		gateway:  gateway,
		platform: platform,
		notify:   notify,
		audit:    audit,
		log:      log.With(zap.String("service", "deposit")),
	}
}

func (s *depositService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateDepositRequest) (*response.DepositResponse, error) {
	methodID, err := parseID(req.PaymentMethodID, "payment method")
	if err != nil {
		return nil, err
	}

	settings, err := s.platform.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThan(settings.MinDeposit) {
		return nil, utils.ErrBadRequest("minimum deposit is %s %s", settings.MinDeposit.StringFixed(2), settings.Currency)
	}

	method, err := activeMethod(ctx, s.repo.PaymentMethod, methodID)
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to create deposit")
	}

	deposit := &entity.Deposit{
		BaseNoDelete:    entity.NewBaseNoDelete(),
		UserID:          userID,
		PaymentMethodID: methodID,
		Amount:          req.Amount,
		Status:          entity.DepositStatusPending,
		ProofURL:        req.ProofURL,
	}

	var clientSecret string
	if method.Type == entity.PaymentMethodCard && s.gateway.Enabled() {
		intent, err := s.gateway.CreatePaymentIntent(ctx, &payment.IntentRequest{
			Reference:   deposit.ID.String(),
			Amount:      deposit.Amount,
			Currency:    settings.Currency,
			Description: "Wallet deposit",
			Metadata:    map[string]string{"user_id": userID.String()},
		})
		if err != nil {
			s.log.Error("Failed to create payment intent", zap.Error(err), zap.String("deposit_id", deposit.ID.String()))
			return nil, utils.ErrInternal(err, "payment provider unavailable")
		}
		deposit.ProviderRef = &intent.ProviderRef
		clientSecret = intent.ClientSecret
	}

	if err := s.repo.Deposit.Create(ctx, deposit); err != nil {
		s.log.Error("Failed to create deposit", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to create deposit")
	}

	s.log.Info("Deposit created",
		zap.String("deposit_id", deposit.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("method", string(method.Type)),
	)

	resp := response.DepositToResponse(deposit)
	resp.ClientSecret = clientSecret
	return &resp, nil
}

func (s *depositService) ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.DepositResponse], error) {
	deposits, err := s.repo.Deposit.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list deposits", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list deposits")
	}

	total, err := s.repo.Deposit.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count deposits", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list deposits")
	}

	return paginate(deposits, response.DepositToResponse, *page, total), nil
}

func (s *depositService) AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.DepositResponse], error) {
	deposits, err := s.repo.Deposit.FindAll(ctx, req.Status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list deposits", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list deposits")
	}

	total, err := s.repo.Deposit.Count(ctx, req.Status)
	if err != nil {
		s.log.Error("Failed to count deposits", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list deposits")
	}

	return paginate(deposits, response.DepositToResponse, req.PaginatedRequest, total), nil
}

// Review approves or rejects a pending deposit. Approval credits the wallet
// in the same transaction that flips the status.
func (s *depositService) Review(ctx context.Context, id uuid.UUID, req *request.ReviewDepositRequest) (*response.DepositResponse, error) {
	next := entity.DepositStatus(req.Status)
	reviewer, _ := utils.GetUserIDFromContext(ctx)

	var deposit *entity.Deposit
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		deposit, err = s.repo.Deposit.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if deposit == nil {
			return utils.ErrNotFound("deposit not found")
		}
		if deposit.Status != entity.DepositStatusPending {
			return utils.ErrBadRequest("only pending deposits can be reviewed")
		}

		now := time.Now()
		deposit.Status = next
		deposit.AdminNote = req.Note
		deposit.ReviewedBy = &reviewer
		deposit.ReviewedAt = &now
		deposit.UpdatedAt = now

		if next == entity.DepositStatusApproved {
			if _, err := s.ledger.post(ctx, deposit.UserID, entity.TransactionTypeDeposit, entity.DirectionCredit,
				deposit.Amount, deposit.ID.String(), "Wallet deposit"); err != nil {
				return err
			}
		}
		return s.repo.Deposit.Update(ctx, deposit)
	})
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to review deposit", zap.String("deposit_id", id.String()))
	}

	metrics.DepositsReviewed.WithLabelValues(string(next)).Inc()
	s.log.Info("Deposit reviewed", zap.String("deposit_id", id.String()), zap.String("status", string(next)))

	s.audit.Record(ctx, entity.AuditActionStatusChange, "deposit", id.String(), map[string]any{
		"from":   string(entity.DepositStatusPending),
		"to":     string(next),
		"amount": deposit.Amount.String(),
	})
	s.notify.Notify(ctx, deposit.UserID, entity.NotificationPayment,
		"Deposit "+string(next),
		fmt.Sprintf("Your deposit of %s was %s.", deposit.Amount.StringFixed(2), next),
		"/wallet")

	resp := response.DepositToResponse(deposit)
	return &resp, nil
}
