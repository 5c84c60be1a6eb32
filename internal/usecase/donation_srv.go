package usecase

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DonationService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateDonationRequest) (*response.DonationResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.DonationResponse], error)
	Summary(ctx context.Context, celebrityID uuid.UUID) (*response.DonationSummaryResponse, error)

	// Admin
	AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.DonationResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateDonationStatusRequest) (*response.DonationResponse, error)
}

type donationService struct {
	repo   *repository.Repository
	tx     database.TxManager
	ledger ledger
	notify NotificationService
	audit  AuditService
	log    *zap.Logger
}

func NewDonationService(repo *repository.Repository, tx database.TxManager, notify NotificationService, audit AuditService, log *zap.Logger) DonationService {
	return &donationService{
		repo:   repo,
		tx:     tx,
		ledger: newLedger(repo),
		notify: notify,
		audit:  audit,
		log:    log.With(zap.String("service", "donation")),
	}
}

func (s *donationService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateDonationRequest) (*response.DonationResponse, error) {
	celebrityID, err := parseID(req.CelebrityID, "celebrity")
	if err != nil {
		return nil, err
	}
	methodID, err := parseOptionalID(req.PaymentMethodID, "payment method")
	if err != nil {
		return nil, err
	}
	if !req.PayWithWallet && methodID == nil {
		return nil, utils.ErrBadRequest("choose a payment method or pay with wallet")
	}

	celebrity, err := s.repo.Celebrity.FindByID(ctx, celebrityID)
	if err != nil {
		s.log.Error("Failed to find celebrity", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to create donation")
	}
	if celebrity == nil {
		return nil, utils.ErrNotFound("celebrity not found")
	}

	if methodID != nil && !req.PayWithWallet {
		if err := requireActiveMethod(ctx, s.repo.PaymentMethod, *methodID); err != nil {
			return nil, appOrInternal(s.log, err, "failed to create donation")
		}
	}

	donation := &entity.Donation{
		BaseNoDelete:    entity.NewBaseNoDelete(),
		UserID:          userID,
		CelebrityID:     celebrityID,
		Amount:          req.Amount,
		Message:         req.Message,
		IsAnonymous:     req.Anonymous,
		PaymentMethodID: methodID,
		Status:          entity.DonationStatusPending,
	}

	if req.PayWithWallet {
		donation.Status = entity.DonationStatusCompleted
		donation.PaymentMethodID = nil
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := s.ledger.post(ctx, userID, entity.TransactionTypeDonation, entity.DirectionDebit,
				req.Amount, donation.ID.String(), "Donation to "+celebrity.Name); err != nil {
				return err
			}
			return s.repo.Donation.Create(ctx, donation)
		})
	} else {
		err = s.repo.Donation.Create(ctx, donation)
	}
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to create donation", zap.String("user_id", userID.String()))
	}

	s.log.Info("Donation created",
		zap.String("donation_id", donation.ID.String()),
		zap.String("celebrity_id", celebrityID.String()),
		zap.String("status", string(donation.Status)),
	)
	s.notify.Notify(ctx, userID, entity.NotificationPayment,
		"Donation "+string(donation.Status),
		fmt.Sprintf("Your donation of %s to %s is %s.", donation.Amount.StringFixed(2), celebrity.Name, donation.Status),
		"/donations")

	resp := response.DonationToResponse(donation, true)
	return &resp, nil
}

func (s *donationService) ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.DonationResponse], error) {
	donations, err := s.repo.Donation.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list donations", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list donations")
	}

	total, err := s.repo.Donation.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count donations", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list donations")
	}

	return paginate(donations, withDonor, *page, total), nil
}

func (s *donationService) Summary(ctx context.Context, celebrityID uuid.UUID) (*response.DonationSummaryResponse, error) {
	summary, err := s.repo.Donation.SummaryByCelebrity(ctx, celebrityID)
	if err != nil {
		s.log.Error("Failed to summarize donations", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to load donation summary")
	}

	return &response.DonationSummaryResponse{
		CelebrityID: celebrityID.String(),
		Total:       summary.Total,
		DonorCount:  summary.DonorCount,
		Donations:   summary.Completions,
	}, nil
}

func (s *donationService) AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.DonationResponse], error) {
	donations, err := s.repo.Donation.FindAll(ctx, req.Status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list donations", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list donations")
	}

	total, err := s.repo.Donation.Count(ctx, req.Status)
	if err != nil {
		s.log.Error("Failed to count donations", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list donations")
	}

	return paginate(donations, withDonor, req.PaginatedRequest, total), nil
}

func (s *donationService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateDonationStatusRequest) (*response.DonationResponse, error) {
	next := entity.DonationStatus(req.Status)

	donation, err := s.repo.Donation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find donation", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to update donation")
	}
	if donation == nil {
		return nil, utils.ErrNotFound("donation not found")
	}

	if err := s.repo.Donation.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, utils.ErrBadRequest("only pending donations can be updated")
		}
		s.log.Error("Failed to update donation", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to update donation")
	}
	prev := donation.Status
	donation.Status = next

	s.audit.Record(ctx, entity.AuditActionStatusChange, "donation", id.String(), map[string]any{
		"from": string(prev),
		"to":   string(next),
	})
	s.notify.Notify(ctx, donation.UserID, entity.NotificationPayment,
		"Donation "+string(next),
		fmt.Sprintf("Your donation of %s was %s.", donation.Amount.StringFixed(2), next),
		"/donations")

	resp := response.DonationToResponse(donation, true)
	return &resp, nil
}

func withDonor(d *entity.Donation) response.DonationResponse {
	return response.DonationToResponse(d, true)
}
