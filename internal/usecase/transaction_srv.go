package usecase

import (
	"context"
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

type TransactionService interface {
	ListMine(ctx context.Context, userID uuid.UUID, req *request.TransactionListRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
	Wallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error)

	// Admin
	AdminList(ctx context.Context, req *request.TransactionListRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
	Adjust(ctx context.Context, userID uuid.UUID, req *request.AdjustBalanceRequest) (*response.TransactionResponse, error)
}

type transactionService struct {
	repo     *repository.Repository
	tx       database.TxManager
	ledger   ledger
	platform PlatformService
	notify   NotificationService
	audit    AuditService
	log      *zap.Logger
}

func NewTransactionService(
	repo *repository.Repository,
	tx database.TxManager,
	platform PlatformService,
	notify NotificationService,
	audit AuditService,
	log *zap.Logger,
) TransactionService {
	return &transactionService{
		repo:     repo,
		tx:       tx,
		ledger:   newLedger(repo),
		platform: platform,
		notify:   notify,
		audit:    audit,
		log:      log.With(zap.String("service", "transaction")),
	}
}

func (s *transactionService) ListMine(ctx context.Context, userID uuid.UUID, req *request.TransactionListRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	return s.list(ctx, entity.TransactionFilter{UserID: &userID, Type: req.Type}, &req.PaginatedRequest)
}

func (s *transactionService) AdminList(ctx context.Context, req *request.TransactionListRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	userID, err := parseOptionalID(req.UserID, "user")
	if err != nil {
		return nil, err
	}
	return s.list(ctx, entity.TransactionFilter{UserID: userID, Type: req.Type}, &req.PaginatedRequest)
}

func (s *transactionService) list(ctx context.Context, f entity.TransactionFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	txns, err := s.repo.Transaction.FindAll(ctx, f, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list transactions", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list transactions")
	}

	total, err := s.repo.Transaction.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count transactions", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list transactions")
	}

	return paginate(txns, response.TransactionToResponse, *page, total), nil
}

func (s *transactionService) Wallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to load wallet")
	}
	if user == nil {
		return nil, utils.ErrNotFound("user not found")
	}

	settings, err := s.platform.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &response.WalletResponse{Balance: user.Balance, Currency: settings.Currency}, nil
}

// Adjust credits or debits a user's wallet by hand. Debits never take the
// balance below zero.
func (s *transactionService) Adjust(ctx context.Context, userID uuid.UUID, req *request.AdjustBalanceRequest) (*response.TransactionResponse, error) {
	direction := entity.TransactionDirection(req.Direction)

	var txn *entity.Transaction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.repo.User.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return utils.ErrNotFound("user not found")
		}

		txn, err = s.ledger.post(ctx, userID, entity.TransactionTypeAdjustment, direction,
			req.Amount, utils.GenerateReference("ADJ"), req.Description)
		return err
	})
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to adjust balance", zap.String("user_id", userID.String()))
	}

	s.log.Info("Balance adjusted",
		zap.String("user_id", userID.String()),
		zap.String("direction", req.Direction),
		zap.String("amount", req.Amount.String()),
	)
	s.audit.Record(ctx, entity.AuditActionUpdate, "wallet", userID.String(), map[string]any{
		"direction":     req.Direction,
		"amount":        req.Amount.String(),
		"balance_after": txn.BalanceAfter.String(),
		"description":   req.Description,
	})
	s.notify.Notify(ctx, userID, entity.NotificationPayment,
		"Wallet adjusted",
		fmt.Sprintf("Your wallet was %sed %s. %s", req.Direction, req.Amount.StringFixed(2), req.Description),
		"/wallet")

	resp := response.TransactionToResponse(txn)
	return &resp, nil
}
