package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

// WalletHandler serves deposits, the wallet balance and the transaction ledger.
type WalletHandler struct {
	deposits     usecase.DepositService
	transactions usecase.TransactionService
	log          *zap.Logger
}

func NewWalletHandler(deposits usecase.DepositService, transactions usecase.TransactionService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		deposits:     deposits,
		transactions: transactions,
		log:          log.With(zap.String("handler", "wallet")),
	}
}

// Balance handles GET /api/wallet
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	wallet, err := h.transactions.Wallet(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "wallet")
		return
	}

	utils.ResponseSuccess(w, "success", wallet)
}

// CreateDeposit handles POST /api/deposits
func (h *WalletHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateDepositRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deposit, err := h.deposits.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create deposit")
		return
	}

	utils.ResponseCreated(w, "Deposit submitted for review", deposit)
}

// ListDeposits handles GET /api/deposits
func (h *WalletHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page := pageFromQuery(r)
	deposits, err := h.deposits.ListMine(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list deposits")
		return
	}

	utils.ResponseSuccess(w, "success", deposits)
}

// AdminListDeposits handles GET /api/admin/deposits
func (h *WalletHandler) AdminListDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.deposits.AdminList(r.Context(), statusListFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list deposits")
		return
	}

	utils.ResponseSuccess(w, "success", deposits)
}

// ReviewDeposit handles PUT /api/admin/deposits/{id}/status
func (h *WalletHandler) ReviewDeposit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.ReviewDepositRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deposit, err := h.deposits.Review(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "review deposit")
		return
	}

	utils.ResponseSuccess(w, "Deposit "+req.Status, deposit)
}

func transactionListFromQuery(r *http.Request) *request.TransactionListRequest {
	query := r.URL.Query()
	return &request.TransactionListRequest{
		PaginatedRequest: pageFromQuery(r),
		UserID:           utils.QueryStringPtr(query, "user_id"),
		Type:             utils.QueryStringPtr(query, "type"),
	}
}

// ListTransactions handles GET /api/transactions
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := transactionListFromQuery(r)
	req.UserID = nil
	if !validateQuery(w, req) {
		return
	}

	transactions, err := h.transactions.ListMine(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, "success", transactions)
}

// AdminListTransactions handles GET /api/admin/transactions
func (h *WalletHandler) AdminListTransactions(w http.ResponseWriter, r *http.Request) {
	req := transactionListFromQuery(r)
	if !validateQuery(w, req) {
		return
	}

	transactions, err := h.transactions.AdminList(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin list transactions")
		return
	}

	utils.ResponseSuccess(w, "success", transactions)
}

// Adjust handles POST /api/admin/users/{id}/adjust
func (h *WalletHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.AdjustBalanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tx, err := h.transactions.Adjust(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "adjust balance")
		return
	}

	utils.ResponseSuccess(w, "Balance adjusted successfully", tx)
}
