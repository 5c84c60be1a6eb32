package usecase

import (
	"context"
	"errors"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionCompleted = "completed"

// ledger moves wallet balances and records the matching transaction row.
// Callers run it inside a database transaction.
type ledger struct {
	users        repository.UserRepository
	transactions repository.TransactionRepository
}

func newLedger(repo *repository.Repository) ledger {
	return ledger{users: repo.User, transactions: repo.Transaction}
}

func (l ledger) post(
	ctx context.Context,
	userID uuid.UUID,
	txType entity.TransactionType,
	direction entity.TransactionDirection,
	amount decimal.Decimal,
	reference, description string,
) (*entity.Transaction, error) {
	delta := amount
	if direction == entity.DirectionDebit {
		delta = amount.Neg()
	}

	balance, err := l.users.AdjustBalance(ctx, userID, delta)
	if errors.Is(err, repository.ErrInsufficientBalance) {
		return nil, utils.ErrBadRequest("insufficient wallet balance")
	}
	if err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		BaseSimple:   entity.NewBaseSimple(),
		UserID:       userID,
		Type:         txType,
		Direction:    direction,
		Amount:       amount,
		BalanceAfter: balance,
		Reference:    strPtr(reference),
		Description:  strPtr(description),
		Status:       transactionCompleted,
	}
	if err := l.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
