package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeBooking    TransactionType = "booking"
	TransactionTypeDonation   TransactionType = "donation"
	TransactionTypeMembership TransactionType = "membership"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// Transaction is one wallet ledger line.
type Transaction struct {
	BaseSimple
	UserID       uuid.UUID            `db:"user_id"`
	Type         TransactionType      `db:"type"`
	Direction    TransactionDirection `db:"direction"`
	Amount       decimal.Decimal      `db:"amount"`
	BalanceAfter decimal.Decimal      `db:"balance_after"`
	Reference    *string              `db:"reference"`
	Description  *string              `db:"description"`
	Status       string               `db:"status"`
}

type TransactionFilter struct {
	UserID *uuid.UUID
	Type   *string
}
