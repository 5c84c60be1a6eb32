package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

type Deposit struct {
	BaseNoDelete
	UserID          uuid.UUID       `db:"user_id"`
	PaymentMethodID uuid.UUID       `db:"payment_method_id"`
	Amount          decimal.Decimal `db:"amount"`
	Status          DepositStatus   `db:"status"`
	ProofURL        *string         `db:"proof_url"`
	ProviderRef     *string         `db:"provider_ref"`
	AdminNote       *string         `db:"admin_note"`
	ReviewedBy      *uuid.UUID      `db:"reviewed_by"`
	ReviewedAt      *time.Time      `db:"reviewed_at"`
}
