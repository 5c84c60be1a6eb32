package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusRejected  DonationStatus = "rejected"
)

type Donation struct {
	BaseNoDelete
	UserID          uuid.UUID       `db:"user_id"`
	CelebrityID     uuid.UUID       `db:"celebrity_id"`
	Amount          decimal.Decimal `db:"amount"`
	Message         *string         `db:"message"`
	IsAnonymous     bool            `db:"is_anonymous"`
	PaymentMethodID *uuid.UUID      `db:"payment_method_id"`
	Status          DonationStatus  `db:"status"`
}

type DonationSummary struct {
	Total       decimal.Decimal
	DonorCount  int64
	Completions int64
}
