package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MembershipPlan struct {
	Base
	Name         string          `db:"name"`
	Description  *string         `db:"description"`
	Price        decimal.Decimal `db:"price"`
	DurationDays int             `db:"duration_days"`
	Benefits     []string        `db:"benefits"`
	IsActive     bool            `db:"is_active"`
}

type MembershipStatus string

const (
	MembershipStatusPending   MembershipStatus = "pending"
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusRejected  MembershipStatus = "rejected"
	MembershipStatusCancelled MembershipStatus = "cancelled"
	MembershipStatusExpired   MembershipStatus = "expired"
)

var membershipTransitions = map[MembershipStatus][]MembershipStatus{
	MembershipStatusPending: {MembershipStatusActive, MembershipStatusRejected, MembershipStatusCancelled},
	MembershipStatusActive:  {MembershipStatusCancelled, MembershipStatusExpired},
}

func (s MembershipStatus) CanTransitionTo(next MembershipStatus) bool {
	for _, allowed := range membershipTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsOpen is true while the membership blocks a new subscription.
func (s MembershipStatus) IsOpen() bool {
	return s == MembershipStatusPending || s == MembershipStatusActive
}

type Membership struct {
	BaseNoDelete
	UserID          uuid.UUID        `db:"user_id"`
	PlanID          uuid.UUID        `db:"plan_id"`
	Status          MembershipStatus `db:"status"`
	Amount          decimal.Decimal  `db:"amount"`
	PaymentMethodID *uuid.UUID       `db:"payment_method_id"`
	StartsAt        *time.Time       `db:"starts_at"`
	EndsAt          *time.Time       `db:"ends_at"`
}

// Activate starts the membership period for durationDays from now.
func (m *Membership) Activate(now time.Time, durationDays int) {
	start := now
	end := now.AddDate(0, 0, durationDays)
	m.Status = MembershipStatusActive
	m.StartsAt = &start
	m.EndsAt = &end
	m.UpdatedAt = now
}
