package entity

import "github.com/shopspring/decimal"

type DashboardStats struct {
	Users             int64
	Celebrities       int64
	Events            int64
	PendingBookings   int64
	PendingDeposits   int64
	OpenTickets       int64
	ActiveMemberships int64
	Revenue           decimal.Decimal
}
