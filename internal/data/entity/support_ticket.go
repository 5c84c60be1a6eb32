package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type SupportTicket struct {
	BaseNoDelete
	Reference string         `db:"reference"`
	UserID    uuid.UUID      `db:"user_id"`
	Subject   string         `db:"subject"`
	Category  string         `db:"category"`
	Priority  TicketPriority `db:"priority"`
	Status    TicketStatus   `db:"status"`
	ClosedAt  *time.Time     `db:"closed_at"`
}

type TicketReply struct {
	BaseSimple
	TicketID uuid.UUID `db:"ticket_id"`
	AuthorID uuid.UUID `db:"author_id"`
	IsStaff  bool      `db:"is_staff"`
	Message  string    `db:"message"`
}
