package response

import (
	"time"

	"celebrity-booking/internal/data/entity"
)

type TicketReplyResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	IsStaff   bool      `json:"is_staff"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportTicketResponse struct {
	ID        string                `json:"id"`
	Reference string                `json:"reference"`
	UserID    string                `json:"user_id"`
	Subject   string                `json:"subject"`
	Category  string                `json:"category"`
	Priority  entity.TicketPriority `json:"priority"`
	Status    entity.TicketStatus   `json:"status"`
	ClosedAt  *time.Time            `json:"closed_at,omitempty"`
	Replies   []TicketReplyResponse `json:"replies,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func TicketToResponse(t *entity.SupportTicket) SupportTicketResponse {
	return SupportTicketResponse{
		ID:        t.ID.String(),
		Reference: t.Reference,
		UserID:    t.UserID.String(),
		Subject:   t.Subject,
		Category:  t.Category,
		Priority:  t.Priority,
		Status:    t.Status,
		ClosedAt:  t.ClosedAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func TicketReplyToResponse(r *entity.TicketReply) TicketReplyResponse {
	return TicketReplyResponse{
		ID:        r.ID.String(),
		AuthorID:  r.AuthorID.String(),
		IsStaff:   r.IsStaff,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
