package request

type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Category string `json:"category" validate:"required,max=40"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Message  string `json:"message" validate:"required,max=5000"`
}

type TicketReplyRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}
