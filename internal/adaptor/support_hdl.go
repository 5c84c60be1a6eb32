package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type SupportHandler struct {
	service usecase.SupportService
	log     *zap.Logger
}

func NewSupportHandler(service usecase.SupportService, log *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service: service,
		log:     log.With(zap.String("handler", "support")),
	}
}

// Create handles POST /api/support-tickets
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ticket, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket created successfully", ticket)
}

// ListMine handles GET /api/support-tickets
func (h *SupportHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page := pageFromQuery(r)
	tickets, err := h.service.ListMine(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// Get handles GET /api/support-tickets/{id}
func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ticket, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// Reply handles POST /api/support-tickets/{id}/replies
func (h *SupportHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.TicketReplyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.service.Reply(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reply ticket")
		return
	}

	utils.ResponseCreated(w, "Reply posted", reply)
}

// AdminList handles GET /api/admin/support-tickets
func (h *SupportHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.AdminList(r.Context(), statusListFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// UpdateStatus handles PUT /api/admin/support-tickets/{id}/status
func (h *SupportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateTicketStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ticket, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update ticket status")
		return
	}

	utils.ResponseSuccess(w, "Ticket status updated successfully", ticket)
}
