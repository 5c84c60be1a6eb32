package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type DonationHandler struct {
	service usecase.DonationService
	log     *zap.Logger
}

func NewDonationHandler(service usecase.DonationService, log *zap.Logger) *DonationHandler {
	return &DonationHandler{
		service: service,
		log:     log.With(zap.String("handler", "donation")),
	}
}

// Create handles POST /api/donations
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateDonationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	donation, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create donation")
		return
	}

	utils.ResponseCreated(w, "Donation received", donation)
}

// ListMine handles GET /api/donations
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page := pageFromQuery(r)
	donations, err := h.service.ListMine(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list donations")
		return
	}

	utils.ResponseSuccess(w, "success", donations)
}

// AdminList handles GET /api/admin/donations
func (h *DonationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	donations, err := h.service.AdminList(r.Context(), statusListFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list donations")
		return
	}

	utils.ResponseSuccess(w, "success", donations)
}

// UpdateStatus handles PUT /api/admin/donations/{id}/status
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateDonationStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	donation, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update donation status")
		return
	}

	utils.ResponseSuccess(w, "Donation status updated successfully", donation)
}
