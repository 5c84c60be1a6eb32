package adaptor

import (
	"fmt"
	"net/http"
	"strconv"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// ListMine handles GET /api/bookings
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page := pageFromQuery(r)
	bookings, err := h.service.ListMine(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Cancel handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", booking)
}

// Pay handles POST /api/bookings/{id}/pay
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.service.Pay(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, h.log, err, "pay booking")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", booking)
}

// Ticket handles GET /api/bookings/{id}/ticket
func (h *BookingHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	pdf, filename, err := h.service.Ticket(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "booking ticket")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.log.Warn("Failed to write ticket", zap.Error(err))
	}
}

// AdminList handles GET /api/admin/bookings
func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.AdminList(r.Context(), statusListFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PUT /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated successfully", booking)
}
