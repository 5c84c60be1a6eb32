package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentMethodHandler struct {
	service usecase.PaymentMethodService
	log     *zap.Logger
}

func NewPaymentMethodHandler(service usecase.PaymentMethodService, log *zap.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment_method")),
	}
}

// List handles GET /api/payment-methods
func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// AdminList handles GET /api/admin/payment-methods
func (h *PaymentMethodHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *PaymentMethodHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	methods, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", methods)
}

// Create handles POST /api/admin/payment-methods
func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentMethodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	method, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment method")
		return
	}

	utils.ResponseCreated(w, "Payment method created successfully", method)
}

// Update handles PUT /api/admin/payment-methods/{id}
func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.PaymentMethodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	method, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method updated successfully", method)
}

// Delete handles DELETE /api/admin/payment-methods/{id}
func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method deleted successfully", nil)
}
