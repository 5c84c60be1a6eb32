package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type MembershipHandler struct {
	service usecase.MembershipService
	log     *zap.Logger
}

func NewMembershipHandler(service usecase.MembershipService, log *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		log:     log.With(zap.String("handler", "membership")),
	}
}

// ListPlans handles GET /api/membership-plans (active only)
func (h *MembershipHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	h.listPlans(w, r, true)
}

// AdminListPlans handles GET /api/admin/membership-plans
func (h *MembershipHandler) AdminListPlans(w http.ResponseWriter, r *http.Request) {
	h.listPlans(w, r, false)
}

func (h *MembershipHandler) listPlans(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	plans, err := h.service.ListPlans(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// CreatePlan handles POST /api/admin/membership-plans
func (h *MembershipHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req request.MembershipPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create plan")
		return
	}

	utils.ResponseCreated(w, "Membership plan created successfully", plan)
}

// UpdatePlan handles PUT /api/admin/membership-plans/{id}
func (h *MembershipHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.MembershipPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.service.UpdatePlan(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update plan")
		return
	}

	utils.ResponseSuccess(w, "Membership plan updated successfully", plan)
}

// DeletePlan handles DELETE /api/admin/membership-plans/{id}
func (h *MembershipHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePlan(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete plan")
		return
	}

	utils.ResponseSuccess(w, "Membership plan deleted successfully", nil)
}

// Subscribe handles POST /api/memberships
func (h *MembershipHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateMembershipRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	membership, err := h.service.Subscribe(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "Membership requested successfully", membership)
}

// ListMine handles GET /api/memberships/me
func (h *MembershipHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	memberships, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list memberships")
		return
	}

	utils.ResponseSuccess(w, "success", memberships)
}

// Cancel handles PUT /api/memberships/{id}/cancel
func (h *MembershipHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	membership, err := h.service.Cancel(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel membership")
		return
	}

	utils.ResponseSuccess(w, "Membership cancelled successfully", membership)
}

// AdminList handles GET /api/admin/memberships
func (h *MembershipHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.service.AdminList(r.Context(), statusListFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list memberships")
		return
	}

	utils.ResponseSuccess(w, "success", memberships)
}

// UpdateStatus handles PUT /api/admin/memberships/{id}/status
func (h *MembershipHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateMembershipStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	membership, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update membership status")
		return
	}

	utils.ResponseSuccess(w, "Membership status updated successfully", membership)
}
