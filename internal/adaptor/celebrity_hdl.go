package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CelebrityHandler struct {
	service   usecase.CelebrityService
	donations usecase.DonationService
	log       *zap.Logger
}

func NewCelebrityHandler(service usecase.CelebrityService, donations usecase.DonationService, log *zap.Logger) *CelebrityHandler {
	return &CelebrityHandler{
		service:   service,
		donations: donations,
		log:       log.With(zap.String("handler", "celebrity")),
	}
}

// List handles GET /api/celebrities
func (h *CelebrityHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.CelebrityListRequest{
		PaginatedRequest: pageFromQuery(r),
		Category:         utils.QueryStringPtr(query, "category"),
		Search:           utils.QueryStringPtr(query, "search"),
		Featured:         utils.ParseBoolPtr(query.Get("featured")),
	}

	celebrities, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list celebrities")
		return
	}

	utils.ResponseSuccess(w, "success", celebrities)
}

// GetBySlug handles GET /api/celebrities/{slug}
func (h *CelebrityHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	celebrity, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get celebrity")
		return
	}

	utils.ResponseSuccess(w, "success", celebrity)
}

// Create handles POST /api/admin/celebrities
func (h *CelebrityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCelebrityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	celebrity, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create celebrity")
		return
	}

	utils.ResponseCreated(w, "Celebrity created successfully", celebrity)
}

// Update handles PUT /api/admin/celebrities/{id}
func (h *CelebrityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateCelebrityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	celebrity, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update celebrity")
		return
	}

	utils.ResponseSuccess(w, "Celebrity updated successfully", celebrity)
}

// Delete handles DELETE /api/admin/celebrities/{id}
func (h *CelebrityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete celebrity")
		return
	}

	utils.ResponseSuccess(w, "Celebrity deleted successfully", nil)
}

// AddBookingType handles POST /api/admin/celebrities/{id}/booking-types
func (h *CelebrityHandler) AddBookingType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.BookingTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bt, err := h.service.AddBookingType(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add booking type")
		return
	}

	utils.ResponseCreated(w, "Booking type created successfully", bt)
}

// RemoveBookingType handles DELETE /api/admin/celebrities/{id}/booking-types/{typeID}
func (h *CelebrityHandler) RemoveBookingType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	typeID, ok := pathUUID(w, r, "typeID")
	if !ok {
		return
	}

	if err := h.service.RemoveBookingType(r.Context(), id, typeID); err != nil {
		handleServiceError(w, h.log, err, "remove booking type")
		return
	}

	utils.ResponseSuccess(w, "Booking type removed successfully", nil)
}

// ListReviews handles GET /api/celebrities/{id}/reviews
func (h *CelebrityHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	page := pageFromQuery(r)
	reviews, err := h.service.ListReviews(r.Context(), id, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/celebrities/{id}/reviews
func (h *CelebrityHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review submitted successfully", review)
}

// DeleteReview handles DELETE /api/admin/reviews/{id}
func (h *CelebrityHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// DonationSummary handles GET /api/celebrities/{id}/donations/summary
func (h *CelebrityHandler) DonationSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.donations.Summary(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "donation summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
