package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.EventListRequest{
		PaginatedRequest: pageFromQuery(r),
		CelebrityID:      utils.QueryStringPtr(query, "celebrity_id"),
	}
	if upcoming := utils.ParseBoolPtr(query.Get("upcoming")); upcoming != nil {
		req.Upcoming = *upcoming
	}
	if !validateQuery(w, req) {
		return
	}

	events, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetBySlug handles GET /api/events/{slug}
func (h *EventHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// Create handles POST /api/admin/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created successfully", event)
}

// Update handles PUT /api/admin/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "Event updated successfully", event)
}

// Delete handles DELETE /api/admin/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "Event deleted successfully", nil)
}
