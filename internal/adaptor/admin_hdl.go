package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuditHandler struct {
	service usecase.AuditService
	log     *zap.Logger
}

func NewAuditHandler(service usecase.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		log:     log.With(zap.String("handler", "audit")),
	}
}

// List handles GET /api/admin/audits
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AuditListRequest{
		PaginatedRequest: pageFromQuery(r),
		Entity:           utils.QueryStringPtr(query, "entity"),
		Action:           utils.QueryStringPtr(query, "action"),
		ActorID:          utils.QueryStringPtr(query, "actor_id"),
	}
	if !validateQuery(w, req) {
		return
	}

	audits, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list audits")
		return
	}

	utils.ResponseSuccess(w, "success", audits)
}

type PlatformHandler struct {
	service usecase.PlatformService
	log     *zap.Logger
}

func NewPlatformHandler(service usecase.PlatformService, log *zap.Logger) *PlatformHandler {
	return &PlatformHandler{
		service: service,
		log:     log.With(zap.String("handler", "platform")),
	}
}

// Get handles GET /api/platform
func (h *PlatformHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get platform")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// Update handles PUT /api/admin/platform
func (h *PlatformHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePlatformRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update platform")
		return
	}

	utils.ResponseSuccess(w, "Platform settings updated successfully", settings)
}

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// Dashboard handles GET /api/admin/stats
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
