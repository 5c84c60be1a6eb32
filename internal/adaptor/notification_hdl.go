package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// liveStream upgrades a request into a per-user push connection.
type liveStream interface {
	Serve(w http.ResponseWriter, r *http.Request, userID string) error
}

type NotificationHandler struct {
	service usecase.NotificationService
	stream  liveStream
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, stream liveStream, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		stream:  stream,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := &request.NotificationListRequest{PaginatedRequest: pageFromQuery(r)}
	if unread := utils.ParseBoolPtr(r.URL.Query().Get("unread")); unread != nil {
		req.UnreadOnly = *unread
	}

	notifications, err := h.service.List(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// UnreadCount handles GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "unread count")
		return
	}

	utils.ResponseSuccess(w, "success", count)
}

// MarkRead handles PUT /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkRead(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "mark read")
		return
	}

	utils.ResponseSuccess(w, "Notification marked as read", nil)
}

// MarkAllRead handles PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.service.MarkAllRead(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "mark all read")
		return
	}

	utils.ResponseSuccess(w, "All notifications marked as read", count)
}

// Delete handles DELETE /api/notifications/{id}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete notification")
		return
	}

	utils.ResponseSuccess(w, "Notification deleted", nil)
}

// Broadcast handles POST /api/admin/notifications
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req request.BroadcastNotificationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	count, err := h.service.Broadcast(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "broadcast notification")
		return
	}

	utils.ResponseCreated(w, "Notification sent", count)
}

// Stream handles GET /api/notifications/ws
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	// the upgrader has already answered the client when Serve fails
	if err := h.stream.Serve(w, r, userID.String()); err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err), zap.String("user_id", userID.String()))
	}
}
