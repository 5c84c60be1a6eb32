package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotification(r chi.Router, notificationHandler *adaptor.NotificationHandler, rt *routes) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(rt.auth())

		r.Get("/", notificationHandler.List)
		r.Get("/unread-count", notificationHandler.UnreadCount)
		r.Get("/ws", notificationHandler.Stream)
		r.Put("/read-all", notificationHandler.MarkAllRead)
		r.Put("/{id}/read", notificationHandler.MarkRead)
		r.Delete("/{id}", notificationHandler.Delete)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/notifications", func(r chi.Router) {
		r.Post("/", notificationHandler.Broadcast)
	})
}
