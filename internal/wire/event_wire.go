package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEvent(r chi.Router, eventHandler *adaptor.EventHandler, rt *routes) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/events", eventHandler.List)
	r.Get("/api/events/{slug}", eventHandler.GetBySlug)

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/events", func(r chi.Router) {
		r.Post("/", eventHandler.Create)
		r.Put("/{id}", eventHandler.Update)
		r.Delete("/{id}", eventHandler.Delete)
	})
}
