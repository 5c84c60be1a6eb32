package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSupport(r chi.Router, supportHandler *adaptor.SupportHandler, rt *routes) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/support-tickets", func(r chi.Router) {
		r.Use(rt.auth())

		r.Post("/", supportHandler.Create)
		r.Get("/", supportHandler.ListMine)
		r.Get("/{id}", supportHandler.Get)
		r.Post("/{id}/replies", supportHandler.Reply)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/support-tickets", func(r chi.Router) {
		r.Get("/", supportHandler.AdminList)
		r.Put("/{id}/status", supportHandler.UpdateStatus)
	})
}
