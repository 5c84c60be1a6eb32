package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, blogHandler *adaptor.BlogHandler, mediaHandler *adaptor.MediaHandler, rt *routes) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/blog", blogHandler.List)
	r.Get("/api/blog/{slug}", blogHandler.GetBySlug)

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/blog", func(r chi.Router) {
		r.Get("/", blogHandler.AdminList)
		r.Post("/", blogHandler.Create)
		r.Get("/{id}", blogHandler.Get)
		r.Put("/{id}", blogHandler.Update)
		r.Delete("/{id}", blogHandler.Delete)
	})

	rt.adminGroup(r, "/api/admin/media", func(r chi.Router) {
		r.Get("/", mediaHandler.List)
		r.Post("/", mediaHandler.Upload)
		r.Delete("/{id}", mediaHandler.Delete)
	})
}
