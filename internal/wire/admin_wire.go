package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(
	r chi.Router,
	auditHandler *adaptor.AuditHandler,
	platformHandler *adaptor.PlatformHandler,
	statsHandler *adaptor.StatsHandler,
	rt *routes,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/platform", platformHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(rt.auth())
		r.Use(rt.admin())

		r.Get("/api/admin/audits", auditHandler.List)
		r.Put("/api/admin/platform", platformHandler.Update)
		r.Get("/api/admin/stats", statsHandler.Dashboard)
	})
}
