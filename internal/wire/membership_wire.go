package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMembership(r chi.Router, membershipHandler *adaptor.MembershipHandler, rt *routes) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/membership-plans", membershipHandler.ListPlans)

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/memberships", func(r chi.Router) {
		r.Use(rt.auth())

		r.Post("/", membershipHandler.Subscribe)
		r.Get("/me", membershipHandler.ListMine)
		r.Put("/{id}/cancel", membershipHandler.Cancel)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/membership-plans", func(r chi.Router) {
		r.Get("/", membershipHandler.AdminListPlans)
		r.Post("/", membershipHandler.CreatePlan)
		r.Put("/{id}", membershipHandler.UpdatePlan)
		r.Delete("/{id}", membershipHandler.DeletePlan)
	})

	rt.adminGroup(r, "/api/admin/memberships", func(r chi.Router) {
		r.Get("/", membershipHandler.AdminList)
		r.Put("/{id}/status", membershipHandler.UpdateStatus)
	})
}
