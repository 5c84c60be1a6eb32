package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCelebrity(r chi.Router, celebrityHandler *adaptor.CelebrityHandler, rt *routes) {
	r.Route("/api/celebrities", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", celebrityHandler.List)
		r.Get("/{slug}", celebrityHandler.GetBySlug)
		r.Get("/{id}/reviews", celebrityHandler.ListReviews)
		r.Get("/{id}/donations/summary", celebrityHandler.DonationSummary)

		// ==================== PROTECTED ROUTES ====================
		r.With(rt.auth()).Post("/{id}/reviews", celebrityHandler.CreateReview)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/celebrities", func(r chi.Router) {
		r.Post("/", celebrityHandler.Create)
		r.Put("/{id}", celebrityHandler.Update)
		r.Delete("/{id}", celebrityHandler.Delete)
		r.Post("/{id}/booking-types", celebrityHandler.AddBookingType)
		r.Delete("/{id}/booking-types/{typeID}", celebrityHandler.RemoveBookingType)
	})

	rt.adminGroup(r, "/api/admin/reviews", func(r chi.Router) {
		r.Delete("/{id}", celebrityHandler.DeleteReview)
	})
}
