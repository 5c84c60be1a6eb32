package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, rt *routes) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(rt.auth())

		r.Post("/", bookingHandler.Create)
		r.Get("/", bookingHandler.ListMine)
		r.Get("/{id}", bookingHandler.Get)
		r.Put("/{id}/cancel", bookingHandler.Cancel)
		r.Post("/{id}/pay", bookingHandler.Pay)
		r.Get("/{id}/ticket", bookingHandler.Ticket)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.AdminList)
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
	})
}
