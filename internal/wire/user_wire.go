package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, walletHandler *adaptor.WalletHandler, rt *routes) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(rt.auth())

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
		r.Post("/{id}/adjust", walletHandler.Adjust)
	})
}
