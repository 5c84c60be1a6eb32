package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, rt *routes) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// credential and OTP endpoints share the per-IP limiter
		r.Group(func(r chi.Router) {
			r.Use(rt.limiter.Limit)

			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/send-otp", authHandler.SendOTP)
			r.Post("/verify-email", authHandler.VerifyEmail)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(rt.auth())

			r.Post("/logout", authHandler.Logout)
			r.Put("/change-password", authHandler.ChangePassword)
			r.Get("/me", authHandler.Me)
		})
	})
}
