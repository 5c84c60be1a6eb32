package wire

import (
	"celebrity-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWallet(
	r chi.Router,
	donationHandler *adaptor.DonationHandler,
	walletHandler *adaptor.WalletHandler,
	paymentMethodHandler *adaptor.PaymentMethodHandler,
	rt *routes,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/payment-methods", paymentMethodHandler.List)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(rt.auth())

		r.Get("/api/wallet", walletHandler.Balance)
		r.Post("/api/deposits", walletHandler.CreateDeposit)
		r.Get("/api/deposits", walletHandler.ListDeposits)
		r.Get("/api/transactions", walletHandler.ListTransactions)
		r.Post("/api/donations", donationHandler.Create)
		r.Get("/api/donations", donationHandler.ListMine)
	})

	// ==================== ADMIN ROUTES ====================
	rt.adminGroup(r, "/api/admin/deposits", func(r chi.Router) {
		r.Get("/", walletHandler.AdminListDeposits)
		r.Put("/{id}/status", walletHandler.ReviewDeposit)
	})

	rt.adminGroup(r, "/api/admin/transactions", func(r chi.Router) {
		r.Get("/", walletHandler.AdminListTransactions)
	})

	rt.adminGroup(r, "/api/admin/donations", func(r chi.Router) {
		r.Get("/", donationHandler.AdminList)
		r.Put("/{id}/status", donationHandler.UpdateStatus)
	})

	rt.adminGroup(r, "/api/admin/payment-methods", func(r chi.Router) {
		r.Get("/", paymentMethodHandler.AdminList)
		r.Post("/", paymentMethodHandler.Create)
		r.Put("/{id}", paymentMethodHandler.Update)
		r.Delete("/{id}", paymentMethodHandler.Delete)
	})
}
