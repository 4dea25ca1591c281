package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "kursusku_backend/internals/features/marketplace/payments/controller"
)

// 🔒 User: checkout & riwayat pembayaran
func PaymentUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	private.Post("/payments/checkout", ctrl.Checkout)
	private.Get("/payments", ctrl.GetMyPayments)
}

// 🌐 Publik: webhook notifikasi Midtrans (tanpa auth, dilewati middleware)
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Post("/payments/notification", ctrl.HandleMidtransNotification)
}
