package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voucherController "kursusku_backend/internals/features/marketplace/vouchers/controller"
)

// 🔒 Admin: kelola voucher
func VoucherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := voucherController.NewVoucherController(db)

	admin.Post("/vouchers", ctrl.CreateVoucher)
	admin.Get("/vouchers", ctrl.GetAllVouchers)
	admin.Put("/vouchers/:id", ctrl.UpdateVoucher)
	admin.Delete("/vouchers/:id", ctrl.DeleteVoucher)
}
