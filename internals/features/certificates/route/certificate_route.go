package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "kursusku_backend/internals/features/certificates/controller"
)

// 🔒 User: daftar sertifikat milik sendiri
func CertificateUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)

	private.Get("/certificates", ctrl.GetMyCertificates)
}

// 🌐 Publik: verifikasi nomor seri
func CertificatePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)

	public.Get("/certificates/verify/:serial", ctrl.VerifyCertificate)
}
