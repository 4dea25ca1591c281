package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/certificates/dto"
	"kursusku_backend/internals/features/certificates/model"
	"kursusku_backend/internals/features/certificates/service"
	helper "kursusku_backend/internals/helpers"
)

type CertificateController struct {
	DB      *gorm.DB
	Service *service.CertificateService
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db, Service: service.NewCertificateService(db)}
}

// 📄 Sertifikat milik user login
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var certs []model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve certificates")
	}

	out := make([]dto.CertificateDTO, 0, len(certs))
	for _, cert := range certs {
		out = append(out, dto.ToCertificateDTO(cert))
	}
	return helper.JsonOK(c, "", out)
}

// 🔍 Verifikasi keaslian sertifikat lewat nomor seri (publik, tanpa login)
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	serial := c.Params("serial")
	if serial == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Serial is required")
	}

	cert, err := ctrl.Service.VerifyBySerial(c.UserContext(), serial)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Certificate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify certificate")
	}

	return helper.JsonOK(c, "", dto.VerifyCertificateDTO{
		Valid:                     true,
		CertificateSerial:         cert.CertificateSerial,
		CertificateCourseTitle:    cert.CertificateCourseTitle,
		CertificateInstructorName: cert.CertificateInstructorName,
		CertificateIssuedAt:       cert.CertificateIssuedAt,
	})
}
