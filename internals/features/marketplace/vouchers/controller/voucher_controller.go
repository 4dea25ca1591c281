package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/marketplace/vouchers/dto"
	"kursusku_backend/internals/features/marketplace/vouchers/model"
	helper "kursusku_backend/internals/helpers"
)

var validateVoucher = validator.New()

type VoucherController struct {
	DB *gorm.DB
}

func NewVoucherController(db *gorm.DB) *VoucherController {
	return &VoucherController{DB: db}
}

// ➕ Buat voucher (admin)
func (ctrl *VoucherController) CreateVoucher(c *fiber.Ctx) error {
	var body dto.CreateVoucherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVoucher.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if body.VoucherType == model.VoucherTypePercent && body.VoucherValue > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "Percent voucher value cannot exceed 100")
	}

	voucher := model.VoucherModel{
		VoucherCode:     strings.ToUpper(strings.TrimSpace(body.VoucherCode)),
		VoucherType:     body.VoucherType,
		VoucherValue:    body.VoucherValue,
		VoucherQuota:    body.VoucherQuota,
		VoucherIsActive: true,
	}
	if body.VoucherIsActive != nil {
		voucher.VoucherIsActive = *body.VoucherIsActive
	}
	if body.VoucherExpires != nil {
		expires, err := time.Parse(time.RFC3339, *body.VoucherExpires)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid voucher_expires_at format (use RFC3339)")
		}
		voucher.VoucherExpiresAt = &expires
	}

	if err := ctrl.DB.Create(&voucher).Error; err != nil {
		log.Println("[ERROR] Failed to create voucher:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create voucher")
	}

	return helper.JsonCreated(c, "Voucher berhasil dibuat", voucher)
}

// 📄 Semua voucher (admin)
func (ctrl *VoucherController) GetAllVouchers(c *fiber.Ctx) error {
	var vouchers []model.VoucherModel
	if err := ctrl.DB.Order("voucher_created_at DESC").Find(&vouchers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve vouchers")
	}
	return helper.JsonOK(c, "", vouchers)
}

// ✏️ Update kuota / status voucher (admin)
func (ctrl *VoucherController) UpdateVoucher(c *fiber.Ctx) error {
	voucherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid voucher ID")
	}

	var voucher model.VoucherModel
	if err := ctrl.DB.First(&voucher, "voucher_id = ?", voucherID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Voucher not found")
	}

	var body dto.UpdateVoucherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVoucher.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if body.VoucherQuota != nil {
		updates["voucher_quota"] = *body.VoucherQuota
	}
	if body.VoucherIsActive != nil {
		updates["voucher_is_active"] = *body.VoucherIsActive
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&voucher).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update voucher")
		}
	}

	return helper.JsonUpdated(c, "Voucher berhasil diperbarui", voucher)
}

// ❌ Hapus voucher (admin)
func (ctrl *VoucherController) DeleteVoucher(c *fiber.Ctx) error {
	voucherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid voucher ID")
	}

	if err := ctrl.DB.Delete(&model.VoucherModel{}, "voucher_id = ?", voucherID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete voucher")
	}
	return helper.JsonDeleted(c, "Voucher berhasil dihapus", fiber.Map{"voucher_id": voucherID})
}
