package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	enrollmentService "kursusku_backend/internals/features/courses/enrollments/service"
	"kursusku_backend/internals/features/marketplace/payments/dto"
	"kursusku_backend/internals/features/marketplace/payments/model"
	"kursusku_backend/internals/features/marketplace/payments/service"
	voucherService "kursusku_backend/internals/features/marketplace/vouchers/service"
	userModel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

var validatePayment = validator.New()

type PaymentController struct {
	DB          *gorm.DB
	Vouchers    *voucherService.VoucherService
	Enrollments *enrollmentService.EnrollmentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:          db,
		Vouchers:    voucherService.NewVoucherService(db),
		Enrollments: enrollmentService.NewEnrollmentService(db),
	}
}

// 🛒 Checkout kursus berbayar → buat payment pending + Snap token
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	courseID := uuid.MustParse(body.CourseID)
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_is_published = ?", courseID, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	// kursus gratis → langsung enroll tanpa payment
	if course.CoursePriceIDR <= 0 {
		if _, err := ctrl.Enrollments.Enroll(c.UserContext(), userID, courseID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll")
		}
		return helper.JsonOK(c, "Kursus gratis, langsung terdaftar", dto.CheckoutResponse{AmountIDR: 0})
	}

	amount := course.CoursePriceIDR
	var voucherCode *string
	if body.VoucherCode != nil && *body.VoucherCode != "" {
		voucher, err := ctrl.Vouchers.Redeem(c.UserContext(), *body.VoucherCode)
		if err != nil {
			switch err {
			case voucherService.ErrVoucherNotFound:
				return fiber.NewError(fiber.StatusNotFound, "Voucher not found")
			case voucherService.ErrVoucherInvalid:
				return fiber.NewError(fiber.StatusBadRequest, "Voucher is not applicable")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply voucher")
			}
		}
		amount = voucherService.ApplyDiscount(amount, voucher.VoucherType, voucher.VoucherValue)
		voucherCode = &voucher.VoucherCode
	}

	payment := model.PaymentModel{
		PaymentUserID:      userID,
		PaymentCourseID:    courseID,
		PaymentOrderID:     fmt.Sprintf("ORDER-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		PaymentAmountIDR:   amount,
		PaymentStatus:      model.PaymentStatusPending,
		PaymentVoucherCode: voucherCode,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Println("[ERROR] Failed to create payment:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment")
	}

	// voucher bisa menolkan harga → langsung lunas tanpa Midtrans
	if amount <= 0 {
		ctrl.settlePayment(&payment)
		return helper.JsonOK(c, "Pembayaran lunas dengan voucher", dto.CheckoutResponse{
			OrderID:   payment.PaymentOrderID,
			AmountIDR: 0,
		})
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	token, err := service.GenerateSnapToken(payment, user.UserName, user.UserEmail)
	if err != nil {
		log.Println("[ERROR] Failed to generate snap token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment transaction")
	}

	payment.PaymentSnapToken = &token
	ctrl.DB.Save(&payment)

	return helper.JsonCreated(c, "Silakan lanjutkan pembayaran", dto.CheckoutResponse{
		OrderID:   payment.PaymentOrderID,
		AmountIDR: amount,
		SnapToken: &token,
	})
}

// 🟢 Webhook Midtrans: update status payment dari notifikasi gateway
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid webhook payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		ctrl.settlePayment(&payment)
	case "expire":
		ctrl.DB.Model(&payment).Update("payment_status", model.PaymentStatusExpired)
	case "cancel":
		ctrl.DB.Model(&payment).Update("payment_status", model.PaymentStatusCanceled)
	case "deny", "failure":
		ctrl.DB.Model(&payment).Update("payment_status", model.PaymentStatusFailed)
	default:
		log.Println("[WARNING] Unhandled midtrans transaction status:", transactionStatus)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"order_id": orderID})
}

// 📄 Riwayat pembayaran user login
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.
		Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve payments")
	}
	return helper.JsonOK(c, "", payments)
}

// settlePayment menandai payment lunas + auto-enroll user ke kursus.
// Idempotent: payment yang sudah paid tidak diproses dua kali.
func (ctrl *PaymentController) settlePayment(payment *model.PaymentModel) {
	if payment.PaymentStatus == model.PaymentStatusPaid {
		return
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Model(payment).Updates(map[string]interface{}{
		"payment_status":  model.PaymentStatusPaid,
		"payment_paid_at": now,
	}).Error; err != nil {
		log.Println("[ERROR] Failed to settle payment:", err)
		return
	}

	if _, err := ctrl.Enrollments.Enroll(
		context.Background(), payment.PaymentUserID, payment.PaymentCourseID,
	); err != nil {
		log.Println("[WARNING] Auto-enroll after payment failed:", err)
	}
}
