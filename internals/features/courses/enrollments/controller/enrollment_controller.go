package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	"kursusku_backend/internals/features/courses/enrollments/model"
	"kursusku_backend/internals/features/courses/enrollments/service"
	helper "kursusku_backend/internals/helpers"
)

var validateEnrollment = validator.New()

type EnrollmentController struct {
	DB      *gorm.DB
	Service *service.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Service: service.NewEnrollmentService(db)}
}

type enrollRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// ➕ Enroll ke kursus (user login)
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body enrollRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEnrollment.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	courseID := uuid.MustParse(body.CourseID)
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_is_published = ?", courseID, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	enrollment, err := ctrl.Service.Enroll(c.UserContext(), userID, courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll")
	}

	return helper.JsonCreated(c, "Berhasil enroll", enrollment)
}

// 📄 Enrollment milik user login
func (ctrl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_created_at DESC").
		Find(&enrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	return helper.JsonOK(c, "", enrollments)
}
