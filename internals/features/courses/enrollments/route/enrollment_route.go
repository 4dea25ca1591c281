package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "kursusku_backend/internals/features/courses/enrollments/controller"
)

func EnrollmentUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	private.Post("/enrollments", ctrl.Enroll)
	private.Get("/enrollments", ctrl.GetMyEnrollments)
}
