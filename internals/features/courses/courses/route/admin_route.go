package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "kursusku_backend/internals/features/courses/courses/controller"
)

// Route admin: kelola katalog kursus
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := admin.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Post("/:id/thumbnail", ctrl.UploadCourseThumbnail)
	courses.Delete("/:id", ctrl.DeleteCourse)
}
