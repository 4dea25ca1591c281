package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "kursusku_backend/internals/features/courses/courses/controller"
)

// Route public: katalog kursus
func CoursePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := public.Group("/courses")
	courses.Get("/", ctrl.GetAllCourses)
	courses.Get("/:slug", ctrl.GetCourseBySlug)
}
