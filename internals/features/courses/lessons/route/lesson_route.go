package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "kursusku_backend/internals/features/courses/lessons/controller"
)

func LessonAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := lessonController.NewLessonController(db)

	admin.Post("/course-modules", ctrl.CreateCourseModule)
	admin.Post("/lessons", ctrl.CreateLesson)
	admin.Put("/lessons/:id", ctrl.UpdateLesson)
	admin.Delete("/lessons/:id", ctrl.DeleteLesson)
}

// Konten kursus hanya untuk user login (sudah enroll dicek di FE;
// materi tidak memuat kunci jawaban apa pun)
func LessonUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := lessonController.NewLessonController(db)

	private.Get("/courses/:course_id/content", ctrl.GetCourseContent)
}
